package constants

import "os"

func GetSongsDir() string {
	if path := os.Getenv("SONGS_PATH"); path != "" {
		return path
	}
	return "./songs"
}

func GetSongsBucket() string {
	bucket := os.Getenv("SONGS_BUCKET")
	if bucket == "" {
		panic("SONGS_BUCKET environment variable is not set!")
	}
	return bucket
}

// DefaultBPM is used when a song file carries no tempo of its own.
const DefaultBPM = 90

// DefaultReadyTime is the countdown in seconds before playback starts,
// giving the player time to focus the game window.
const DefaultReadyTime = 5
