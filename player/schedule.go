// Package player turns converted bars into timed input events. The
// actual key injection into the game belongs to an external tool; this
// package only produces and performs timelines.
package player

import (
	"time"

	"github.com/ADAning/animal-well-flute-sub000/model"
)

// KeyEvent is one note's worth of input: hold Keys from At for
// Duration. Rests carry no keys.
type KeyEvent struct {
	At       time.Duration `json:"at"`
	Duration time.Duration `json:"duration"`
	Keys     []string      `json:"keys"`
	Notation string        `json:"notation"`
}

// BeatInterval is the wall-clock length of one beat at the given tempo.
func BeatInterval(bpm int) time.Duration {
	return time.Duration(float64(time.Minute) / float64(bpm))
}

// BuildSchedule lays bars on an absolute timeline; each event start is
// derived from the song position, not from the previous event's actual
// end, so rounding never accumulates into beat drift.
func BuildSchedule(bars [][]model.PhysicalNote, bpm int) []KeyEvent {
	beat := BeatInterval(bpm)
	var events []KeyEvent
	var at time.Duration
	for _, bar := range bars {
		for _, n := range bar {
			d := time.Duration(n.TimeFactor * float64(beat))
			events = append(events, KeyEvent{
				At:       at,
				Duration: d,
				Keys:     append([]string(nil), n.KeyCombination...),
				Notation: n.Notation,
			})
			at += d
		}
	}
	return events
}

// TotalDuration is the wall-clock length of a schedule.
func TotalDuration(events []KeyEvent) time.Duration {
	if len(events) == 0 {
		return 0
	}
	last := events[len(events)-1]
	return last.At + last.Duration
}
