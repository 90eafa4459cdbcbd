package cmd

import (
	"fmt"

	"github.com/ADAning/animal-well-flute-sub000/constants"
	"github.com/ADAning/animal-well-flute-sub000/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	syncBucket string
	syncPrefix string
)

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&syncBucket, "bucket", "", "S3 bucket holding the shared song library (default: SONGS_BUCKET)")
	syncCmd.Flags().StringVar(&syncPrefix, "prefix", "", "object key prefix to sync")
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pulls songs from the shared S3 library",
	Long:  `Pulls songs from the shared S3 library`,
	Run: func(cmd *cobra.Command, args []string) {
		bucket := syncBucket
		if bucket == "" {
			bucket = constants.GetSongsBucket()
		}
		n, err := store.SyncSongs(bucket, syncPrefix, constants.GetSongsDir())
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Printf("synced %v songs\n", n)
	},
}
