package cmd

import (
	"fmt"

	"github.com/ADAning/animal-well-flute-sub000/constants"
	"github.com/ADAning/animal-well-flute-sub000/song"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists available songs",
	Long:  `Lists available songs`,
	Run: func(cmd *cobra.Command, args []string) {
		list()
	},
}

func list() {
	manager := song.NewManager(constants.GetSongsDir())
	for _, info := range manager.ListInfo() {
		desc := info.Description
		if desc != "" {
			desc = " - " + desc
		}
		fmt.Printf("%v (bpm %v, %v bars)%v\n", info.Name, info.BPM, info.Bars, desc)
	}
}
