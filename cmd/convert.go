package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ADAning/animal-well-flute-sub000/constants"
	"github.com/ADAning/animal-well-flute-sub000/song"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertOutDir string

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertOutDir, "output", "", "output directory (default: songs dir)")
}

var convertCmd = &cobra.Command{
	Use:   "convert [song]",
	Short: "Rewrites songs in the simplified file format",
	Long:  `Rewrites one song (or the whole library) as simplified-format YAML`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		if err := convertSongs(name); err != nil {
			logrus.Fatal(err)
		}
	},
}

func convertSongs(name string) error {
	manager := song.NewManager(constants.GetSongsDir())

	outDir := convertOutDir
	if outDir == "" {
		outDir = constants.GetSongsDir()
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	keys := manager.List()
	if name != "" {
		s, err := manager.Get(name)
		if err != nil {
			return err
		}
		keys = []string{song.Key(s.Name)}
	}

	for _, key := range keys {
		s, err := manager.Get(key)
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, key+".yaml")
		if err := song.SaveSimplified(s, path); err != nil {
			return err
		}
		fmt.Printf("wrote %v\n", path)
	}
	return nil
}
