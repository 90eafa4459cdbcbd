package cmd

import (
	"fmt"

	"github.com/ADAning/animal-well-flute-sub000/convert"
	"github.com/ADAning/animal-well-flute-sub000/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <song>",
	Short: "Analyzes a song's range and mapping options",
	Long:  `Analyzes a song's range and mapping options`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := analyze(args[0]); err != nil {
			logrus.Fatal(err)
		}
	},
}

func analyze(name string) error {
	s, _, err := loadSong(name)
	if err != nil {
		return err
	}
	parsed, p, err := parseSong(s)
	if err != nil {
		return err
	}

	info := p.GetRangeInfo(parsed)
	preview := convert.New().GetPreview(parsed)

	fmt.Printf("Song: %v\n", s.Name)
	fmt.Printf("Bars: %v, notes: %v\n", preview.BarCount, preview.TotalNotes)
	fmt.Printf("Range: %.1f to %.1f (span %.1f, %.1f octaves)\n",
		info.MinHeight, info.MaxHeight, info.Span, info.Octaves())

	for _, strategy := range util.SortedKeys(preview.Suggestions.Strategies) {
		sug := preview.Suggestions.Strategies[strategy]
		if sug.Error != "" {
			fmt.Printf("  %-8v infeasible: %v\n", strategy, sug.Error)
			continue
		}
		fmt.Printf("  %-8v offset %+.1f -> [%.1f, %.1f] feasible=%v\n",
			strategy, sug.Offset, sug.MappedRange[0], sug.MappedRange[1], sug.Feasible)
	}
	return nil
}
