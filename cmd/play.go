package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/ADAning/animal-well-flute-sub000/constants"
	"github.com/ADAning/animal-well-flute-sub000/convert"
	"github.com/ADAning/animal-well-flute-sub000/midifile"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/ADAning/animal-well-flute-sub000/player"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	playBPM       int
	playReadyTime int
	playSMF       string
	playLive      bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playBPM, "bpm", 0, "overrides the song's BPM")
	playCmd.Flags().IntVar(&playReadyTime, "ready-time", constants.DefaultReadyTime, "countdown before live playback starts")
	playCmd.Flags().StringVar(&playSMF, "smf", "", "write the mapped song to a MIDI file instead of performing it")
	playCmd.Flags().BoolVar(&playLive, "midi", false, "perform on the first MIDI out port")
}

var playCmd = &cobra.Command{
	Use:   "play <song> [strategy] [param]",
	Short: "Plays a song",
	Long: `Plays a song. Strategy is optimal, high, low, none, auto (param:
preferred strategy) or manual (param: an offset, or "song" for the
song's stored offset). Default output is the key schedule.`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		if err := play(args); err != nil {
			logrus.Fatal(err)
		}
	},
}

func play(args []string) error {
	s, manager, err := loadSong(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, strings.Join(manager.List(), ", "))
	}

	opts, err := strategyOptions(s, args[1:])
	if err != nil {
		return err
	}

	parsed, p, err := parseSong(s)
	if err != nil {
		return err
	}

	bars, used, err := convert.New().Convert(parsed, opts)
	if err != nil {
		return err
	}

	bpm := s.BPM
	if playBPM > 0 {
		bpm = playBPM
	}
	if bpm == 0 {
		bpm = constants.DefaultBPM
	}

	info := p.GetRangeInfo(parsed)
	fmt.Printf("Song: %v\n", s.Name)
	fmt.Printf("BPM: %v, strategy: %v\n", bpm, used)
	fmt.Printf("Range: %.1f half-steps (%.1f octaves)\n", info.Span, info.Octaves())

	if playSMF != "" {
		return midifile.Write(playSMF, bars, bpm)
	}

	events := player.BuildSchedule(bars, bpm)
	fmt.Printf("Duration: %v\n", player.TotalDuration(events).Round(time.Millisecond))

	if playLive {
		fmt.Println("Switch to the game window...")
		for i := playReadyTime; i > 0; i-- {
			fmt.Printf("  %v...\n", i)
			time.Sleep(time.Second)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return player.PlayMIDI(ctx, bars, bpm)
	}

	for _, ev := range events {
		keys := strings.Join(ev.Keys, " + ")
		if keys == "" {
			keys = "(rest)"
		}
		fmt.Printf("%8v  %-6v %v\n", ev.At.Round(time.Millisecond), ev.Notation, keys)
	}
	return nil
}

func strategyOptions(s model.Song, args []string) (convert.Options, error) {
	strategy := "optimal"
	if len(args) > 0 {
		strategy = args[0]
	}

	switch strategy {
	case "optimal", "high", "low":
		return convert.Options{Strategy: strategy}, nil
	case "none":
		zero := 0.0
		return convert.Options{Strategy: "manual", ManualOffset: &zero}, nil
	case "auto":
		pref := "optimal"
		if len(args) > 1 {
			pref = args[1]
		}
		return convert.Options{Strategy: "auto", Preference: pref}, nil
	case "manual":
		if len(args) < 2 {
			return convert.Options{}, errors.New("manual strategy needs an offset")
		}
		if args[1] == "song" {
			if s.Offset == 0 {
				return convert.Options{}, fmt.Errorf("song %q has no stored offset", s.Name)
			}
			return convert.Options{Strategy: "manual", ManualOffset: &s.Offset}, nil
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return convert.Options{}, fmt.Errorf("invalid offset: %q", args[1])
		}
		return convert.Options{Strategy: "manual", ManualOffset: &v}, nil
	default:
		return convert.Options{}, fmt.Errorf("unknown strategy: %q", strategy)
	}
}
