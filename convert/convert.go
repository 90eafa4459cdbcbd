// Package convert orchestrates the pipeline: parsed relative bars in,
// physical bars out, bar structure preserved.
package convert

import (
	"errors"
	"fmt"

	"github.com/ADAning/animal-well-flute-sub000/mapping"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/sirupsen/logrus"
)

type Converter struct {
	mapper    *mapping.Mapper
	optimizer *mapping.Optimizer
}

func New() *Converter {
	return &Converter{
		mapper:    mapping.NewMapper(),
		optimizer: mapping.NewOptimizer(),
	}
}

// Options selects how the melody-wide offset is chosen. Strategy is one
// of "optimal" (default), "high", "low", "manual" or "auto"; "auto"
// lets the optimizer pick, optionally honoring Preference.
type Options struct {
	Strategy     string
	ManualOffset *float64
	Preference   string
}

// Convert flattens the bars, maps every note with a single offset, and
// restores the original bar structure. Returns the strategy actually
// used.
func (c *Converter) Convert(parsed [][]model.RelativeNote, opts Options) ([][]model.PhysicalNote, model.Strategy, error) {
	var flat []model.RelativeNote
	for _, bar := range parsed {
		flat = append(flat, bar...)
	}

	var (
		physical []model.PhysicalNote
		used     model.Strategy
		err      error
	)
	switch opts.Strategy {
	case "auto":
		if opts.Preference != "" {
			physical, used, err = c.optimizer.FindBestMappingWithPreference(flat, opts.Preference)
		} else {
			physical, used, err = c.optimizer.FindBestMapping(flat)
		}
	case "manual":
		if opts.ManualOffset == nil {
			return nil, "", errors.New("manual offset is required when using manual strategy")
		}
		used = model.StrategyManual
		physical, err = c.mapper.MapSong(flat, model.StrategyManual, opts.ManualOffset)
	case "", "optimal", "high", "low":
		used = model.StrategyOptimal
		if opts.Strategy != "" {
			used = model.Strategy(opts.Strategy)
		}
		physical, err = c.mapper.MapSong(flat, used, nil)
	default:
		return nil, "", fmt.Errorf("unknown strategy: %q", opts.Strategy)
	}
	if err != nil {
		return nil, "", err
	}

	bars := make([][]model.PhysicalNote, 0, len(parsed))
	i := 0
	for _, bar := range parsed {
		bars = append(bars, physical[i:i+len(bar)])
		i += len(bar)
	}

	logrus.Infof("converted %d bars (%d notes) with %s strategy", len(bars), len(flat), used)
	return bars, used, nil
}

// Preview bundles mapping suggestions with song shape figures. Never
// fails.
type Preview struct {
	Suggestions mapping.Suggestions `json:"suggestions"`
	BarCount    int                 `json:"bar_count"`
	TotalNotes  int                 `json:"total_notes"`
}

func (c *Converter) GetPreview(parsed [][]model.RelativeNote) Preview {
	var flat []model.RelativeNote
	for _, bar := range parsed {
		flat = append(flat, bar...)
	}
	return Preview{
		Suggestions: c.mapper.GetMappingSuggestions(flat),
		BarCount:    len(parsed),
		TotalNotes:  len(flat),
	}
}
