// Package mapping shifts whole melodies into the flute's playable
// window: one additive offset per song, chosen by strategy.
package mapping

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ADAning/animal-well-flute-sub000/analysis"
	"github.com/ADAning/animal-well-flute-sub000/instrument"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/sirupsen/logrus"
)

// MappingError is fatal to a single strategy attempt. The optimizer
// catches it and advances to the next candidate.
type MappingError struct {
	Strategy model.Strategy
	Err      error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s mapping: %v", e.Strategy, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// MapSong projects every note by one strategy-chosen offset. On success
// every non-rest note is inside the window and has a fingering.
func (m *Mapper) MapSong(notes []model.RelativeNote, strategy model.Strategy, manualOffset *float64) ([]model.PhysicalNote, error) {
	info := analysis.AnalyzeRelative(notes)
	logrus.Debugf("song range: %.1f to %.1f (span %.1f, %.1f octaves)",
		info.MinHeight, info.MaxHeight, info.Span, info.Octaves())

	if info.Span > 24 {
		return nil, &MappingError{Strategy: strategy,
			Err: fmt.Errorf("song range (%.1f half-steps) exceeds 2 octaves limit", info.Span)}
	}
	if info.Span > instrument.PhysicalRange {
		return nil, &MappingError{Strategy: strategy,
			Err: fmt.Errorf("song range (%.1f half-steps) exceeds flute physical range (%.1f)", info.Span, instrument.PhysicalRange)}
	}

	var offset float64
	if strategy == model.StrategyManual && manualOffset != nil {
		offset = *manualOffset
	} else {
		offset = calculateOffset(info, strategy)
	}
	logrus.Debugf("mapping offset: %.1f (%s)", offset, strategy)

	physical := make([]model.PhysicalNote, 0, len(notes))
	for _, n := range notes {
		physical = append(physical, mapNote(n, offset))
	}

	if err := validateMapping(physical); err != nil {
		return nil, &MappingError{Strategy: strategy, Err: err}
	}
	return physical, nil
}

// calculateOffset picks the offset for an automatic strategy. The final
// re-clamp wins over the strategy's own value, including the rounded
// optimal one on melodies that nearly fill the window.
func calculateOffset(info model.RangeInfo, strategy model.Strategy) float64 {
	var offset float64
	switch strategy {
	case model.StrategyOptimal:
		songCenter := (info.MinHeight + info.MaxHeight) / 2
		fluteCenter := (instrument.MinPhysicalHeight + instrument.MaxPhysicalHeight) / 2
		// snap to the 0.5 grid, rounding up
		offset = math.Ceil((fluteCenter-songCenter)*2) / 2
	case model.StrategyHigh:
		offset = instrument.MaxPhysicalHeight - info.MaxHeight
	case model.StrategyLow:
		offset = instrument.MinPhysicalHeight - info.MinHeight
	default:
		offset = 0
	}

	if info.MinHeight+offset < instrument.MinPhysicalHeight {
		offset = instrument.MinPhysicalHeight - info.MinHeight
	} else if info.MaxHeight+offset > instrument.MaxPhysicalHeight {
		offset = instrument.MaxPhysicalHeight - info.MaxHeight
	}
	return offset
}

func mapNote(n model.RelativeNote, offset float64) model.PhysicalNote {
	var height *float64
	if n.RelativeHeight != nil {
		height = model.Height(*n.RelativeHeight + offset)
	}
	return model.PhysicalNote{
		Notation:       n.Notation,
		PhysicalHeight: height,
		TimeFactor:     n.TimeFactor,
		KeyCombination: instrument.KeyCombination(height),
	}
}

func validateMapping(notes []model.PhysicalNote) error {
	var shown []string
	bad := 0
	for i, n := range notes {
		if n.PhysicalHeight == nil {
			continue
		}
		if instrument.IsPlayable(n.PhysicalHeight) && !n.Unplayable() {
			continue
		}
		bad++
		if len(shown) < 5 {
			shown = append(shown, fmt.Sprintf("note %d: %s -> %.1f", i, n.Notation, *n.PhysicalHeight))
		}
	}
	if bad > 0 {
		msg := fmt.Sprintf("found %d unplayable notes after mapping: %s", bad, strings.Join(shown, "; "))
		if bad > len(shown) {
			msg += fmt.Sprintf(" (and %d more)", bad-len(shown))
		}
		return errors.New(msg)
	}

	info := analysis.AnalyzePhysical(notes)
	if !instrument.ValidateRange(info.MinHeight, info.MaxHeight) {
		return fmt.Errorf("final mapped range (%.1f to %.1f) exceeds flute capabilities", info.MinHeight, info.MaxHeight)
	}
	return nil
}
