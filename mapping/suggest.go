package mapping

import (
	"fmt"

	"github.com/ADAning/animal-well-flute-sub000/analysis"
	"github.com/ADAning/animal-well-flute-sub000/instrument"
	"github.com/ADAning/animal-well-flute-sub000/model"
)

// Suggestion is one strategy's preview entry.
type Suggestion struct {
	Offset      float64    `json:"offset"`
	MappedRange [2]float64 `json:"mapped_range"`
	Feasible    bool       `json:"feasible"`
	Error       string     `json:"error,omitempty"`
}

// RangeAnalysis is the raw-figures block of a suggestions report.
type RangeAnalysis struct {
	OriginalRange     [2]float64 `json:"original_range"`
	SpanHalfSteps     float64    `json:"span_half_steps"`
	SpanOctaves       float64    `json:"span_octaves"`
	NoteCount         int        `json:"note_count"`
	Exceeds2Octaves   bool       `json:"exceeds_2_octaves"`
	ExceedsFluteRange bool       `json:"exceeds_flute_range"`
}

type Suggestions struct {
	Strategies map[model.Strategy]Suggestion `json:"strategies"`
	Analysis   RangeAnalysis                 `json:"analysis"`
}

// GetMappingSuggestions previews every automatic strategy. It never
// fails: an infeasible strategy becomes a feasible=false entry so
// inspection tooling always gets the complete picture.
func (m *Mapper) GetMappingSuggestions(notes []model.RelativeNote) Suggestions {
	info := analysis.AnalyzeRelative(notes)

	strategies := make(map[model.Strategy]Suggestion, 3)
	for _, s := range []model.Strategy{model.StrategyOptimal, model.StrategyHigh, model.StrategyLow} {
		strategies[s] = suggestFor(info, s)
	}

	return Suggestions{
		Strategies: strategies,
		Analysis: RangeAnalysis{
			OriginalRange:     [2]float64{info.MinHeight, info.MaxHeight},
			SpanHalfSteps:     info.Span,
			SpanOctaves:       info.Octaves(),
			NoteCount:         info.NoteCount,
			Exceeds2Octaves:   info.Span > 24,
			ExceedsFluteRange: info.Span > instrument.PhysicalRange,
		},
	}
}

func suggestFor(info model.RangeInfo, strategy model.Strategy) Suggestion {
	if info.Span > 24 {
		return Suggestion{Feasible: false,
			Error: fmt.Sprintf("song range (%.1f half-steps) exceeds 2 octaves limit", info.Span)}
	}
	if info.Span > instrument.PhysicalRange {
		return Suggestion{Feasible: false,
			Error: fmt.Sprintf("song range (%.1f half-steps) exceeds flute physical range (%.1f)", info.Span, instrument.PhysicalRange)}
	}

	offset := calculateOffset(info, strategy)
	mappedMin := info.MinHeight + offset
	mappedMax := info.MaxHeight + offset
	return Suggestion{
		Offset:      offset,
		MappedRange: [2]float64{mappedMin, mappedMax},
		Feasible:    instrument.ValidateRange(mappedMin, mappedMax),
	}
}
