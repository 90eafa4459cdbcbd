// Package analysis computes pitch-range statistics over flat note lists.
package analysis

import "github.com/ADAning/animal-well-flute-sub000/model"

func analyzeHeights(heights []float64) model.RangeInfo {
	if len(heights) == 0 {
		return model.RangeInfo{}
	}
	min, max := heights[0], heights[0]
	for _, h := range heights[1:] {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	return model.RangeInfo{
		MinHeight: min,
		MaxHeight: max,
		Span:      max - min,
		NoteCount: len(heights),
	}
}

// AnalyzeRelative summarizes the range of relative notes. Rests are
// skipped; empty or rest-only input yields the zero RangeInfo.
func AnalyzeRelative(notes []model.RelativeNote) model.RangeInfo {
	heights := make([]float64, 0, len(notes))
	for _, n := range notes {
		if n.RelativeHeight != nil {
			heights = append(heights, *n.RelativeHeight)
		}
	}
	return analyzeHeights(heights)
}

// AnalyzePhysical summarizes the range of mapped notes.
func AnalyzePhysical(notes []model.PhysicalNote) model.RangeInfo {
	heights := make([]float64, 0, len(notes))
	for _, n := range notes {
		if n.PhysicalHeight != nil {
			heights = append(heights, *n.PhysicalHeight)
		}
	}
	return analyzeHeights(heights)
}
