package model

import "errors"

// Strategy selects how a whole melody gets shifted into the flute's window.
type Strategy string

const (
	StrategyOptimal Strategy = "optimal"
	StrategyHigh    Strategy = "high"
	StrategyLow     Strategy = "low"
	StrategyManual  Strategy = "manual"
)

var ErrNonPositiveTime = errors.New("time_factor must be positive")

// RelativeNote is a single parsed jianpu note. RelativeHeight is the
// distance in half-steps from scale degree "1"; nil means rest.
type RelativeNote struct {
	Notation       string
	RelativeHeight *float64
	TimeFactor     float64
}

func NewRelativeNote(notation string, height *float64, timeFactor float64) (RelativeNote, error) {
	if timeFactor <= 0 {
		return RelativeNote{}, ErrNonPositiveTime
	}
	return RelativeNote{Notation: notation, RelativeHeight: height, TimeFactor: timeFactor}, nil
}

// PhysicalNote is a note shifted into the flute's playable window.
// An empty KeyCombination means rest, or that no fingering exists for
// this height.
type PhysicalNote struct {
	Notation       string   `json:"notation"`
	PhysicalHeight *float64 `json:"physical_height"`
	TimeFactor     float64  `json:"time_factor"`
	KeyCombination []string `json:"key_combination"`
}

func NewPhysicalNote(notation string, height *float64, timeFactor float64, keys []string) (PhysicalNote, error) {
	if timeFactor <= 0 {
		return PhysicalNote{}, ErrNonPositiveTime
	}
	return PhysicalNote{Notation: notation, PhysicalHeight: height, TimeFactor: timeFactor, KeyCombination: keys}, nil
}

func (n PhysicalNote) IsRest() bool {
	return n.PhysicalHeight == nil
}

// Unplayable reports whether the note has a pitch but no fingering.
func (n PhysicalNote) Unplayable() bool {
	return n.PhysicalHeight != nil && len(n.KeyCombination) == 0
}

// RangeInfo summarizes the pitch range of a flat note list.
type RangeInfo struct {
	MinHeight float64 `json:"min_height"`
	MaxHeight float64 `json:"max_height"`
	Span      float64 `json:"span"`
	NoteCount int     `json:"note_count"`
}

func (r RangeInfo) Octaves() float64 {
	return r.Span / 12.0
}

// Height is a convenience for building optional heights inline.
func Height(v float64) *float64 {
	return &v
}
