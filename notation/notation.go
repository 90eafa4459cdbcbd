// Package notation holds the relative-pitch registry for numbered
// (jianpu) notation. Heights are half-steps relative to scale degree "1"
// of the active key; one octave spans 6 units.
package notation

import (
	"fmt"
	"sync"
)

// baseHeights is the fixed seed table. l prefix is the octave below the
// middle register, h the octave(s) above.
var baseHeights = map[string]float64{
	"l1": -6.0,
	"l2": -5.0,
	"l3": -4.0,
	"l4": -3.5,
	"l5": -2.5,
	"l6": -1.5,
	"l7": -0.5,

	"1": 0,
	"2": 1,
	"3": 2,
	"4": 2.5,
	"5": 3.5,
	"6": 4.5,
	"7": 5.5,

	"h1": 6,
	"h2": 7,
	"h3": 8,
	"h4": 8.5,
	"h5": 9.5,
	"h6": 10.5,
	"h7": 11.5,

	// extended high register
	"h8":  12,
	"h9":  13,
	"h10": 14,
	"h11": 14.5,
	"h12": 15.5,
	"h13": 16.5,
	"h14": 17.5,
	"h15": 18,
	"h16": 19,
	"h17": 20,
}

// Table maps notation labels to relative heights. It is seeded with the
// base table plus a "+0.5" sharp variant of every label, and only ever
// grows: ExtendRange adds synthetic high labels, never rewrites.
type Table struct {
	mu      sync.RWMutex
	heights map[string]float64
	max     float64
}

func NewTable() *Table {
	heights := make(map[string]float64, 2*len(baseHeights))
	max := 0.0
	for label, h := range baseHeights {
		heights[label] = h
		if h > max {
			max = h
		}
	}
	// sharp variants of every seeded label
	for label, h := range baseHeights {
		sharp := label + ".5"
		if _, ok := heights[sharp]; !ok {
			heights[sharp] = h + 0.5
			if h+0.5 > max {
				max = h + 0.5
			}
		}
	}
	return &Table{heights: heights, max: max}
}

// GetRelativeHeight looks up a label. The bool is false for unknown
// labels; the caller turns that into a parse error.
func (t *Table) GetRelativeHeight(label string) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.heights[label]
	return h, ok
}

// ExtendRange makes sure the table covers target, synthesizing high
// labels beyond the current maximum. Purely additive.
func (t *Table) ExtendRange(target float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if target <= t.max {
		return
	}
	needed := int(target-t.max) + 5
	for i := 0; i < needed; i++ {
		height := t.max + float64(i) + 1
		label := fmt.Sprintf("h%d", int(height)+6)
		if _, ok := t.heights[label]; !ok {
			t.heights[label] = height
		}
	}
	t.max += float64(needed)
}

// MaxHeight returns the highest height the table currently knows.
func (t *Table) MaxHeight() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.max
}

// Len returns the number of known labels.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.heights)
}
