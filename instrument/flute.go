// Package instrument describes the in-game flute: a fixed playable
// window of half-steps and the fingering for every height inside it.
package instrument

import "math"

// Playable window. Heights land on a 0.5 grid, so the window holds 26
// distinct pitches.
const (
	MinPhysicalHeight = -6.0
	MaxPhysicalHeight = 6.5
	PhysicalRange     = MaxPhysicalHeight - MinPhysicalHeight
)

// Directional keys plus the two modifiers: "1" drops a fingering one
// octave (height -6), "3" sharpens it (height +0.5).
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyLowOctave = "1"
	KeySharp     = "3"
)

type baseEntry struct {
	height float64
	keys   []string
}

// The 8 base-octave positions, in table order. The order matters: the
// octave-drop pass below revisits height 6 and lands on height 0 again,
// replacing its plain fingering with the dropped-h1 one. External
// renderers expect exactly that table, so the quirk is kept.
var baseOctave = []baseEntry{
	{0, []string{KeyRight}},
	{1, []string{KeyRight, KeyDown}},
	{2, []string{KeyDown}},
	{2.5, []string{KeyLeft, KeyDown}},
	{3.5, []string{KeyLeft}},
	{4.5, []string{KeyLeft, KeyUp}},
	{5.5, []string{KeyUp}},
	{6, []string{KeyRight, KeyUp}},
}

// fingerings maps half-step counts (2 x height) to key combinations.
var fingerings = buildFingerings()

func buildFingerings() map[int][]string {
	combos := make(map[int][]string)
	var order []int

	insert := func(hs int, keys []string) {
		if _, ok := combos[hs]; !ok {
			order = append(order, hs)
		}
		combos[hs] = keys
	}

	for _, e := range baseOctave {
		insert(halfStepsExact(e.height), append([]string(nil), e.keys...))
	}
	for _, e := range baseOctave {
		insert(halfStepsExact(e.height-6), append(append([]string(nil), e.keys...), KeyLowOctave))
	}

	// sharps fill the remaining half-steps, one pass over the table as
	// it stood before this loop
	snapshot := append([]int(nil), order...)
	for _, hs := range snapshot {
		if _, ok := combos[hs+1]; !ok {
			combos[hs+1] = append(append([]string(nil), combos[hs]...), KeySharp)
		}
	}

	return combos
}

func halfStepsExact(h float64) int {
	return int(math.Round(h * 2))
}

// halfSteps quantizes a height onto the 0.5 grid. Off-grid heights have
// no fingering.
func halfSteps(h float64) (int, bool) {
	v := h * 2
	r := math.Round(v)
	if math.Abs(v-r) > 1e-9 {
		return 0, false
	}
	return int(r), true
}

// KeyCombination returns the ordered keys producing a physical height.
// Rests (nil) and unknown heights get an empty combination.
func KeyCombination(height *float64) []string {
	if height == nil {
		return nil
	}
	hs, ok := halfSteps(*height)
	if !ok {
		return nil
	}
	keys, ok := fingerings[hs]
	if !ok {
		return nil
	}
	return append([]string(nil), keys...)
}

// IsPlayable reports whether a height is inside the window. Rests are
// always playable.
func IsPlayable(height *float64) bool {
	if height == nil {
		return true
	}
	return *height >= MinPhysicalHeight && *height <= MaxPhysicalHeight
}

// ValidateRange reports whether a whole mapped range fits the flute.
func ValidateRange(min, max float64) bool {
	return IsPlayable(&min) && IsPlayable(&max) && max-min <= PhysicalRange
}
