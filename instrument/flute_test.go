package instrument

import (
	"testing"

	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/stretchr/testify/assert"
)

func TestBaseOctaveCombinations(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{KeyRight, KeyDown}, KeyCombination(model.Height(1)))
	assert.Equal([]string{KeyDown}, KeyCombination(model.Height(2)))
	assert.Equal([]string{KeyLeft, KeyDown}, KeyCombination(model.Height(2.5)))
	assert.Equal([]string{KeyLeft}, KeyCombination(model.Height(3.5)))
	assert.Equal([]string{KeyLeft, KeyUp}, KeyCombination(model.Height(4.5)))
	assert.Equal([]string{KeyUp}, KeyCombination(model.Height(5.5)))
	assert.Equal([]string{KeyRight, KeyUp}, KeyCombination(model.Height(6)))
}

func TestHeightZeroUsesDroppedFingering(t *testing.T) {
	// the octave-drop pass revisits height 6-6=0 and wins
	assert.Equal(t, []string{KeyRight, KeyUp, KeyLowOctave}, KeyCombination(model.Height(0)))
}

func TestSharpOfHeightZero(t *testing.T) {
	assert.Equal(t, []string{KeyRight, KeyUp, KeyLowOctave, KeySharp}, KeyCombination(model.Height(0.5)))
}

func TestLowOctaveCombinations(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{KeyRight, KeyLowOctave}, KeyCombination(model.Height(-6)))
	assert.Equal([]string{KeyRight, KeyDown, KeyLowOctave}, KeyCombination(model.Height(-5)))
	assert.Equal([]string{KeyUp, KeyLowOctave}, KeyCombination(model.Height(-0.5)))
}

func TestSharpCombinations(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{KeyRight, KeyDown, KeySharp}, KeyCombination(model.Height(1.5)))
	assert.Equal([]string{KeyRight, KeyUp, KeySharp}, KeyCombination(model.Height(6.5)))
	assert.Equal([]string{KeyRight, KeyLowOctave, KeySharp}, KeyCombination(model.Height(-5.5)))
}

func TestEveryGridHeightHasFingering(t *testing.T) {
	assert := assert.New(t)
	for h := MinPhysicalHeight; h <= MaxPhysicalHeight; h += 0.5 {
		assert.NotEmpty(KeyCombination(model.Height(h)), "height %v", h)
	}
}

func TestOffGridHeightHasNoFingering(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(KeyCombination(model.Height(0.25)))
	assert.Nil(KeyCombination(model.Height(3.1)))
}

func TestOutsideWindowHasNoFingering(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(KeyCombination(model.Height(7)))
	assert.Nil(KeyCombination(model.Height(-6.5)))
}

func TestRestHasNoFingering(t *testing.T) {
	assert.Nil(t, KeyCombination(nil))
}

func TestKeyCombinationReturnsCopy(t *testing.T) {
	a := KeyCombination(model.Height(2))
	a[0] = "mutated"
	b := KeyCombination(model.Height(2))
	assert.Equal(t, []string{KeyDown}, b)
}

func TestIsPlayable(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsPlayable(nil))
	assert.True(IsPlayable(model.Height(MinPhysicalHeight)))
	assert.True(IsPlayable(model.Height(MaxPhysicalHeight)))
	assert.False(IsPlayable(model.Height(-6.5)))
	assert.False(IsPlayable(model.Height(7)))
}

func TestValidateRange(t *testing.T) {
	assert := assert.New(t)
	assert.True(ValidateRange(-6, 6.5))
	assert.True(ValidateRange(0, 3))
	assert.False(ValidateRange(-6.5, 0))
	assert.False(ValidateRange(0, 7))
}
