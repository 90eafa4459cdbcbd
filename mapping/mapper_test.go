package mapping

import (
	"testing"

	"github.com/ADAning/animal-well-flute-sub000/instrument"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/stretchr/testify/assert"
)

func note(h float64) model.RelativeNote {
	return model.RelativeNote{Notation: "n", RelativeHeight: model.Height(h), TimeFactor: 1}
}

func rest() model.RelativeNote {
	return model.RelativeNote{Notation: "0", TimeFactor: 1}
}

func notes(hs ...float64) []model.RelativeNote {
	res := make([]model.RelativeNote, 0, len(hs))
	for _, h := range hs {
		res = append(res, note(h))
	}
	return res
}

func physicalHeights(mapped []model.PhysicalNote) []float64 {
	res := make([]float64, 0, len(mapped))
	for _, n := range mapped {
		if n.PhysicalHeight != nil {
			res = append(res, *n.PhysicalHeight)
		}
	}
	return res
}

func TestOptimalCentersTheMelody(t *testing.T) {
	mapped, err := NewMapper().MapSong(notes(0, 1, 2, 3), model.StrategyOptimal, nil)

	assert := assert.New(t)
	assert.NoError(err)
	// song center 1.5, flute center 0.25 -> -1.25, snapped up to -1.0
	assert.Equal([]float64{-1, 0, 1, 2}, physicalHeights(mapped))
	for _, n := range mapped {
		assert.NotEmpty(n.KeyCombination)
	}
}

func TestHighAlignsToWindowTop(t *testing.T) {
	mapped, err := NewMapper().MapSong(notes(0, 3), model.StrategyHigh, nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]float64{3.5, 6.5}, physicalHeights(mapped))
}

func TestLowAlignsToWindowBottom(t *testing.T) {
	mapped, err := NewMapper().MapSong(notes(0, 3), model.StrategyLow, nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]float64{-6, -3}, physicalHeights(mapped))
}

func TestManualOffsetAppliedAsIs(t *testing.T) {
	offset := 0.5
	mapped, err := NewMapper().MapSong([]model.RelativeNote{note(0), rest(), note(2)}, model.StrategyManual, &offset)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0.5, *mapped[0].PhysicalHeight)
	assert.Nil(mapped[1].PhysicalHeight)
	assert.Equal(2.5, *mapped[2].PhysicalHeight)
	assert.True(mapped[1].IsRest())
	assert.Nil(mapped[1].KeyCombination)
}

func TestSpanOverTwoOctavesFails(t *testing.T) {
	_, err := NewMapper().MapSong(notes(0, 25), model.StrategyOptimal, nil)

	assert := assert.New(t)
	assert.Error(err)
	assert.Contains(err.Error(), "exceeds 2 octaves limit")

	mapErr, ok := err.(*MappingError)
	assert.True(ok)
	assert.Equal(model.StrategyOptimal, mapErr.Strategy)
}

func TestSpanOverFluteRangeFails(t *testing.T) {
	_, err := NewMapper().MapSong(notes(0, 13), model.StrategyOptimal, nil)

	assert := assert.New(t)
	assert.Error(err)
	assert.Contains(err.Error(), "exceeds flute physical range")
}

func TestOptimalOffsetSnapsToHalfStepGrid(t *testing.T) {
	assert := assert.New(t)
	for _, hs := range [][]float64{{0, 1, 2, 3}, {0, 5}, {-3, 4.5}, {0, 0.5, 6}} {
		mapped, err := NewMapper().MapSong(notes(hs...), model.StrategyOptimal, nil)
		assert.NoError(err)
		offset := *mapped[0].PhysicalHeight - hs[0]
		assert.Zero(mod(offset, 0.5), "offset %v for %v", offset, hs)
	}
}

func TestReclampOverridesRoundedOptimal(t *testing.T) {
	// off-grid melody whose snapped offset would push the top past the
	// window: the max-align clamp takes over
	mapped, err := NewMapper().MapSong(notes(0.25, 12.75), model.StrategyOptimal, nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]float64{-6, 6.5}, physicalHeights(mapped))
}

func TestManualOffsetOutOfWindowReportsOffenders(t *testing.T) {
	offset := 100.0
	_, err := NewMapper().MapSong(notes(0, 1, 2, 3, 4, 5, 6), model.StrategyManual, &offset)

	assert := assert.New(t)
	assert.Error(err)
	assert.Contains(err.Error(), "found 7 unplayable notes")
	assert.Contains(err.Error(), "(and 2 more)")
}

func TestMappingIsDeterministic(t *testing.T) {
	m := NewMapper()
	first, err1 := m.MapSong(notes(0, 2, 4, 6), model.StrategyOptimal, nil)
	second, err2 := m.MapSong(notes(0, 2, 4, 6), model.StrategyOptimal, nil)

	assert := assert.New(t)
	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}

func TestMappedNotesStayInsideWindow(t *testing.T) {
	assert := assert.New(t)
	for _, s := range []model.Strategy{model.StrategyOptimal, model.StrategyHigh, model.StrategyLow} {
		mapped, err := NewMapper().MapSong(notes(0, 1.5, 3, 6), s, nil)
		assert.NoError(err)
		for _, h := range physicalHeights(mapped) {
			assert.GreaterOrEqual(h, instrument.MinPhysicalHeight)
			assert.LessOrEqual(h, instrument.MaxPhysicalHeight)
		}
	}
}

func mod(v, m float64) float64 {
	for v < 0 {
		v += m
	}
	for v >= m {
		v -= m
	}
	return v
}
