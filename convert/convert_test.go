package convert

import (
	"testing"

	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/ADAning/animal-well-flute-sub000/parser"
	"github.com/stretchr/testify/assert"
)

func parseBars(t *testing.T, bars []model.Element) [][]model.RelativeNote {
	t.Helper()
	parsed, err := parser.New(nil).Parse(bars)
	assert.NoError(t, err)
	return parsed
}

func scaleBars() []model.Element {
	return []model.Element{
		model.Group(model.Scalar(1), model.Scalar(2)),
		model.Group(model.Scalar(3), model.Scalar(5), model.Scalar(6)),
		model.Group(model.Scalar(0)),
	}
}

func TestConvertPreservesBarStructure(t *testing.T) {
	parsed := parseBars(t, scaleBars())
	bars, used, err := New().Convert(parsed, Options{})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(model.StrategyOptimal, used)
	assert.Len(bars, 3)
	assert.Len(bars[0], 2)
	assert.Len(bars[1], 3)
	assert.Len(bars[2], 1)
	assert.True(bars[2][0].IsRest())
}

func TestConvertKeepsNoteOrderAndTiming(t *testing.T) {
	parsed := parseBars(t, scaleBars())
	bars, _, err := New().Convert(parsed, Options{Strategy: "low"})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("1", bars[0][0].Notation)
	assert.Equal("6", bars[1][2].Notation)
	assert.Equal(parsed[0][0].TimeFactor, bars[0][0].TimeFactor)
	// low strategy pins the melody floor to the window bottom
	assert.Equal(-6.0, *bars[0][0].PhysicalHeight)
}

func TestConvertAutoReportsChosenStrategy(t *testing.T) {
	parsed := parseBars(t, scaleBars())
	_, used, err := New().Convert(parsed, Options{Strategy: "auto"})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains([]model.Strategy{model.StrategyOptimal, model.StrategyHigh, model.StrategyLow}, used)
}

func TestConvertAutoHonorsPreference(t *testing.T) {
	parsed := parseBars(t, scaleBars())
	_, used, err := New().Convert(parsed, Options{Strategy: "auto", Preference: "high"})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(model.StrategyHigh, used)
}

func TestConvertManualRequiresOffset(t *testing.T) {
	parsed := parseBars(t, scaleBars())
	_, _, err := New().Convert(parsed, Options{Strategy: "manual"})
	assert.ErrorContains(t, err, "manual offset is required")
}

func TestConvertManualAppliesOffset(t *testing.T) {
	offset := 1.0
	parsed := parseBars(t, scaleBars())
	bars, used, err := New().Convert(parsed, Options{Strategy: "manual", ManualOffset: &offset})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(model.StrategyManual, used)
	assert.Equal(1.0, *bars[0][0].PhysicalHeight)
}

func TestConvertRejectsUnknownStrategy(t *testing.T) {
	parsed := parseBars(t, scaleBars())
	_, _, err := New().Convert(parsed, Options{Strategy: "sideways"})
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestConvertPropagatesMappingFailure(t *testing.T) {
	parsed := parseBars(t, []model.Element{
		model.Group(model.Scalar(1), model.Label("h17")),
	})
	_, _, err := New().Convert(parsed, Options{})
	assert.ErrorContains(t, err, "exceeds")
}

func TestGetPreviewCountsShape(t *testing.T) {
	parsed := parseBars(t, scaleBars())
	preview := New().GetPreview(parsed)

	assert := assert.New(t)
	assert.Equal(3, preview.BarCount)
	assert.Equal(6, preview.TotalNotes)
	assert.Len(preview.Suggestions.Strategies, 3)
}
