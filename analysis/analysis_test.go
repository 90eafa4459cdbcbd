package analysis

import (
	"testing"

	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRelativeSkipsRests(t *testing.T) {
	notes := []model.RelativeNote{
		{Notation: "1", RelativeHeight: model.Height(0), TimeFactor: 1},
		{Notation: "0", RelativeHeight: nil, TimeFactor: 1},
		{Notation: "h1", RelativeHeight: model.Height(6), TimeFactor: 1},
	}
	info := AnalyzeRelative(notes)

	assert := assert.New(t)
	assert.Equal(0.0, info.MinHeight)
	assert.Equal(6.0, info.MaxHeight)
	assert.Equal(6.0, info.Span)
	assert.Equal(2, info.NoteCount)
	assert.Equal(0.5, info.Octaves())
}

func TestAnalyzeRelativeEmpty(t *testing.T) {
	info := AnalyzeRelative(nil)
	assert.Equal(t, model.RangeInfo{}, info)
}

func TestAnalyzeRelativeAllRests(t *testing.T) {
	notes := []model.RelativeNote{
		{Notation: "0", TimeFactor: 1},
		{Notation: "0", TimeFactor: 1},
	}
	info := AnalyzeRelative(notes)
	assert.Equal(t, model.RangeInfo{}, info)
}

func TestAnalyzePhysical(t *testing.T) {
	notes := []model.PhysicalNote{
		{Notation: "1", PhysicalHeight: model.Height(-2), TimeFactor: 1},
		{Notation: "0", PhysicalHeight: nil, TimeFactor: 1},
		{Notation: "5", PhysicalHeight: model.Height(1.5), TimeFactor: 1},
	}
	info := AnalyzePhysical(notes)

	assert := assert.New(t)
	assert.Equal(-2.0, info.MinHeight)
	assert.Equal(1.5, info.MaxHeight)
	assert.Equal(3.5, info.Span)
	assert.Equal(2, info.NoteCount)
}

func TestAnalyzeSingleNote(t *testing.T) {
	notes := []model.RelativeNote{
		{Notation: "3", RelativeHeight: model.Height(2), TimeFactor: 1},
	}
	info := AnalyzeRelative(notes)

	assert := assert.New(t)
	assert.Equal(2.0, info.MinHeight)
	assert.Equal(2.0, info.MaxHeight)
	assert.Equal(0.0, info.Span)
	assert.Equal(1, info.NoteCount)
}
