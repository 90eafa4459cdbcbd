package song

import (
	"path/filepath"
	"testing"

	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/stretchr/testify/assert"
)

func TestElementToString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("3", ElementToString(model.Scalar(3)))
	assert.Equal("2.5", ElementToString(model.Scalar(2.5)))
	assert.Equal("h1", ElementToString(model.Label("h1")))
	assert.Equal("(1,2)", ElementToString(model.Group(model.Scalar(1), model.Scalar(2))))
	assert.Equal("((1,2),3)", ElementToString(model.Group(
		model.Group(model.Scalar(1), model.Scalar(2)), model.Scalar(3))))
}

func TestBarToString(t *testing.T) {
	bar := model.Group(
		model.Label("3d"),
		model.Group(model.Scalar(2), model.Scalar(2)),
		model.Label("-"),
	)
	assert.Equal(t, "3d (2,2) -", BarToString(bar))
}

func TestBarToStringKeyOffset(t *testing.T) {
	assert.Equal(t, "0.5", BarToString(model.Scalar(0.5)))
}

func TestSaveSimplifiedRoundTrip(t *testing.T) {
	original := model.Song{
		Name:        "Round Trip",
		BPM:         100,
		Description: "format fixture",
		Offset:      0.5,
		Jianpu: []model.Element{
			model.Group(model.Scalar(1), model.Scalar(2), model.Group(model.Scalar(3), model.Scalar(4))),
			model.Group(model.Label("3d"), model.Label("-")),
		},
	}

	path := filepath.Join(t.TempDir(), "round_trip.yaml")
	assert := assert.New(t)
	assert.NoError(SaveSimplified(original, path))

	loaded, err := LoadFile(path)
	assert.NoError(err)
	assert.Equal(original, loaded)
}
