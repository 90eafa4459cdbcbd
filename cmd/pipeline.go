package cmd

import (
	"github.com/ADAning/animal-well-flute-sub000/constants"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/ADAning/animal-well-flute-sub000/parser"
	"github.com/ADAning/animal-well-flute-sub000/song"
)

func loadSong(name string) (model.Song, *song.Manager, error) {
	manager := song.NewManager(constants.GetSongsDir())
	s, err := manager.Get(name)
	return s, manager, err
}

func parseSong(s model.Song) ([][]model.RelativeNote, *parser.Parser, error) {
	p := parser.New(nil)
	parsed, err := p.Parse(s.Jianpu)
	return parsed, p, err
}
