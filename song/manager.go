// Package song loads and manages the tune library: built-in samples
// plus YAML/JSON files from a songs directory.
package song

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/ADAning/animal-well-flute-sub000/parser"
	"github.com/ADAning/animal-well-flute-sub000/util"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrSongNotFound = errors.New("song not found")

// songFile is the on-disk shape. Jianpu entries may be bar strings
// ("1 2 (3 4)"), bare numbers (key offsets) or nested sequences.
type songFile struct {
	Name        string  `yaml:"name" json:"name"`
	BPM         int     `yaml:"bpm" json:"bpm"`
	Jianpu      []any   `yaml:"jianpu" json:"jianpu"`
	Relative    float64 `yaml:"relative" json:"relative"`
	Description string  `yaml:"description" json:"description"`
}

type Manager struct {
	songsDir  string
	songs     map[string]model.Song
	nameToKey map[string]string
}

func NewManager(songsDir string) *Manager {
	m := &Manager{
		songsDir:  songsDir,
		songs:     make(map[string]model.Song),
		nameToKey: make(map[string]string),
	}
	m.load()
	return m
}

func (m *Manager) load() {
	for _, s := range sampleSongs() {
		m.put(s)
	}

	entries, err := os.ReadDir(m.songsDir)
	if err != nil {
		logrus.Debugf("no songs dir at %v: %v", m.songsDir, err)
		return
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}
		path := filepath.Join(m.songsDir, entry.Name())
		s, err := LoadFile(path)
		if err != nil {
			logrus.Warnf("skipping song file %v: %v", path, err)
			continue
		}
		m.put(s)
		loaded++
	}
	if loaded > 0 {
		logrus.Infof("loaded %d external songs from %v", loaded, m.songsDir)
	}
}

// Reload drops every external song and re-reads the songs directory.
func (m *Manager) Reload() {
	m.songs = make(map[string]model.Song)
	m.nameToKey = make(map[string]string)
	m.load()
}

// LoadFile reads one song file, normalizing its jianpu into the Element
// union.
func LoadFile(path string) (model.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Song{}, err
	}

	var sf songFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &sf)
	} else {
		err = yaml.Unmarshal(data, &sf)
	}
	if err != nil {
		return model.Song{}, err
	}
	if sf.Name == "" {
		return model.Song{}, errors.New("song has no name")
	}
	if len(sf.Jianpu) == 0 {
		return model.Song{}, errors.New("song has no jianpu")
	}

	bars, err := normalizeJianpu(sf.Jianpu)
	if err != nil {
		return model.Song{}, fmt.Errorf("song %q: %w", sf.Name, err)
	}
	return model.Song{
		Name:        sf.Name,
		BPM:         sf.BPM,
		Description: sf.Description,
		Offset:      sf.Relative,
		Jianpu:      bars,
	}, nil
}

// normalizeJianpu converts decoded file values into Elements. String
// bars go through the token parser; "|" splits several bars packed into
// one string.
func normalizeJianpu(raw []any) ([]model.Element, error) {
	var bars []model.Element
	for i, item := range raw {
		s, isString := item.(string)
		if !isString {
			el, err := model.ElementFromValue(item)
			if err != nil {
				return nil, fmt.Errorf("bar %d: %w", i+1, err)
			}
			bars = append(bars, el)
			continue
		}
		for _, seg := range strings.Split(s, "|") {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}
			el, err := parser.ParseBarString(seg)
			if err != nil {
				return nil, fmt.Errorf("bar %d: %w", i+1, err)
			}
			bars = append(bars, el)
		}
	}
	return bars, nil
}

func Key(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func (m *Manager) put(s model.Song) {
	key := Key(s.Name)
	m.songs[key] = s
	m.nameToKey[s.Name] = key
}

// Add registers a song under its derived key.
func (m *Manager) Add(s model.Song) {
	m.put(s)
	logrus.Infof("added song: %v", s.Name)
}

// Get resolves a song by exact name, falling back to key lookup.
func (m *Manager) Get(name string) (model.Song, error) {
	if key, ok := m.nameToKey[name]; ok {
		return m.songs[key], nil
	}
	if s, ok := m.songs[Key(name)]; ok {
		return s, nil
	}
	return model.Song{}, fmt.Errorf("%w: %q", ErrSongNotFound, name)
}

// List returns all song keys, sorted.
func (m *Manager) List() []string {
	return util.SortedKeys(m.songs)
}

// ListInfo returns display metadata for every song, sorted by key.
func (m *Manager) ListInfo() []model.SongInfo {
	infos := make([]model.SongInfo, 0, len(m.songs))
	for _, key := range m.List() {
		s := m.songs[key]
		infos = append(infos, model.SongInfo{
			Name:        s.Name,
			Description: s.Description,
			BPM:         s.BPM,
			Bars:        len(s.Jianpu),
		})
	}
	return infos
}
