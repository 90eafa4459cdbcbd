// Package midifile renders mapped bars to a Standard MIDI File so a
// conversion can be previewed outside the game.
package midifile

import (
	"math"

	"github.com/ADAning/animal-well-flute-sub000/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerBeat = 960
	velocity     = 100

	// physical height 0 renders as middle C
	baseKey = 60
)

// Key converts a physical height to a MIDI key. Flute heights count
// half-steps where one octave spans 6 units, so one unit is two MIDI
// semitones.
func Key(height float64) uint8 {
	return uint8(baseKey + int(math.Round(height*2)))
}

// Write renders bars at the given tempo into an SMF file at path.
func Write(path string, bars [][]model.PhysicalNote, bpm int) error {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(float64(bpm)))

	var restTicks uint32
	for _, bar := range bars {
		for _, n := range bar {
			dur := uint32(math.Round(n.TimeFactor * ticksPerBeat))
			if n.PhysicalHeight == nil {
				restTicks += dur
				continue
			}
			key := Key(*n.PhysicalHeight)
			tr.Add(restTicks, midi.NoteOn(0, key, velocity))
			tr.Add(dur, midi.NoteOff(0, key))
			restTicks = 0
		}
	}
	tr.Close(0)

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)
	s.Tracks = append(s.Tracks, tr)
	return s.WriteFile(path)
}
