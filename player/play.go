package player

import (
	"context"
	"time"

	"github.com/ADAning/animal-well-flute-sub000/midifile"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

// PlayMIDI performs the bars on the first available MIDI out port,
// following the same absolute timeline as BuildSchedule. Cancelling the
// context stops playback and releases the sounding note.
func PlayMIDI(ctx context.Context, bars [][]model.PhysicalNote, bpm int) error {
	defer midi.CloseDriver()

	out, err := midi.OutPort(0)
	if err != nil {
		return err
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return err
	}

	beat := BeatInterval(bpm)
	start := time.Now()
	var next time.Duration

	for _, bar := range bars {
		for _, n := range bar {
			dur := time.Duration(n.TimeFactor * float64(beat))
			if err := waitUntil(ctx, start.Add(next)); err != nil {
				return err
			}
			if n.PhysicalHeight != nil {
				key := midifile.Key(*n.PhysicalHeight)
				if err := send(midi.NoteOn(0, key, 100)); err != nil {
					return err
				}
				if err := waitUntil(ctx, start.Add(next+dur)); err != nil {
					send(midi.NoteOff(0, key))
					return err
				}
				if err := send(midi.NoteOff(0, key)); err != nil {
					return err
				}
			}
			next += dur
		}
	}
	return nil
}

func waitUntil(ctx context.Context, t time.Time) error {
	d := time.Until(t)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
