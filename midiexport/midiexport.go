// Package midiexport renders a timeline to a Standard MIDI File so the
// game notes can be played back or imported elsewhere. Rests become
// gaps between note on/off pairs.
package midiexport

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/cadence/constants"
	"github.com/jsphweid/cadence/model"
)

type rawEvent struct {
	tick  uint32
	isOff bool
	key   uint8
	vel   uint8
}

// FromTimeline builds a single-track SMF at a fixed tempo.
func FromTimeline(tl *model.Timeline, bpm float64) (*smf.SMF, error) {
	if bpm <= 0 {
		return nil, fmt.Errorf("cannot export midi with tempo %v", bpm)
	}

	var raw []rawEvent
	for _, e := range tl.Events {
		if e.Kind != model.EventNote && e.Kind != model.EventChordNote {
			continue
		}
		if e.MidiNumber < 0 || e.MidiNumber > 127 {
			continue
		}

		vel := uint8(constants.DefaultVelocity)
		if e.Velocity != nil && *e.Velocity > 0 && *e.Velocity < 128 {
			vel = uint8(*e.Velocity)
		}
		on := rawEvent{
			tick: quartersToTicks(e.StartQuarters),
			key:  uint8(e.MidiNumber),
			vel:  vel,
		}
		off := rawEvent{
			tick:  quartersToTicks(e.StartQuarters + e.DurationQuarters),
			isOff: true,
			key:   uint8(e.MidiNumber),
		}
		raw = append(raw, on, off)
	}

	// note offs first on tied ticks so re-struck pitches don't cancel
	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].tick != raw[j].tick {
			return raw[i].tick < raw[j].tick
		}
		return raw[i].isOff && !raw[j].isOff
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))

	var lastTick uint32
	for _, ev := range raw {
		delta := ev.tick - lastTick
		lastTick = ev.tick
		if ev.isOff {
			tr.Add(delta, midi.NoteOff(0, ev.key))
		} else {
			tr.Add(delta, midi.NoteOn(0, ev.key, ev.vel))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	s.Add(tr)
	return s, nil
}

func quartersToTicks(quarters float64) uint32 {
	return uint32(quarters*constants.TicksPerQuarter + 0.5)
}
