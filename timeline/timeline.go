// Package timeline flattens a parsed score into one globally ordered
// sequence of timed events. Parts are walked independently and merged;
// chords explode into one event per pitch; offsets stay absolute within
// each part so multi-voice measures line up correctly.
package timeline

import (
	"fmt"
	"sort"

	"github.com/jsphweid/cadence/constants"
	"github.com/jsphweid/cadence/model"
	"github.com/jsphweid/cadence/score"
	"github.com/jsphweid/cadence/util"
)

// QuarterLengthToSeconds converts quarter lengths to seconds at the
// given tempo: 60 seconds per minute / quarter notes per minute.
func QuarterLengthToSeconds(bpm float64, quarters float64) float64 {
	return (60.0 / bpm) * quarters
}

// Build produces the merged timeline for a score at a fixed tempo.
// Elements without a usable duration are dropped; a score without any
// parts is fatal.
func Build(s *score.Score, bpm float64) (*model.Timeline, error) {
	if len(s.Parts) == 0 {
		return nil, fmt.Errorf("%w: no parts to build a timeline from", score.ErrMalformed)
	}
	if bpm <= 0 {
		bpm = constants.DefaultTempoBPM
	}

	var events []model.TimedEvent
	for _, p := range s.Parts {
		events = append(events, buildPart(p, bpm)...)
	}

	// ties keep per-part encounter order so simultaneity across
	// parts stays deterministic
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartSeconds < events[j].StartSeconds
	})

	var total float64
	for _, e := range events {
		total = util.Max(total, e.EndSeconds())
	}

	return &model.Timeline{Events: events, TotalDuration: total}, nil
}

func buildPart(part score.Part, bpm float64) []model.TimedEvent {
	var events []model.TimedEvent
	for _, el := range part.Elements {
		if el.DurationQuarters < 0 {
			continue
		}

		base := model.TimedEvent{
			StartQuarters:    el.OffsetQuarters,
			DurationQuarters: el.DurationQuarters,
			StartSeconds:     QuarterLengthToSeconds(bpm, el.OffsetQuarters),
			DurationSeconds:  QuarterLengthToSeconds(bpm, el.DurationQuarters),
		}
		if el.MeasureNumber > 0 {
			n := el.MeasureNumber
			base.MeasureNumber = &n
		}

		switch el.Kind {
		case score.KindRest:
			base.Kind = model.EventRest
			events = append(events, base)
		case score.KindNote:
			if len(el.Pitches) == 0 {
				continue
			}
			events = append(events, pitched(base, model.EventNote, el.Pitches[0], el.Velocity))
		case score.KindChord:
			for _, p := range el.Pitches {
				events = append(events, pitched(base, model.EventChordNote, p, el.Velocity))
			}
		}
	}
	return events
}

func pitched(base model.TimedEvent, kind model.EventKind, p score.Pitch, velocity int) model.TimedEvent {
	e := base
	e.Kind = kind
	e.Pitch = p.Name
	octave := p.Octave
	e.Octave = &octave
	e.MidiNumber = p.Midi
	e.Frequency = p.Frequency
	if velocity == 0 {
		velocity = constants.DefaultVelocity
	}
	e.Velocity = &velocity
	return e
}

// Query returns the events overlapping the half-open window
// [startSeconds, endSeconds). Events that end exactly at startSeconds
// or start exactly at endSeconds fall outside it. Input order is
// preserved.
func Query(tl *model.Timeline, startSeconds, endSeconds float64) []model.TimedEvent {
	var res []model.TimedEvent
	for _, e := range tl.Events {
		if e.StartSeconds < endSeconds && e.EndSeconds() > startSeconds {
			res = append(res, e)
		}
	}
	return res
}

// QueryFrom is Query with the window running to the end of the piece.
func QueryFrom(tl *model.Timeline, startSeconds float64) []model.TimedEvent {
	return Query(tl, startSeconds, tl.TotalDuration)
}
