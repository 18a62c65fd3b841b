// Package game projects a timeline into the falling-note format the
// rhythm game renders. Rests never fall; they only shape the timeline.
package game

import (
	"fmt"

	"github.com/jsphweid/cadence/constants"
	"github.com/jsphweid/cadence/model"
)

func ToGameNotes(tl *model.Timeline) []model.GameNote {
	var res []model.GameNote
	for _, e := range tl.Events {
		if e.Kind != model.EventNote && e.Kind != model.EventChordNote {
			continue
		}

		velocity := constants.DefaultVelocity
		if e.Velocity != nil {
			velocity = *e.Velocity
		}
		measure := 1
		if e.MeasureNumber != nil {
			measure = *e.MeasureNumber
		}

		noteType := "tap"
		if e.DurationSeconds > constants.HoldThresholdSeconds {
			noteType = "hold"
		}

		octave := 0
		if e.Octave != nil {
			octave = *e.Octave
		}

		res = append(res, model.GameNote{
			MidiNumber:  e.MidiNumber,
			StartTimeMs: e.StartSeconds * 1000,
			DurationMs:  e.DurationSeconds * 1000,
			PitchName:   fmt.Sprintf("%v%v", e.Pitch, octave),
			Velocity:    velocity,
			Measure:     measure,
			NoteType:    noteType,
		})
	}
	return res
}

// ToDocument bundles game notes with the document-level fields the
// renderer expects.
func ToDocument(tl *model.Timeline, meta model.Metadata, bpm float64) model.GameDocument {
	return model.GameDocument{
		Notes:         ToGameNotes(tl),
		Metadata:      meta,
		Tempo:         bpm,
		TotalDuration: tl.TotalDuration,
	}
}
