package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/cadence/model"
)

func intPtr(v int) *int { return &v }

func pitchedEvent(kind model.EventKind, midi int, start, dur float64) model.TimedEvent {
	octave := 4
	return model.TimedEvent{
		Kind:             kind,
		Pitch:            "C",
		Octave:           &octave,
		MidiNumber:       midi,
		Frequency:        261.63,
		StartSeconds:     start,
		DurationSeconds:  dur,
		StartQuarters:    start * 2,
		DurationQuarters: dur * 2,
		MeasureNumber:    intPtr(3),
		Velocity:         intPtr(80),
	}
}

func TestRestsNeverBecomeGameNotes(t *testing.T) {
	tl := &model.Timeline{Events: []model.TimedEvent{
		{Kind: model.EventRest, StartSeconds: 0, DurationSeconds: 1},
		pitchedEvent(model.EventNote, 60, 0, 0.25),
		pitchedEvent(model.EventChordNote, 64, 0, 0.25),
	}}

	notes := ToGameNotes(tl)
	assert := assert.New(t)
	assert.Len(notes, 2)
	assert.Equal(60, notes[0].MidiNumber)
	assert.Equal(64, notes[1].MidiNumber)
}

func TestHoldThresholdIsStrict(t *testing.T) {
	cases := []struct {
		durationSeconds float64
		expected        string
	}{
		{0.25, "tap"},
		{0.5, "tap"},
		{0.51, "hold"},
		{2.0, "hold"},
	}

	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			tl := &model.Timeline{Events: []model.TimedEvent{
				pitchedEvent(model.EventNote, 60, 0, c.durationSeconds),
			}}
			notes := ToGameNotes(tl)
			assert.Equal(t, c.expected, notes[0].NoteType)
		})
	}
}

func TestGameNoteFields(t *testing.T) {
	tl := &model.Timeline{Events: []model.TimedEvent{
		pitchedEvent(model.EventNote, 60, 1.5, 0.25),
	}}

	notes := ToGameNotes(tl)
	assert := assert.New(t)
	assert.Len(notes, 1)
	assert.Equal(1500.0, notes[0].StartTimeMs)
	assert.Equal(250.0, notes[0].DurationMs)
	assert.Equal("C4", notes[0].PitchName)
	assert.Equal(80, notes[0].Velocity)
	assert.Equal(3, notes[0].Measure)
}

func TestMeasureDefaultsToOne(t *testing.T) {
	e := pitchedEvent(model.EventNote, 60, 0, 0.25)
	e.MeasureNumber = nil
	tl := &model.Timeline{Events: []model.TimedEvent{e}}

	notes := ToGameNotes(tl)
	assert.Equal(t, 1, notes[0].Measure)
}

func TestToDocument(t *testing.T) {
	tl := &model.Timeline{
		Events:        []model.TimedEvent{pitchedEvent(model.EventNote, 60, 0, 0.25)},
		TotalDuration: 0.25,
	}
	meta := model.Metadata{Title: "Etude"}

	doc := ToDocument(tl, meta, 96)
	assert := assert.New(t)
	assert.Len(doc.Notes, 1)
	assert.Equal(meta, doc.Metadata)
	assert.Equal(96.0, doc.Tempo)
	assert.Equal(0.25, doc.TotalDuration)
}
