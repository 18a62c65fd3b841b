package model

// EventKind discriminates timeline events. A chord never appears as a
// single event; it is exploded into one ChordNote event per pitch.
type EventKind string

const (
	EventNote      EventKind = "note"
	EventChordNote EventKind = "chord_note"
	EventRest      EventKind = "rest"
)

// TimedEvent is the canonical unit of the flattened timeline. Pitch
// fields are only set for note/chord_note events.
type TimedEvent struct {
	Kind             EventKind `json:"type"`
	Pitch            string    `json:"pitch,omitempty"`
	Octave           *int      `json:"octave,omitempty"`
	MidiNumber       int       `json:"midi_number,omitempty"`
	Frequency        float64   `json:"frequency,omitempty"`
	DurationQuarters float64   `json:"duration_quarters"`
	DurationSeconds  float64   `json:"duration_seconds"`
	StartQuarters    float64   `json:"start_time_quarters"`
	StartSeconds     float64   `json:"start_time_seconds"`
	MeasureNumber    *int      `json:"measure_number"`
	Velocity         *int      `json:"velocity,omitempty"`
}

// EndSeconds is the absolute time at which the event stops sounding.
func (e TimedEvent) EndSeconds() float64 {
	return e.StartSeconds + e.DurationSeconds
}

// Timeline is the merged, chronologically ordered view over every part
// of a score. Events with equal start times keep the order in which
// their parts were walked.
type Timeline struct {
	Events        []TimedEvent
	TotalDuration float64
}
