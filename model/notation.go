package model

// NotationNote is one renderable entry of a measure. For chords, Keys
// and MidiNumbers list every pitch in chord order. Rests carry the
// conventional placeholder key and no midi numbers.
type NotationNote struct {
	Keys          []string `json:"keys"`
	Duration      string   `json:"duration"`
	StartTime     float64  `json:"startTime"`
	EndTime       float64  `json:"endTime"`
	ID            string   `json:"id"`
	MidiNumbers   []int    `json:"midiNumbers"`
	StemDirection string   `json:"stemDirection,omitempty"`
	IsRest        bool     `json:"isRest,omitempty"`
}

type NotationMeasure struct {
	Notes         []NotationNote `json:"notes"`
	MeasureNumber int            `json:"measureNumber"`
	Clef          string         `json:"clef"`
	TimeSignature *TimeSignature `json:"timeSignature"`
	KeySignature  string         `json:"keySignature,omitempty"`
}

type NotationDocument struct {
	Measures      []NotationMeasure `json:"measures"`
	Tempo         float64           `json:"tempo"`
	TotalDuration float64           `json:"totalDuration"`
	Metadata      Metadata          `json:"metadata"`
}
