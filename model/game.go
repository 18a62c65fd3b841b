package model

// GameNote is one falling note of the rhythm game, in milliseconds.
type GameNote struct {
	MidiNumber  int     `json:"midi_number"`
	StartTimeMs float64 `json:"start_time_ms"`
	DurationMs  float64 `json:"duration_ms"`
	PitchName   string  `json:"pitch_name"`
	Velocity    int     `json:"velocity"`
	Measure     int     `json:"measure"`
	NoteType    string  `json:"note_type"`
}

type GameDocument struct {
	Notes         []GameNote `json:"notes"`
	Metadata      Metadata   `json:"metadata"`
	Tempo         float64    `json:"tempo"`
	TotalDuration float64    `json:"total_duration"`
}
