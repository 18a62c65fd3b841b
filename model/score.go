package model

import "encoding/json"

type Metadata struct {
	Title     string `json:"title"`
	Composer  string `json:"composer"`
	Copyright string `json:"copyright"`
}

// TimeSignature marshals as a [numerator, denominator] pair to match
// the document contract.
type TimeSignature struct {
	Numerator   int
	Denominator int
}

func (t TimeSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{t.Numerator, t.Denominator})
}

func (t *TimeSignature) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	t.Numerator = pair[0]
	t.Denominator = pair[1]
	return nil
}

// BarQuarters is the bar length implied by the signature, in quarter
// lengths.
func (t TimeSignature) BarQuarters() float64 {
	return float64(t.Numerator) * 4.0 / float64(t.Denominator)
}

type KeySignature struct {
	Sharps int    `json:"sharps"`
	Name   string `json:"name"`
	Mode   string `json:"mode,omitempty"`
}

// Measure is the per-measure record of the parsed document. Signature
// and tempo fields are only set for measures that declare them.
type Measure struct {
	Number           int            `json:"number"`
	StartQuarters    float64        `json:"start_time_quarters"`
	StartSeconds     float64        `json:"start_time_seconds"`
	DurationQuarters *float64       `json:"duration_quarters"`
	DurationSeconds  *float64       `json:"duration_seconds"`
	TimeSignature    *TimeSignature `json:"time_signature"`
	KeySignature     *KeySignature  `json:"key_signature"`
	Tempo            *float64       `json:"tempo"`
	NotesCount       int            `json:"notes_count"`
}

// ParsedScore is the full document produced by the parse command.
type ParsedScore struct {
	Notes         []TimedEvent  `json:"notes"`
	Measures      []Measure     `json:"measures"`
	Tempo         float64       `json:"tempo"`
	TimeSignature TimeSignature `json:"time_signature"`
	KeySignature  *KeySignature `json:"key_signature"`
	TotalDuration float64       `json:"total_duration"`
	Metadata      Metadata      `json:"metadata"`
}
