// Package score defines the minimal parsed-score shape the rest of the
// system consumes. Parsers produce it; nothing here depends on how a
// document was decoded.
package score

import "github.com/jsphweid/cadence/model"

type ElementKind int

const (
	KindNote ElementKind = iota
	KindChord
	KindRest
)

type Pitch struct {
	Name      string
	Octave    int
	Midi      int
	Frequency float64
}

// Element is one note, chord or rest of a part. Offsets are absolute
// within the part in quarter lengths; voice and measure boundaries
// never reset them.
type Element struct {
	Kind    ElementKind
	Pitches []Pitch

	OffsetQuarters float64
	// Negative when the source carried no usable duration. Such
	// elements are dropped from the timeline instead of failing
	// the whole build.
	DurationQuarters float64

	// 0 when the element is detached from any measure.
	MeasureNumber int
	// 0 when the source left the velocity unspecified.
	Velocity int
}

type TimeSignature struct {
	Numerator   int
	Denominator int
}

type KeySignature struct {
	Sharps int
	Mode   string
}

type MeasureInfo struct {
	Number         int
	OffsetQuarters float64
	Time           *TimeSignature
	Key            *KeySignature
	// 0 when no tempo marking is attached to the measure.
	TempoBPM   float64
	NotesCount int
}

type Part struct {
	ID       string
	Elements []Element
	Measures []MeasureInfo
}

type Score struct {
	Parts    []Part
	Metadata model.Metadata
}
