// Package musicxml decodes partwise MusicXML documents into the score
// model. Offsets come out absolute within each part: the divisions
// cursor keeps running across measure boundaries and <backup>/<forward>
// move it the way multi-voice documents expect.
package musicxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/jsphweid/cadence/model"
	"github.com/jsphweid/cadence/score"
	"github.com/jsphweid/cadence/util"
)

func ParseFile(path string) (*score.Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}
	return s, nil
}

func Parse(r io.Reader) (*score.Score, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var doc xmlDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", score.ErrMalformed, err)
	}
	if len(doc.Parts) == 0 {
		return nil, fmt.Errorf("%w: document has no parts", score.ErrMalformed)
	}

	var s score.Score
	s.Metadata = convertMetadata(doc)
	for _, p := range doc.Parts {
		s.Parts = append(s.Parts, convertPart(p))
	}
	return &s, nil
}

func convertMetadata(doc xmlDocument) model.Metadata {
	var m model.Metadata
	m.Title = doc.MovementTitle
	if m.Title == "" {
		m.Title = doc.Work.Title
	}
	for _, c := range doc.Identification.Creators {
		if c.Type == "composer" || m.Composer == "" {
			m.Composer = strings.TrimSpace(c.Name)
		}
	}
	m.Copyright = doc.Identification.Rights
	return m
}

func convertPart(p xmlPart) score.Part {
	part := score.Part{ID: p.ID}

	divisions := 1
	var cursor float64 // quarter lengths from the start of the part

	for _, m := range p.Measures {
		info := score.MeasureInfo{
			Number:         m.Number,
			OffsetQuarters: cursor,
		}
		reached := cursor
		lastIdx := -1

		for _, ev := range m.Events {
			switch v := ev.(type) {
			case xmlAttributes:
				if v.Divisions > 0 {
					divisions = v.Divisions
				}
				if v.Time != nil {
					info.Time = &score.TimeSignature{
						Numerator:   v.Time.Beats,
						Denominator: v.Time.BeatType,
					}
				}
				if v.Key != nil {
					info.Key = &score.KeySignature{
						Sharps: v.Key.Fifths,
						Mode:   v.Key.Mode,
					}
				}
			case xmlSound:
				if v.Tempo > 0 && info.TempoBPM == 0 {
					info.TempoBPM = v.Tempo
				}
			case xmlBackup:
				cursor -= float64(v.Duration) / float64(divisions)
				cursor = util.Max(cursor, 0)
				lastIdx = -1
			case xmlForward:
				cursor += float64(v.Duration) / float64(divisions)
				lastIdx = -1
			case xmlNote:
				dur := -1.0
				if v.Duration > 0 && v.Grace == nil {
					dur = float64(v.Duration) / float64(divisions)
				}

				if v.Chord != nil && v.Pitch != nil && lastIdx >= 0 {
					// subsequent chord tone: shares the previous
					// note's offset and duration
					el := &part.Elements[lastIdx]
					el.Kind = score.KindChord
					el.Pitches = append(el.Pitches, convertPitch(*v.Pitch))
					continue
				}

				el := score.Element{
					OffsetQuarters:   cursor,
					DurationQuarters: dur,
					MeasureNumber:    m.Number,
				}
				if v.Rest != nil || v.Pitch == nil {
					el.Kind = score.KindRest
				} else {
					el.Kind = score.KindNote
					el.Pitches = []score.Pitch{convertPitch(*v.Pitch)}
					info.NotesCount++
				}
				part.Elements = append(part.Elements, el)
				lastIdx = len(part.Elements) - 1

				if dur > 0 {
					cursor += dur
				}
				reached = util.Max(reached, cursor)
			}
		}

		// a trailing <backup> must not bleed into the next measure
		cursor = util.Max(cursor, reached)
		part.Measures = append(part.Measures, info)
	}

	return part
}

var stepSemitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

func convertPitch(p xmlPitch) score.Pitch {
	midi := stepSemitones[p.Step] + (p.Octave+1)*12 + p.Alter

	name := p.Step
	if p.Alter > 0 {
		name += strings.Repeat("#", p.Alter)
	} else if p.Alter < 0 {
		name += strings.Repeat("b", -p.Alter)
	}

	return score.Pitch{
		Name:      name,
		Octave:    p.Octave,
		Midi:      midi,
		Frequency: 440.0 * math.Pow(2, float64(midi-69)/12.0),
	}
}
