// Package notation re-walks a score measure by measure and projects it
// into the structure the sheet-music renderer consumes, snapping raw
// quarter lengths onto the supported duration codes.
package notation

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsphweid/cadence/constants"
	"github.com/jsphweid/cadence/model"
	"github.com/jsphweid/cadence/resolve"
	"github.com/jsphweid/cadence/score"
	"github.com/jsphweid/cadence/timeline"
	"github.com/jsphweid/cadence/util"
)

// Pitches at or above middle C get downward-pointing stems flipped up.
const stemFlipMidi = 60

// Rests render on the middle line by convention; B4 is not a pitch here.
const restPlaceholderKey = "B4"

var errMissingPitch = errors.New("element has no pitch data")
var errMissingDuration = errors.New("element has no duration")

var durationCodes = []struct {
	quarters float64
	code     string
}{
	{4.0, "w"},
	{3.0, "hd"},
	{2.0, "h"},
	{1.5, "qd"},
	{1.0, "q"},
	{0.75, "8d"},
	{0.5, "8"},
	{0.25, "16"},
	{0.125, "32"},
}

// Quantize maps a quarter-length duration to the nearest supported
// code. Anything further than the tolerance from every table entry
// falls back to a quarter note rather than producing an unsupported
// code; this absorbs float and tuplet imprecision.
func Quantize(quarters float64) string {
	best := durationCodes[0]
	bestDiff := math.Abs(quarters - best.quarters)
	for _, entry := range durationCodes[1:] {
		diff := math.Abs(quarters - entry.quarters)
		if diff < bestDiff {
			best = entry
			bestDiff = diff
		}
	}
	if bestDiff < constants.QuantizeToleranceQuarters {
		return best.code
	}
	return "q"
}

// ToNotation builds the per-measure rendering document. Elements that
// cannot be converted are skipped individually; the view degrades
// per element, never per measure.
func ToNotation(s *score.Score, bpm float64, totalDuration float64) *model.NotationDocument {
	doc := model.NotationDocument{
		Tempo:         bpm,
		TotalDuration: totalDuration,
		Metadata:      s.Metadata,
	}

	for _, p := range s.Parts {
		byMeasure := groupByMeasure(p)
		for _, info := range p.Measures {
			m := model.NotationMeasure{
				MeasureNumber: info.Number,
				Clef:          "treble",
				Notes:         []model.NotationNote{},
			}
			if info.Time != nil {
				m.TimeSignature = &model.TimeSignature{
					Numerator:   info.Time.Numerator,
					Denominator: info.Time.Denominator,
				}
			}
			if info.Key != nil {
				m.KeySignature = resolve.KeyName(info.Key.Sharps)
			}

			for _, el := range byMeasure[info.Number] {
				note, err := convertElement(el)
				if err != nil {
					continue
				}
				m.Notes = append(m.Notes, note)
			}
			doc.Measures = append(doc.Measures, m)
		}
	}
	return &doc
}

func groupByMeasure(p score.Part) map[int][]score.Element {
	res := make(map[int][]score.Element)
	for _, el := range p.Elements {
		res[el.MeasureNumber] = append(res[el.MeasureNumber], el)
	}
	return res
}

func convertElement(el score.Element) (model.NotationNote, error) {
	var note model.NotationNote
	if el.DurationQuarters < 0 {
		return note, errMissingDuration
	}

	note.Duration = Quantize(el.DurationQuarters)
	note.StartTime = el.OffsetQuarters
	note.EndTime = el.OffsetQuarters + el.DurationQuarters

	if el.Kind == score.KindRest {
		note.Keys = []string{restPlaceholderKey}
		note.MidiNumbers = []int{}
		note.IsRest = true
		note.ID = fmt.Sprintf("rest-%v", el.OffsetQuarters)
		return note, nil
	}

	if len(el.Pitches) == 0 {
		return note, errMissingPitch
	}

	minMidi := el.Pitches[0].Midi
	for _, p := range el.Pitches {
		note.Keys = append(note.Keys, fmt.Sprintf("%v%v", p.Name, p.Octave))
		note.MidiNumbers = append(note.MidiNumbers, p.Midi)
		minMidi = util.Min(minMidi, p.Midi)
	}
	note.StemDirection = stemDirection(minMidi)
	note.ID = fmt.Sprintf("note-%v-%v", el.OffsetQuarters, note.Keys[0])
	return note, nil
}

func stemDirection(midi int) string {
	if midi >= stemFlipMidi {
		return "up"
	}
	return "down"
}

// Measures derives the parsed document's measure table from the first
// part. Bar lengths come from the time signature in force, which is
// carried across measures until another one is declared.
func Measures(s *score.Score, bpm float64) []model.Measure {
	if len(s.Parts) == 0 {
		return nil
	}

	var res []model.Measure
	var active *score.TimeSignature
	for _, info := range s.Parts[0].Measures {
		if info.Time != nil {
			active = info.Time
		}

		m := model.Measure{
			Number:        info.Number,
			StartQuarters: info.OffsetQuarters,
			StartSeconds:  timeline.QuarterLengthToSeconds(bpm, info.OffsetQuarters),
			NotesCount:    info.NotesCount,
		}
		if active != nil {
			bar := model.TimeSignature{
				Numerator:   active.Numerator,
				Denominator: active.Denominator,
			}.BarQuarters()
			barSeconds := timeline.QuarterLengthToSeconds(bpm, bar)
			m.DurationQuarters = &bar
			m.DurationSeconds = &barSeconds
		}
		if info.Time != nil {
			m.TimeSignature = &model.TimeSignature{
				Numerator:   info.Time.Numerator,
				Denominator: info.Time.Denominator,
			}
		}
		if info.Key != nil {
			m.KeySignature = resolve.ConvertKey(*info.Key)
		}
		if info.TempoBPM > 0 {
			tempo := info.TempoBPM
			m.Tempo = &tempo
		}
		res = append(res, m)
	}
	return res
}
