// Package resolve extracts the governing tempo and signature defaults
// from a parsed score. The first marking found in document order wins;
// named fallbacks cover scores that carry none at all.
package resolve

import (
	"github.com/jsphweid/cadence/constants"
	"github.com/jsphweid/cadence/model"
	"github.com/jsphweid/cadence/score"
)

type Resolution struct {
	BPM  float64
	Time model.TimeSignature
	Key  *model.KeySignature
}

func Resolve(s *score.Score) Resolution {
	res := Resolution{
		BPM: constants.DefaultTempoBPM,
		Time: model.TimeSignature{
			Numerator:   constants.DefaultTimeNumerator,
			Denominator: constants.DefaultTimeDenominator,
		},
	}

	var haveBPM, haveTime bool
	for _, p := range s.Parts {
		for _, m := range p.Measures {
			if !haveBPM && m.TempoBPM > 0 {
				res.BPM = m.TempoBPM
				haveBPM = true
			}
			if !haveTime && m.Time != nil {
				res.Time = model.TimeSignature{
					Numerator:   m.Time.Numerator,
					Denominator: m.Time.Denominator,
				}
				haveTime = true
			}
			if res.Key == nil && m.Key != nil {
				res.Key = ConvertKey(*m.Key)
			}
		}
	}
	return res
}

func ConvertKey(k score.KeySignature) *model.KeySignature {
	mode := k.Mode
	if mode == "" {
		mode = "major"
	}
	return &model.KeySignature{
		Sharps: k.Sharps,
		Name:   KeyName(k.Sharps),
		Mode:   mode,
	}
}

// major key names by sharps, from 7 flats through 7 sharps
var keyNames = []string{
	"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F",
	"C",
	"G", "D", "A", "E", "B", "F#", "C#",
}

// KeyName maps a sharps/flats count to its major key name. A signature
// with no accidentals reads as the literal name "C".
func KeyName(sharps int) string {
	idx := sharps + 7
	if idx < 0 || idx >= len(keyNames) {
		return "C"
	}
	return keyNames[idx]
}
