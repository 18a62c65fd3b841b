package musicxml

import (
	"encoding/xml"
	"io"
	"strconv"
)

type xmlDocument struct {
	XMLName        xml.Name          `xml:"score-partwise"`
	Work           xmlWork           `xml:"work"`
	MovementTitle  string            `xml:"movement-title"`
	Identification xmlIdentification `xml:"identification"`
	Parts          []xmlPart         `xml:"part"`
}

type xmlWork struct {
	Title string `xml:"work-title"`
}

type xmlIdentification struct {
	Creators []xmlCreator `xml:"creator"`
	Rights   string       `xml:"rights"`
}

type xmlCreator struct {
	Type string `xml:"type,attr"`
	Name string `xml:",chardata"`
}

type xmlPart struct {
	ID       string       `xml:"id,attr"`
	Measures []xmlMeasure `xml:"measure"`
}

// xmlMeasure keeps its children in document order, which matters for
// the offset cursor: attributes, notes, backups and tempo directions
// all interact with it.
type xmlMeasure struct {
	Number int
	Events []interface{}
}

func (m *xmlMeasure) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "number" {
			m.Number, _ = strconv.Atoi(attr.Value)
		}
	}

	for {
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		t, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch t.Name.Local {
		case "attributes":
			var a xmlAttributes
			if err := d.DecodeElement(&a, &t); err != nil {
				return err
			}
			m.Events = append(m.Events, a)
		case "note":
			var n xmlNote
			if err := d.DecodeElement(&n, &t); err != nil {
				return err
			}
			m.Events = append(m.Events, n)
		case "backup":
			var b xmlBackup
			if err := d.DecodeElement(&b, &t); err != nil {
				return err
			}
			m.Events = append(m.Events, b)
		case "forward":
			var f xmlForward
			if err := d.DecodeElement(&f, &t); err != nil {
				return err
			}
			m.Events = append(m.Events, f)
		case "direction":
			var dir xmlDirection
			if err := d.DecodeElement(&dir, &t); err != nil {
				return err
			}
			if dir.Sound.Tempo > 0 {
				m.Events = append(m.Events, dir.Sound)
			}
		case "sound":
			var s xmlSound
			if err := d.DecodeElement(&s, &t); err != nil {
				return err
			}
			m.Events = append(m.Events, s)
		default:
			if err := d.Skip(); err != nil {
				return err
			}
		}
	}
	return nil
}

type xmlAttributes struct {
	Divisions int      `xml:"divisions"`
	Key       *xmlKey  `xml:"key"`
	Time      *xmlTime `xml:"time"`
}

type xmlKey struct {
	Fifths int    `xml:"fifths"`
	Mode   string `xml:"mode"`
}

type xmlTime struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type xmlDirection struct {
	Sound xmlSound `xml:"sound"`
}

type xmlSound struct {
	Tempo float64 `xml:"tempo,attr"`
}

type xmlBackup struct {
	Duration int `xml:"duration"`
}

type xmlForward struct {
	Duration int `xml:"duration"`
}

type xmlEmpty struct{}

type xmlNote struct {
	Grace    *xmlEmpty `xml:"grace"`
	Chord    *xmlEmpty `xml:"chord"`
	Rest     *xmlEmpty `xml:"rest"`
	Pitch    *xmlPitch `xml:"pitch"`
	Duration int       `xml:"duration"`
	Voice    int       `xml:"voice"`
}

type xmlPitch struct {
	Step   string `xml:"step"`
	Alter  int    `xml:"alter"`
	Octave int    `xml:"octave"`
}
