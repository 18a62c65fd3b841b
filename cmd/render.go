package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsphweid/cadence/game"
	"github.com/jsphweid/cadence/model"
	"github.com/jsphweid/cadence/musicxml"
	"github.com/jsphweid/cadence/notation"
	"github.com/jsphweid/cadence/resolve"
	"github.com/jsphweid/cadence/timeline"
)

// ParseDocument runs the whole pipeline and returns the full parsed
// document: timeline events, measure table, signatures and metadata.
func ParseDocument(path string) (*model.ParsedScore, error) {
	s, err := musicxml.ParseFile(path)
	if err != nil {
		return nil, err
	}

	res := resolve.Resolve(s)
	tl, err := timeline.Build(s, res.BPM)
	if err != nil {
		return nil, err
	}

	return &model.ParsedScore{
		Notes:         tl.Events,
		Measures:      notation.Measures(s, res.BPM),
		Tempo:         res.BPM,
		TimeSignature: res.Time,
		KeySignature:  res.Key,
		TotalDuration: tl.TotalDuration,
		Metadata:      s.Metadata,
	}, nil
}

func GameDocument(path string) (*model.GameDocument, error) {
	s, err := musicxml.ParseFile(path)
	if err != nil {
		return nil, err
	}

	res := resolve.Resolve(s)
	tl, err := timeline.Build(s, res.BPM)
	if err != nil {
		return nil, err
	}

	doc := game.ToDocument(tl, s.Metadata, res.BPM)
	return &doc, nil
}

func NotationDocument(path string) (*model.NotationDocument, error) {
	s, err := musicxml.ParseFile(path)
	if err != nil {
		return nil, err
	}

	res := resolve.Resolve(s)
	tl, err := timeline.Build(s, res.BPM)
	if err != nil {
		return nil, err
	}

	return notation.ToNotation(s, res.BPM, tl.TotalDuration), nil
}

// fail prints the uniform error envelope and exits non-zero. Every
// fatal command failure funnels through here.
func fail(err error) {
	payload, _ := json.Marshal(model.ErrorResponse{Error: err.Error(), Success: false})
	fmt.Println(string(payload))
	os.Exit(1)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fail(err)
	}
}
