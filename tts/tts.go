// Package tts is a thin client for the local speech-synthesis
// collaborator. It only shuttles a request over and reports the path
// of the rendered audio file.
package tts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Request struct {
	Text   string  `json:"text"`
	Voice  string  `json:"voice_name"`
	Format string  `json:"format"`
	Speed  float64 `json:"speed"`
}

type Result struct {
	Success   bool   `json:"success"`
	AudioPath string `json:"audio_path,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

const DefaultVoice = "af_heart"
const DefaultFormat = "wav"

var client = &http.Client{Timeout: 60 * time.Second}

func Generate(endpoint string, req Request) (Result, error) {
	var res Result

	if req.Voice == "" {
		req.Voice = DefaultVoice
	}
	if req.Format == "" {
		req.Format = DefaultFormat
	}
	if req.Speed == 0 {
		req.Speed = 1.0
	}

	body, err := json.Marshal(req)
	if err != nil {
		return res, err
	}

	resp, err := client.Post(endpoint+"/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		return res, fmt.Errorf("calling tts server: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return res, fmt.Errorf("decoding tts response: %w", err)
	}
	return res, nil
}
