package constants

import "os"

func GetServeAddr() string {
	addr := os.Getenv("CADENCE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetMetadataTable() string {
	return os.Getenv("CADENCE_METADATA_TABLE")
}

func GetMetadataEndpoint() string {
	endpoint := os.Getenv("CADENCE_METADATA_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetTTSEndpoint() string {
	endpoint := os.Getenv("CADENCE_TTS_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://127.0.0.1:7860"
}

// Fallbacks used when the score carries no marking of its own.
const DefaultTempoBPM = 120.0
const DefaultVelocity = 64
const DefaultTimeNumerator = 4
const DefaultTimeDenominator = 4

// Notes sustained longer than this many seconds render as holds in the
// game. Fixed by the game's visuals, not derived from tempo.
const HoldThresholdSeconds = 0.5

// Max distance in quarter lengths for snapping a duration to the
// notation table before falling back to a quarter note.
const QuantizeToleranceQuarters = 0.1

const TicksPerQuarter = 480
