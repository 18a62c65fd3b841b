// Package drill is the interval-drill engine: generate a prompt, then
// grade the played answer. A drill is two transitions; all state rides
// along in the exchanged payloads.
package drill

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/jsphweid/cadence/model"
)

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Intervals maps interval names to semitone counts.
var Intervals = map[string]int{
	"Perfect Unison": 0,
	"Minor Second":   1,
	"Major Second":   2,
	"Minor Third":    3,
	"Major Third":    4,
	"Perfect Fourth": 5,
	"Tritone":        6,
	"Perfect Fifth":  7,
	"Minor Sixth":    8,
	"Major Sixth":    9,
	"Minor Seventh":  10,
	"Major Seventh":  11,
	"Perfect Octave": 12,
}

// the subset drilled for now; beginners first
var commonIntervals = []string{"Perfect Fifth", "Major Third", "Perfect Fourth", "Major Second"}

func NoteNameToNumber(name string, octave int) int {
	for i, n := range noteNames {
		if n == name {
			return (octave+1)*12 + i
		}
	}
	return -1
}

func NoteNumberToName(num int) string {
	octave := num/12 - 1
	return fmt.Sprintf("%v%v", noteNames[num%12], octave)
}

type Session struct {
	ID  string
	rng *rand.Rand
}

func NewSession(rng *rand.Rand) *Session {
	return &Session{ID: uuid.New().String(), rng: rng}
}

// Start picks a random interval from a random root in the playable
// C4..C6 range, clamping the pair back under C7.
func (s *Session) Start(score, streak int) model.DrillPrompt {
	name := commonIntervals[s.rng.Intn(len(commonIntervals))]
	semitones := Intervals[name]

	root := 60 + s.rng.Intn(25) // C4..C6
	if root+semitones > 96 {
		root = 96 - semitones
	}

	return model.DrillPrompt{
		SessionID:     s.ID,
		Prompt:        fmt.Sprintf("Play a %v starting from %v", name, NoteNumberToName(root)),
		ExpectedNotes: []int{root, root + semitones},
		Score:         score,
		Streak:        streak,
	}
}

// Evaluate grades an answer as an unordered note set. A correct answer
// scores 10 and extends the streak; any wrong answer resets the streak.
func Evaluate(answer model.DrillAnswer) model.DrillEvaluation {
	res := model.DrillEvaluation{
		Score:      answer.CurrentScore,
		Streak:     answer.CurrentStreak,
		IsComplete: true,
	}

	expected := toSet(answer.ExpectedNotes)
	played := toSet(answer.UserAnswer)

	switch {
	case len(played) == 0:
		res.Feedback = "No notes played. Try again!"
	case setsEqual(expected, played):
		res.Feedback = fmt.Sprintf("Correct! You played %v", joinNames(answer.ExpectedNotes))
		res.Score += 10
		res.Streak += 1
	case len(played) != len(expected):
		res.Feedback = fmt.Sprintf("Wrong number of notes. Expected %v, got %v", len(expected), len(played))
		res.Streak = 0
	default:
		res.Feedback = fmt.Sprintf("Incorrect. Expected: %v, Got: %v",
			joinNames(answer.ExpectedNotes), joinNames(answer.UserAnswer))
		res.Streak = 0
	}
	return res
}

func toSet(notes []int) map[int]bool {
	res := make(map[int]bool)
	for _, n := range notes {
		res[n] = true
	}
	return res
}

func setsEqual(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func joinNames(notes []int) string {
	var names []string
	for _, n := range notes {
		names = append(names, NoteNumberToName(n))
	}
	return strings.Join(names, ", ")
}
