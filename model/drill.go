package model

type DrillPrompt struct {
	SessionID     string `json:"session_id"`
	Prompt        string `json:"prompt"`
	ExpectedNotes []int  `json:"expected_notes"`
	Score         int    `json:"score"`
	Streak        int    `json:"streak"`
}

// DrillAnswer carries the whole drill state back in, so evaluation
// stays stateless across process invocations.
type DrillAnswer struct {
	ExpectedNotes []int `json:"expected_notes"`
	UserAnswer    []int `json:"user_answer"`
	CurrentScore  int   `json:"current_score"`
	CurrentStreak int   `json:"current_streak"`
}

type DrillEvaluation struct {
	Feedback   string `json:"feedback"`
	Score      int    `json:"score"`
	Streak     int    `json:"streak"`
	IsComplete bool   `json:"is_complete"`
}
