package models

import (
	"strings"
	"time"
)

type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// TimeLimit returns the display/answer budget in seconds for a difficulty
// tier. This fixed policy is the source of truth for timing; the Time field
// the generator returns inside each Question is advisory only.
func (d Difficulty) TimeLimit() int {
	switch d {
	case DifficultyMedium:
		return 60
	case DifficultyHard:
		return 120
	default:
		return 20
	}
}

// DifficultyForQuestion maps a 1-based question number onto the tier
// progression: 1-2 easy, 3-4 medium, 5-6 hard.
func DifficultyForQuestion(n int) Difficulty {
	switch {
	case n > 4:
		return DifficultyHard
	case n > 2:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Complete reports whether all fields required before an interview can
// start are present.
func (u UserInfo) Complete() bool {
	return strings.TrimSpace(u.Name) != "" &&
		strings.TrimSpace(u.Email) != "" &&
		strings.TrimSpace(u.Phone) != ""
}

// Question is a generated interview question together with its reference
// answer. The reference answer is kept on the session for evaluation and
// recruiter review; candidate-facing responses carry only the question text.
type Question struct {
	ID       int        `json:"id"`
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
	Level    Difficulty `json:"level"`
	Time     int        `json:"time"`
}

type Evaluation struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Session is one candidate's interview attempt. Questions, Answers, Scores
// and Evaluations are parallel, append-only slices; after every accepted
// answer len(Answers) == len(Scores) == len(Evaluations) <= len(Questions).
type Session struct {
	SessionID         string        `json:"sessionId"`
	CandidateID       string        `json:"candidateId"`
	UserInfo          UserInfo      `json:"userInfo"`
	CurrentQuestion   int           `json:"currentQuestion"`
	CurrentDifficulty Difficulty    `json:"currentDifficulty"`
	Questions         []Question    `json:"questions"`
	Answers           []string      `json:"answers"`
	Scores            []int         `json:"scores"`
	Evaluations       []Evaluation  `json:"evaluations"`
	Status            SessionStatus `json:"status"`
	Terminated        bool          `json:"terminated"`
	FinalScore        float64       `json:"finalScore"`
	Summary           string        `json:"summary"`
	StartTime         time.Time     `json:"startTime"`
	EndTime           *time.Time    `json:"endTime,omitempty"`
}
