package models

import "time"

// Candidate is the denormalized, immutable snapshot materialized exactly once
// when a session completes or is terminated. It is the recruiter-facing read
// side; the session itself remains the source of truth for the lifecycle.
type Candidate struct {
	SessionID   string       `gorm:"type:text;primary_key" json:"sessionId"`
	Name        string       `gorm:"type:text" json:"name"`
	Email       string       `gorm:"type:text" json:"email"`
	Phone       string       `gorm:"type:text" json:"phone"`
	FinalScore  float64      `gorm:"type:decimal(4,2)" json:"finalScore"`
	Summary     string       `gorm:"type:text" json:"summary"`
	Questions   []Question   `gorm:"serializer:json" json:"questions"`
	Answers     []string     `gorm:"serializer:json" json:"answers"`
	Scores      []int        `gorm:"serializer:json" json:"scores"`
	Evaluations []Evaluation `gorm:"serializer:json" json:"evaluations"`
	CompletedAt time.Time    `gorm:"type:timestamp" json:"completedAt"`
	Terminated  bool         `json:"terminated"`
	CreatedAt   time.Time    `gorm:"type:timestamp;default:now()" json:"-"`
}

func (Candidate) TableName() string {
	return "candidates"
}
