package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

func summaryTranscript() ([]models.Question, []string, []int) {
	questions := []models.Question{
		{ID: 1, Question: "Q1", Answer: "A1", Level: models.DifficultyEasy, Time: 60},
		{ID: 2, Question: "Q2", Answer: "A2", Level: models.DifficultyEasy, Time: 60},
		{ID: 3, Question: "Q3", Answer: "A3", Level: models.DifficultyMedium, Time: 90},
	}
	answers := []string{"first", "second", "third"}
	scores := []int{4, 5, 4}
	return questions, answers, scores
}

func TestSummaryGeneratorPassesThroughValidResponse(t *testing.T) {
	stub := &stubGenerator{response: `{"summary":"Consistent mid-level performance."}`}
	s := NewSummaryGenerator(stub, zap.NewNop())

	questions, answers, scores := summaryTranscript()
	summary := s.Generate(context.Background(), questions, answers, scores)

	assert.Equal(t, "Consistent mid-level performance.", summary)
}

func TestSummaryGeneratorFallbackReportsMeanToOneDecimal(t *testing.T) {
	questions, answers, scores := summaryTranscript()

	t.Run("upstream error", func(t *testing.T) {
		stub := &stubGenerator{err: errors.New("backend down")}
		s := NewSummaryGenerator(stub, zap.NewNop())

		summary := s.Generate(context.Background(), questions, answers, scores)
		assert.Equal(t, "Candidate completed interview with average score 4.3/10.", summary)
	})

	t.Run("unparsable response", func(t *testing.T) {
		stub := &stubGenerator{response: `no json here`}
		s := NewSummaryGenerator(stub, zap.NewNop())

		summary := s.Generate(context.Background(), questions, answers, scores)
		assert.Equal(t, "Candidate completed interview with average score 4.3/10.", summary)
	})

	t.Run("empty summary field", func(t *testing.T) {
		stub := &stubGenerator{response: `{"summary":"  "}`}
		s := NewSummaryGenerator(stub, zap.NewNop())

		summary := s.Generate(context.Background(), questions, answers, scores)
		assert.Equal(t, "Candidate completed interview with average score 4.3/10.", summary)
	})
}

func TestSummaryGeneratorEmptyTranscript(t *testing.T) {
	stub := &stubGenerator{response: `{"summary":"should not be called"}`}
	s := NewSummaryGenerator(stub, zap.NewNop())

	summary := s.Generate(context.Background(), nil, nil, nil)

	assert.Empty(t, summary)
	assert.Zero(t, stub.callCount())
}
