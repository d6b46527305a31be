package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

func newQuestionGenerator(stub *stubGenerator) *QuestionGenerator {
	return NewQuestionGenerator(stub, rand.New(rand.NewSource(42)), zap.NewNop())
}

func TestQuestionGeneratorPassesThroughValidResponse(t *testing.T) {
	stub := &stubGenerator{response: `{"id":3,"question":"What is SSR?","answer":"Rendering on the server per request.","level":"medium","time":90}`}
	gen := newQuestionGenerator(stub)

	q := gen.Generate(context.Background(), models.DifficultyMedium, 3)

	assert.Equal(t, 3, q.ID)
	assert.Equal(t, "What is SSR?", q.Question)
	assert.Equal(t, models.DifficultyMedium, q.Level)
	assert.Equal(t, 90, q.Time)
}

func TestQuestionGeneratorFallsBackOnUpstreamError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("service unavailable")}
	gen := newQuestionGenerator(stub)

	q := gen.Generate(context.Background(), models.DifficultyHard, 5)

	assert.Equal(t, models.DifficultyHard, q.Level)
	assert.NotEmpty(t, q.Question)
	assert.NotEmpty(t, q.Answer)
}

func TestQuestionGeneratorFallsBackOnMissingField(t *testing.T) {
	// Reference answer absent: treated like a parse failure.
	stub := &stubGenerator{response: `{"id":2,"question":"What is JSX?","level":"easy","time":60}`}
	gen := newQuestionGenerator(stub)

	q := gen.Generate(context.Background(), models.DifficultyEasy, 2)

	assert.Equal(t, models.DifficultyEasy, q.Level)
	assert.NotEqual(t, "What is JSX?", q.Question)
	assert.NotEmpty(t, q.Answer)
}

func TestQuestionGeneratorFallsBackOnGarbage(t *testing.T) {
	stub := &stubGenerator{response: `the model rambled instead of returning JSON`}
	gen := newQuestionGenerator(stub)

	q := gen.Generate(context.Background(), models.DifficultyMedium, 4)

	assert.Equal(t, models.DifficultyMedium, q.Level)
}

func TestQuestionGeneratorSynthesizesPlaceholderWithoutBankEntry(t *testing.T) {
	stub := &stubGenerator{err: errors.New("service unavailable")}
	gen := newQuestionGenerator(stub)

	// No bank entries exist for an unknown tier.
	q := gen.Generate(context.Background(), models.Difficulty("expert"), 7)

	assert.Equal(t, 7, q.ID)
	assert.Equal(t, "No question available", q.Question)
	assert.Equal(t, "N/A", q.Answer)
	assert.Equal(t, models.Difficulty("expert"), q.Level)
	assert.Equal(t, 60, q.Time)
}

func TestQuestionGeneratorFallbackIsSeedDeterministic(t *testing.T) {
	stub := &stubGenerator{err: errors.New("down")}

	first := NewQuestionGenerator(stub, rand.New(rand.NewSource(7)), zap.NewNop()).
		Generate(context.Background(), models.DifficultyEasy, 1)
	second := NewQuestionGenerator(stub, rand.New(rand.NewSource(7)), zap.NewNop()).
		Generate(context.Background(), models.DifficultyEasy, 1)

	assert.Equal(t, first, second)
}
