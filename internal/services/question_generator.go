package services

import (
	"context"
	_ "embed"
	"encoding/json"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

//go:embed fallback_questions.json
var fallbackQuestionsRaw []byte

// QuestionGenerator produces one interview question at a requested difficulty.
// On any upstream failure or malformed response it falls back to the embedded
// static bank, so question generation never blocks the session state machine.
type QuestionGenerator struct {
	gen     Generator
	prompts *PromptBuilder
	bank    []models.Question
	logger  *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewQuestionGenerator(gen Generator, rng *rand.Rand, logger *zap.Logger) *QuestionGenerator {
	var bank []models.Question
	if err := json.Unmarshal(fallbackQuestionsRaw, &bank); err != nil {
		logger.Warn("failed to parse fallback question bank", zap.Error(err))
	}

	return &QuestionGenerator{
		gen:     gen,
		prompts: NewPromptBuilder(),
		bank:    bank,
		logger:  logger,
		rng:     rng,
	}
}

func (g *QuestionGenerator) Generate(ctx context.Context, difficulty models.Difficulty, questionNumber int) models.Question {
	prompt := g.prompts.BuildQuestionPrompt(difficulty, questionNumber)

	raw, err := g.gen.GenerateJSON(ctx, prompt)
	if err != nil {
		g.logger.Warn("question generation failed, using fallback bank",
			zap.String("difficulty", string(difficulty)),
			zap.Int("questionNumber", questionNumber),
			zap.Error(err))
		return g.fallback(difficulty, questionNumber)
	}

	var question models.Question
	if err := json.Unmarshal([]byte(raw), &question); err != nil {
		g.logger.Warn("question response unparsable, using fallback bank",
			zap.String("difficulty", string(difficulty)),
			zap.Error(err))
		return g.fallback(difficulty, questionNumber)
	}

	// All fields are required; a partial object is treated like a parse failure.
	if question.ID == 0 || question.Question == "" || question.Answer == "" ||
		question.Level == "" || question.Time == 0 {
		g.logger.Warn("question response missing required fields, using fallback bank",
			zap.String("difficulty", string(difficulty)))
		return g.fallback(difficulty, questionNumber)
	}

	return question
}

func (g *QuestionGenerator) fallback(difficulty models.Difficulty, questionNumber int) models.Question {
	var matching []models.Question
	for _, q := range g.bank {
		if q.Level == difficulty {
			matching = append(matching, q)
		}
	}

	if len(matching) == 0 {
		return models.Question{
			ID:       questionNumber,
			Question: "No question available",
			Answer:   "N/A",
			Level:    difficulty,
			Time:     60,
		}
	}

	g.rngMu.Lock()
	pick := matching[g.rng.Intn(len(matching))]
	g.rngMu.Unlock()
	return pick
}
