package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

// AnswerEvaluator scores one candidate answer against the reference answer.
// Upstream failures degrade to a length-based heuristic score instead of an
// error, so submitting an answer always produces an evaluation.
type AnswerEvaluator struct {
	gen     Generator
	prompts *PromptBuilder
	logger  *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewAnswerEvaluator(gen Generator, rng *rand.Rand, logger *zap.Logger) *AnswerEvaluator {
	return &AnswerEvaluator{
		gen:     gen,
		prompts: NewPromptBuilder(),
		logger:  logger,
		rng:     rng,
	}
}

func (e *AnswerEvaluator) Evaluate(ctx context.Context, question models.Question, candidateAnswer string) models.Evaluation {
	if question.Question == "" {
		return models.Evaluation{
			Score:    0,
			Feedback: "Error: Question text is missing. Cannot evaluate answer.",
		}
	}
	if question.Answer == "" {
		return models.Evaluation{
			Score:    0,
			Feedback: "Error: Ideal answer is missing. Cannot evaluate answer.",
		}
	}

	// Blank answers never reach the external capability.
	if strings.TrimSpace(candidateAnswer) == "" {
		return models.Evaluation{
			Score:    0,
			Feedback: "No answer provided.",
		}
	}

	prompt := e.prompts.BuildEvaluationPrompt(question, candidateAnswer)

	raw, err := e.gen.GenerateJSON(ctx, prompt)
	if err != nil {
		e.logger.Warn("answer evaluation failed, using heuristic score", zap.Error(err))
		return e.heuristic(candidateAnswer)
	}

	var evaluation models.Evaluation
	if err := json.Unmarshal([]byte(raw), &evaluation); err != nil {
		e.logger.Warn("evaluation response unparsable, using heuristic score", zap.Error(err))
		return e.heuristic(candidateAnswer)
	}

	if evaluation.Score < 0 {
		evaluation.Score = 0
	}
	if evaluation.Score > 10 {
		evaluation.Score = 10
	}

	return evaluation
}

// heuristic approximates a score from answer length: longer answers start at
// 6, short ones at 3, plus a random 0-2 bonus, capped at 10.
func (e *AnswerEvaluator) heuristic(candidateAnswer string) models.Evaluation {
	baseScore := 3
	if len(candidateAnswer) > 50 {
		baseScore = 6
	}

	e.rngMu.Lock()
	bonus := e.rng.Intn(3)
	e.rngMu.Unlock()

	score := baseScore + bonus
	if score > 10 {
		score = 10
	}

	return models.Evaluation{
		Score:    score,
		Feedback: "Answer evaluated. Provide more technical details.",
	}
}
