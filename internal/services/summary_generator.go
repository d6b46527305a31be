package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

// SummaryGenerator produces a natural-language summary from the transcript.
// On upstream failure it falls back to a templated average-score sentence;
// an empty transcript yields an empty string so the caller can substitute
// its own text.
type SummaryGenerator struct {
	gen     Generator
	prompts *PromptBuilder
	logger  *zap.Logger
}

func NewSummaryGenerator(gen Generator, logger *zap.Logger) *SummaryGenerator {
	return &SummaryGenerator{
		gen:     gen,
		prompts: NewPromptBuilder(),
		logger:  logger,
	}
}

func (s *SummaryGenerator) Generate(ctx context.Context, questions []models.Question, answers []string, scores []int) string {
	if len(scores) == 0 {
		return ""
	}

	prompt := s.prompts.BuildSummaryPrompt(questions, answers, scores)

	raw, err := s.gen.GenerateJSON(ctx, prompt)
	if err != nil {
		s.logger.Warn("summary generation failed, using templated fallback", zap.Error(err))
		return s.fallback(scores)
	}

	var parsed struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || strings.TrimSpace(parsed.Summary) == "" {
		s.logger.Warn("summary response unparsable, using templated fallback", zap.Error(err))
		return s.fallback(scores)
	}

	return strings.TrimSpace(parsed.Summary)
}

func (s *SummaryGenerator) fallback(scores []int) string {
	total := 0
	for _, score := range scores {
		total += score
	}
	avg := float64(total) / float64(len(scores))
	return fmt.Sprintf("Candidate completed interview with average score %.1f/10.", avg)
}
