package services

import (
	"encoding/json"
	"fmt"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionPrompt creates the prompt for generating one interview question
// at the requested difficulty tier.
func (pb *PromptBuilder) BuildQuestionPrompt(difficulty models.Difficulty, questionNumber int) string {
	return fmt.Sprintf(`Generate a single, simple, one-line full-stack development interview question related to React, Next.js, Vite, TailwindCSS, Node.js, or Express.js. Include a concise ideal answer. Focus on topics like hooks, functional/class components, props, state management, Context API, performance optimization, SSR, routing, lazy loading, custom hooks, integration with backend APIs, or common front-end/back-end patterns.

The question must match the "%s" difficulty level.

Return the output strictly as JSON with the following keys:
{
  "id": %d,
  "question": "string",
  "answer": "string",
  "level": "%s",
  "time": 60
}

Make sure:
- The question is concise (one line, not multi-step tasks).
- The answer is brief, clear, and technically accurate.
- Time is proportional to difficulty (easy: 60s, medium: 90s, hard: 120s).
- Do not include extra text or explanations outside the JSON.`,
		difficulty, questionNumber, difficulty)
}

// BuildEvaluationPrompt creates the prompt for scoring a candidate answer
// against the reference answer.
func (pb *PromptBuilder) BuildEvaluationPrompt(question models.Question, candidateAnswer string) string {
	return fmt.Sprintf(`Evaluate the candidate's answer by comparing it to the ideal answer. Consider the difficulty level when scoring.

Instructions:
- Score 0-10 based on accuracy, completeness, clarity, and technical correctness.
- Feedback: concise, constructive, max 50 words.
- Return strictly as JSON:
{
  "score": 0,
  "feedback": "string"
}
- Do not include extra text outside JSON.

Question: %s
Candidate Answer: %s
Ideal Answer (reference): %s
Difficulty Level: %s`,
		question.Question, candidateAnswer, question.Answer, question.Level)
}

// BuildSummaryPrompt creates the prompt for the final candidate summary over
// the full question/answer/score transcript.
func (pb *PromptBuilder) BuildSummaryPrompt(questions []models.Question, answers []string, scores []int) string {
	type entry struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Score    int    `json:"score"`
	}

	transcript := make([]entry, 0, len(questions))
	for i, q := range questions {
		e := entry{Question: q.Question}
		if i < len(answers) {
			e.Answer = answers[i]
		}
		if i < len(scores) {
			e.Score = scores[i]
		}
		transcript = append(transcript, e)
	}

	data, _ := json.Marshal(transcript)

	return fmt.Sprintf(`Create a brief candidate summary (max 100 words) based on the following data: %s.

Instructions:
- Return strictly as JSON:
{
  "summary": "string"
}
- Do not include extra text outside JSON.`, data)
}
