package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Generator is the narrow surface the three interview adapters consume. The
// external capability is unreliable by contract, so every call site must be
// prepared for an error or unparsable output and engage its own fallback.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

type geminiGenerator struct {
	client     *genai.Client
	modelName  string
	embedModel string
	timeout    time.Duration
}

func NewGeminiGenerator(ctx context.Context, apiKey, model, embedModel string, timeout time.Duration) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &geminiGenerator{
		client:     client,
		modelName:  model,
		embedModel: embedModel,
		timeout:    timeout,
	}, nil
}

// GenerateJSON implements Generator.
func (g *geminiGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temperature := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  2048,
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return ExtractJSON(text), nil
}

// EmbedText implements Generator.
func (g *geminiGenerator) EmbedText(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Truncate text if too long for the embedding model
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// ExtractJSON strips markdown fences and surrounding prose from model output,
// returning the innermost JSON object or array.
func ExtractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}
	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
