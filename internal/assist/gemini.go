package assist

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
)

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiGenerator(ctx context.Context, cfg config.AssistConfig) (*GeminiGenerator, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required for the gemini provider")
	}
	if cfg.GeminiModel == "" {
		return nil, fmt.Errorf("model name is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GoogleAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiGenerator{
		client:      client,
		model:       cfg.GeminiModel,
		temperature: float32(cfg.Temperature),
	}, nil
}

func (g *GeminiGenerator) Name() string { return "gemini" }

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: ptrFloat32(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return firstCandidateText(resp)
}

// firstCandidateText returns the text of the first part of the first
// candidate, the only shape the FAQ panel accepts.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0] == nil {
		return "", ErrEmptyResponse
	}
	if c.Content.Parts[0].Text == "" {
		return "", ErrEmptyResponse
	}
	return c.Content.Parts[0].Text, nil
}

func ptrFloat32(v float32) *float32 {
	return &v
}
