// Package assist answers free-form visitor questions from the FAQ catalog
// through a hosted language model.
package assist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
)

// ErrEmptyResponse is returned when the provider answers without any text.
var ErrEmptyResponse = errors.New("assist: provider returned no text")

// Generator produces a completion for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Name returns the provider name used in logs and metrics.
	Name() string
}

// GeneratorFunc adapts a function to Generator; used by tests and
// alternative providers.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func (f GeneratorFunc) Name() string { return "func" }

// NewGenerator builds the configured provider. It returns a nil Generator
// and no error when assist is disabled.
func NewGenerator(cfg *config.Config, log *slog.Logger) (Generator, error) {
	log = log.With(logger.Scope("assist"))
	a := cfg.Assist
	if !a.IsEnabled() {
		log.Info("FAQ assist disabled (no provider configured)")
		return nil, nil
	}

	switch a.ResolvedProvider() {
	case "gemini":
		gen, err := NewGeminiGenerator(context.Background(), a)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		log.Info("FAQ assist enabled", slog.String("provider", gen.Name()), slog.String("model", a.GeminiModel))
		return gen, nil
	case "openai":
		gen := NewOpenAIGenerator(a)
		log.Info("FAQ assist enabled", slog.String("provider", gen.Name()), slog.String("model", a.OpenAIModel))
		return gen, nil
	default:
		return nil, fmt.Errorf("unknown assist provider %q", a.ResolvedProvider())
	}
}
