package assist

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/faq"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
	"github.com/AadarshMishraa/ADmyBrand/internal/metrics"
	"github.com/AadarshMishraa/ADmyBrand/internal/tracing"
)

// FallbackAnswer is shown whenever an answer could not be produced.
const FallbackAnswer = "Sorry, something went wrong while trying to get an answer. Please try again later."

// ErrEmptyQuestion rejects blank questions before any outbound call.
var ErrEmptyQuestion = errors.New("assist: question is empty")

// Answer is what the FAQ panel displays.
type Answer struct {
	Question string `json:"question"`
	Text     string `json:"answer"`
	// Fallback is set when Text is FallbackAnswer rather than a model answer.
	Fallback bool `json:"fallback"`
}

// Assistant turns a visitor question into an answer grounded in the catalog.
type Assistant struct {
	gen     Generator
	catalog *faq.Catalog
	timeout time.Duration
	log     *slog.Logger
}

func NewAssistant(gen Generator, catalog *faq.Catalog, cfg *config.Config, log *slog.Logger) *Assistant {
	return &Assistant{
		gen:     gen,
		catalog: catalog,
		timeout: cfg.Assist.Timeout,
		log:     log.With(logger.Scope("assist")),
	}
}

// Enabled reports whether a provider is configured.
func (a *Assistant) Enabled() bool {
	return a.gen != nil
}

func (a *Assistant) provider() string {
	if a.gen == nil {
		return "none"
	}
	return a.gen.Name()
}

// Ask answers question. The only error is ErrEmptyQuestion; every provider
// failure is logged and collapsed into FallbackAnswer. There is no retry.
func (a *Assistant) Ask(ctx context.Context, question string) (Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		metrics.AssistRequests.WithLabelValues(a.provider(), "rejected").Inc()
		return Answer{}, ErrEmptyQuestion
	}

	text, err := a.generate(ctx, question)
	if err != nil {
		a.log.Warn("assist answer failed, using fallback",
			slog.String("provider", a.provider()),
			logger.Error(err))
		metrics.AssistRequests.WithLabelValues(a.provider(), "fallback").Inc()
		return Answer{Question: question, Text: FallbackAnswer, Fallback: true}, nil
	}

	metrics.AssistRequests.WithLabelValues(a.provider(), "answered").Inc()
	return Answer{Question: question, Text: strings.TrimSpace(text)}, nil
}

func (a *Assistant) generate(ctx context.Context, question string) (text string, err error) {
	ctx, span := tracing.Start(ctx, "assist.generate",
		attribute.String("assist.provider", a.provider()),
		attribute.Int("assist.question_length", len(question)),
	)
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	if a.gen == nil {
		return "", errors.New("assist: no provider configured")
	}

	prompt, err := BuildPrompt(a.catalog, question)
	if err != nil {
		return "", err
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err = a.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	a.log.Debug("assist answered",
		slog.String("provider", a.gen.Name()),
		slog.Duration("took", time.Since(start)))
	return text, nil
}
