package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/fx"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/ratelimit"
)

const (
	limiterPruneInterval = time.Minute
	limiterIdleTTL       = 10 * time.Minute
)

// Limiters guard the endpoints that reach out to third parties or keep
// per-visitor state.
type Limiters struct {
	Assist     *ratelimit.ClientLimiter
	Contact    *ratelimit.ClientLimiter
	Newsletter *ratelimit.ClientLimiter
}

func (l *Limiters) all() []*ratelimit.ClientLimiter {
	return []*ratelimit.ClientLimiter{l.Assist, l.Contact, l.Newsletter}
}

// NewLimiters builds the per-client limiters and prunes idle clients while
// the app runs.
func NewLimiters(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) *Limiters {
	l := &Limiters{
		Assist:     ratelimit.New("assist", cfg.Assist.RequestsPerMinute, cfg.Assist.Burst),
		Contact:    ratelimit.New("contact", cfg.Contact.RequestsPerMinute, cfg.Contact.Burst),
		Newsletter: ratelimit.New("newsletter", cfg.Newsletter.RequestsPerMinute, cfg.Newsletter.Burst),
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go l.prune(ctx, log)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return l
}

func (l *Limiters) prune(ctx context.Context, log *slog.Logger) {
	ticker := time.NewTicker(limiterPruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, cl := range l.all() {
				if n := cl.Prune(limiterIdleTTL); n > 0 {
					log.Debug("pruned idle rate limiters",
						slog.String("limiter", cl.Name()),
						slog.Int("count", n))
				}
			}
		}
	}
}

// RegisterRoutes mounts the site's routes on r.
func RegisterRoutes(r *chi.Mux, h *Handler, l *Limiters, cfg *config.Config) {
	r.Get("/", h.LandingPage)
	r.Get("/faq", h.FAQ)
	r.Get("/health", h.Health)

	r.With(l.Contact.Middleware(h.log)).Post("/contact", h.Contact)
	r.With(l.Newsletter.Middleware(h.log)).Post("/newsletter", h.Newsletter)
	r.Post("/theme", h.Theme)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
			MaxAge:         300,
		}))
		r.With(l.Assist.Middleware(h.log)).Post("/faq/ask", h.Ask)
		r.NotFound(h.NotFound)
	})

	r.NotFound(h.NotFound)
}
