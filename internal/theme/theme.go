// Package theme resolves the visitor's light/dark preference and carries it
// to the render tree as an explicit request-context value. The cookie is the
// only durable state the site keeps.
package theme

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
)

var Module = fx.Module("theme",
	fx.Provide(NewStore),
)

// Preference is a colour scheme.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
	// System means no choice is known; the browser's prefers-color-scheme
	// applies.
	System Preference = "system"
)

// ClientHintHeader carries the OS-level colour scheme when the browser
// supports user-preference client hints.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// Parse accepts "light" or "dark", case-insensitively. System is never
// stored, so it does not parse.
func Parse(s string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the opposite preference. System toggles to Dark; the
// browser script replaces that with the opposite of the scheme in effect.
func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

func (p Preference) String() string { return string(p) }

type ctxKey struct{}

// WithPreference stores p in ctx.
func WithPreference(ctx context.Context, p Preference) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the preference stored in ctx, or System.
func FromContext(ctx context.Context) Preference {
	if p, ok := ctx.Value(ctxKey{}).(Preference); ok {
		return p
	}
	return System
}

// Store reads and writes the preference cookie.
type Store struct {
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewStore creates a store from the theme configuration.
func NewStore(cfg *config.Config) *Store {
	return &Store{
		cookieName: cfg.Theme.CookieName,
		maxAge:     cfg.Theme.MaxAge,
		secure:     cfg.IsProduction(),
	}
}

// Resolve picks the preference for a request: the saved cookie, then the
// OS-level client hint, then System.
func (s *Store) Resolve(r *http.Request) Preference {
	if c, err := r.Cookie(s.cookieName); err == nil {
		if p, ok := Parse(c.Value); ok {
			return p
		}
	}
	if p, ok := Parse(strings.Trim(r.Header.Get(ClientHintHeader), `"`)); ok {
		return p
	}
	return System
}

// Update persists p. It is the only place the preference is written.
func (s *Store) Update(w http.ResponseWriter, p Preference) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    p.String(),
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: false,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware resolves the preference once per request and places it in the
// request context. It also asks supporting browsers for the client hint;
// Critical-CH makes them retry the first request with it attached.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", ClientHintHeader)
		w.Header().Set("Critical-CH", ClientHintHeader)
		w.Header().Add("Vary", ClientHintHeader)
		ctx := WithPreference(r.Context(), s.Resolve(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
