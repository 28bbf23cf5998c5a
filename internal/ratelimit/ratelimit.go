// Package ratelimit keeps one token bucket per client for endpoints that
// trigger outbound work.
package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/AadarshMishraa/ADmyBrand/internal/apperror"
	"github.com/AadarshMishraa/ADmyBrand/internal/metrics"
)

// Default limits applied when a limiter is created with non-positive values.
const (
	DefaultRequestsPerMinute = 60
	DefaultBurst             = 10
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter manages rate limiters for individual clients
type ClientLimiter struct {
	name  string
	limit rate.Limit
	burst int
	clock clockwork.Clock

	mu      sync.RWMutex
	clients map[string]*entry
}

// New creates a limiter allowing reqPerMin requests per minute per client
// with the given burst.
func New(name string, reqPerMin, burst int) *ClientLimiter {
	return newWithClock(name, reqPerMin, burst, clockwork.NewRealClock())
}

func newWithClock(name string, reqPerMin, burst int, c clockwork.Clock) *ClientLimiter {
	if reqPerMin <= 0 {
		reqPerMin = DefaultRequestsPerMinute
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &ClientLimiter{
		name:    name,
		limit:   rate.Every(time.Minute / time.Duration(reqPerMin)),
		burst:   burst,
		clock:   c,
		clients: make(map[string]*entry),
	}
}

// Name identifies the limiter in logs and metrics.
func (l *ClientLimiter) Name() string { return l.name }

// Allow reports whether client may make a request now.
func (l *ClientLimiter) Allow(client string) bool {
	now := l.clock.Now()
	e := l.get(client, now)
	return e.limiter.AllowN(now, 1)
}

// get retrieves or creates the entry for a client
func (l *ClientLimiter) get(client string, now time.Time) *entry {
	l.mu.RLock()
	e, ok := l.clients[client]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		e.lastSeen = now
		l.mu.Unlock()
		return e
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double check to prevent race condition
	if e, ok = l.clients[client]; ok {
		e.lastSeen = now
		return e
	}
	e = &entry{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.clients[client] = e
	return e
}

// Prune drops clients idle for longer than idle and returns how many were removed.
func (l *ClientLimiter) Prune(idle time.Duration) int {
	cutoff := l.clock.Now().Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for client, e := range l.clients {
		if e.lastSeen.Before(cutoff) {
			delete(l.clients, client)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// ClientKey identifies the caller by IP. It expects chi's RealIP middleware
// to have already rewritten RemoteAddr.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware rejects requests over the limit with a 429 JSON error.
func (l *ClientLimiter) Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := ClientKey(r)
			if !l.Allow(client) {
				metrics.RateLimited.WithLabelValues(l.name).Inc()
				log.Warn("rate limit exceeded",
					slog.String("limiter", l.name),
					slog.String("client", client),
					slog.String("path", r.URL.Path))
				w.Header().Set("Retry-After", "60")
				apperror.WriteJSON(w, r, log, apperror.ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
