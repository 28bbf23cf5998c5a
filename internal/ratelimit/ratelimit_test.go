package ratelimit

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLimiter_BurstThenRefill(t *testing.T) {
	clk := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	l := newWithClock("assist", 6, 2, clk)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"), "burst exhausted")
	assert.True(t, l.Allow("5.6.7.8"), "clients are independent")

	clk.Advance(10 * time.Second)
	assert.True(t, l.Allow("1.2.3.4"), "one token every 10s at 6/min")
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestClientLimiter_Defaults(t *testing.T) {
	l := New("x", 0, 0)
	for i := 0; i < DefaultBurst; i++ {
		require.True(t, l.Allow("c"))
	}
	assert.False(t, l.Allow("c"))
}

func TestClientLimiter_Prune(t *testing.T) {
	clk := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	l := newWithClock("contact", 10, 3, clk)

	l.Allow("old")
	clk.Advance(time.Hour)
	l.Allow("fresh")

	assert.Equal(t, 1, l.Prune(30*time.Minute))
	assert.Equal(t, 1, l.Len())
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", ClientKey(r))

	r.RemoteAddr = "10.0.0.2"
	assert.Equal(t, "10.0.0.2", ClientKey(r))
}

func TestMiddleware_Rejects(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := New("test", 1, 1)
	h := l.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/faq/ask", nil))
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/faq/ask", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), `"rate_limited"`)
}
