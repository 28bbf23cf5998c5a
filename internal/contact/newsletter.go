package contact

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
)

// ErrListFull is returned for new addresses once the list is at capacity.
var ErrListFull = errors.New("newsletter: subscriber list is full")

// Newsletter records footer sign-ups in memory. It stands in for a mailing
// list provider and only acknowledges the address.
type Newsletter struct {
	mu          sync.Mutex
	subscribers map[string]struct{}
	max         int
	log         *slog.Logger
}

// NewNewsletter creates an empty list holding at most
// cfg.Newsletter.MaxSubscribers addresses; non-positive means unbounded.
func NewNewsletter(cfg *config.Config, log *slog.Logger) *Newsletter {
	return &Newsletter{
		subscribers: make(map[string]struct{}),
		max:         cfg.Newsletter.MaxSubscribers,
		log:         log.With(logger.Scope("newsletter")),
	}
}

// Subscribe validates email and records it. Invalid addresses yield a
// *ValidationError. created is false when the address was already on the
// list; a new address on a full list yields ErrListFull.
func (n *Newsletter) Subscribe(ctx context.Context, email string) (created bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if msg := validateEmail(email); msg != "" {
		return false, &ValidationError{Fields: FieldErrors{FieldEmail: msg}}
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	n.mu.Lock()
	_, exists := n.subscribers[email]
	if !exists && n.max > 0 && len(n.subscribers) >= n.max {
		n.mu.Unlock()
		n.log.Warn("newsletter list full", slog.Int("max", n.max))
		return false, ErrListFull
	}
	n.subscribers[email] = struct{}{}
	n.mu.Unlock()

	if !exists {
		n.log.Info("newsletter subscription", slog.String("email", email))
	}
	return !exists, nil
}

// Count returns the number of distinct subscribers.
func (n *Newsletter) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}
