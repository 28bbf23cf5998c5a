package contact

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
)

// NewToken returns a fresh form token.
func NewToken() string {
	return uuid.NewString()
}

// Registry keys submission flows by form token. A flow is retired and
// dropped once it resets to idle; a request still holding it moves on to a
// fresh flow for the same token.
type Registry struct {
	mu    sync.Mutex
	flows map[string]*Flow

	submitter Submitter
	clock     clockwork.Clock
	display   time.Duration
	log       *slog.Logger
}

func NewRegistry(cfg *config.Config, submitter Submitter, log *slog.Logger) *Registry {
	return newRegistry(submitter, clockwork.NewRealClock(), cfg.Contact.DisplayDuration, log)
}

func newRegistry(submitter Submitter, c clockwork.Clock, display time.Duration, log *slog.Logger) *Registry {
	return &Registry{
		flows:     make(map[string]*Flow),
		submitter: submitter,
		clock:     c,
		display:   display,
		log:       log.With(logger.Scope("contact")),
	}
}

// Submit runs form through the flow for its token. A form without a token
// gets a fresh one, so it can never collide with another visitor's flow.
func (r *Registry) Submit(ctx context.Context, form Form) (Snapshot, error) {
	if form.Token == "" {
		form.Token = NewToken()
	}
	var (
		flow *Flow
		snap Snapshot
		err  error
	)
	for {
		flow = r.flow(form.Token)
		snap, err = flow.Submit(ctx, r.submitter, form)
		if !errors.Is(err, errRetired) {
			break
		}
	}

	var invalid *ValidationError
	switch {
	case err == nil:
		r.log.Info("contact form submitted",
			slog.String("token", form.Token),
			slog.String("message_id", snap.Receipt.MessageID))
	case errors.As(err, &invalid):
		r.log.Debug("contact form rejected",
			slog.String("token", form.Token),
			slog.String("state", snap.State.String()),
			logger.Error(err))
	case snap.State == Failed:
		r.log.Warn("contact form delivery failed",
			slog.String("token", form.Token),
			logger.Error(err))
	default:
		r.log.Debug("contact form rejected",
			slog.String("token", form.Token),
			logger.Error(err))
	}

	// A flow that never left idle holds nothing worth keeping.
	if snap.State == Idle {
		r.retire(form.Token, flow)
	}
	return snap, err
}

// State reports the state of the flow for token; unknown tokens are idle.
func (r *Registry) State(token string) State {
	r.mu.Lock()
	flow, ok := r.flows[token]
	r.mu.Unlock()
	if !ok {
		return Idle
	}
	return flow.State()
}

// Len returns the number of tracked flows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flows)
}

func (r *Registry) flow(token string) *Flow {
	r.mu.Lock()
	defer r.mu.Unlock()

	if flow, ok := r.flows[token]; ok {
		return flow
	}
	var flow *Flow
	flow = NewFlow(r.clock, r.display, func() { r.retire(token, flow) })
	r.flows[token] = flow
	return flow
}

// retire drops flow if it is still the one tracked for token and is idle.
// A flow that was picked up again in the meantime stays.
func (r *Registry) retire(token string, flow *Flow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.flows[token] != flow {
		return
	}
	if flow.retireIfIdle() {
		delete(r.flows, token)
	}
}
