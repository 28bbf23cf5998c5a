package navigation

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Throttle invokes fn at most once per interval. The first call in a quiet
// period runs immediately; calls inside the interval are coalesced and the
// most recent argument is delivered when the interval ends, so the last
// event of a burst is never dropped.
type Throttle[T any] struct {
	interval time.Duration
	fn       func(T)
	clock    clockwork.Clock

	mu         sync.Mutex
	last       time.Time
	hasLast    bool
	pending    T
	hasPending bool
	timer      clockwork.Timer
	stopped    bool
}

// NewThrottle creates a throttle over fn. A nil clock uses the wall clock.
func NewThrottle[T any](interval time.Duration, c clockwork.Clock, fn func(T)) *Throttle[T] {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return &Throttle[T]{interval: interval, fn: fn, clock: c}
}

// Call submits an event.
func (t *Throttle[T]) Call(arg T) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}

	now := t.clock.Now()
	if t.timer == nil && (!t.hasLast || now.Sub(t.last) >= t.interval) {
		t.last, t.hasLast = now, true
		t.mu.Unlock()
		t.fn(arg)
		return
	}

	t.pending, t.hasPending = arg, true
	if t.timer == nil {
		wait := t.interval - now.Sub(t.last)
		t.timer = t.clock.AfterFunc(wait, t.flush)
	}
	t.mu.Unlock()
}

func (t *Throttle[T]) flush() {
	t.mu.Lock()
	t.timer = nil
	if t.stopped || !t.hasPending {
		t.mu.Unlock()
		return
	}
	arg := t.pending
	var zero T
	t.pending, t.hasPending = zero, false
	t.last, t.hasLast = t.clock.Now(), true
	t.mu.Unlock()

	t.fn(arg)
}

// Stop cancels any pending trailing call and ignores further events.
func (t *Throttle[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
