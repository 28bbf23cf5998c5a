package contact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// State is where a form sits in its submission lifecycle.
type State int

const (
	Idle State = iota
	Submitting
	Submitted
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrInProgress is returned when a form is posted again while its first
	// submission is still being delivered.
	ErrInProgress = errors.New("contact: submission already in progress")
	// ErrAlreadySubmitted is returned while the confirmation is still shown.
	ErrAlreadySubmitted = errors.New("contact: form already submitted")

	// errRetired is returned by a flow its registry has already dropped.
	errRetired = errors.New("contact: flow retired")
)

// ValidationError carries the field errors that blocked a submission.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "contact: invalid fields: " + strings.Join(names, ", ")
}

// Snapshot is a copy of a flow's state safe to hand to a renderer.
type Snapshot struct {
	State   State
	Form    Form
	Errors  FieldErrors
	Receipt Receipt
	Err     error
}

// Flow drives one form through idle, submitting, submitted and failed.
// Submitted and failed flows return to idle with an empty form after the
// display duration.
type Flow struct {
	mu      sync.Mutex
	state   State
	form    Form
	errors  FieldErrors
	receipt Receipt
	err     error

	clock   clockwork.Clock
	display time.Duration
	timer   clockwork.Timer
	// gen identifies the scheduled reset. A reset whose generation is stale
	// was superseded by a later attempt and does nothing.
	gen     uint64
	retired bool
	onIdle  func()
}

// NewFlow returns an idle flow. onIdle, if set, runs after every automatic
// reset.
func NewFlow(c clockwork.Clock, display time.Duration, onIdle func()) *Flow {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return &Flow{clock: c, display: display, onIdle: onIdle}
}

// Submit validates form and, when valid, hands it to s. The call blocks until
// s returns; ctx is passed through so the caller can cancel delivery.
func (f *Flow) Submit(ctx context.Context, s Submitter, form Form) (Snapshot, error) {
	f.mu.Lock()
	if f.retired {
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, errRetired
	}
	switch f.state {
	case Submitting:
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, ErrInProgress
	case Submitted:
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, ErrAlreadySubmitted
	}

	f.form = form
	if errs := form.Validate(); errs != nil {
		f.errors = errs
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, &ValidationError{Fields: errs}
	}

	f.cancelResetLocked()
	f.state = Submitting
	f.errors = nil
	f.err = nil
	f.mu.Unlock()

	sub := Submission{
		ID:         uuid.NewString(),
		Form:       form,
		ReceivedAt: f.clock.Now(),
	}
	receipt, err := s.Submit(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Failed
		f.err = err
		f.scheduleResetLocked()
		return f.snapshotLocked(), err
	}
	f.state = Submitted
	f.receipt = receipt
	f.scheduleResetLocked()
	return f.snapshotLocked(), nil
}

// Snapshot returns the current state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// State returns the current lifecycle state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) snapshotLocked() Snapshot {
	var errs FieldErrors
	if f.errors != nil {
		errs = make(FieldErrors, len(f.errors))
		for k, v := range f.errors {
			errs[k] = v
		}
	}
	return Snapshot{
		State:   f.state,
		Form:    f.form,
		Errors:  errs,
		Receipt: f.receipt,
		Err:     f.err,
	}
}

func (f *Flow) cancelResetLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
}

func (f *Flow) scheduleResetLocked() {
	f.cancelResetLocked()
	gen := f.gen
	f.timer = f.clock.AfterFunc(f.display, func() { f.reset(gen) })
}

func (f *Flow) reset(gen uint64) {
	f.mu.Lock()
	if gen != f.gen || (f.state != Submitted && f.state != Failed) {
		f.mu.Unlock()
		return
	}
	f.state = Idle
	f.form = Form{}
	f.errors = nil
	f.err = nil
	f.receipt = Receipt{}
	f.timer = nil
	onIdle := f.onIdle
	f.mu.Unlock()

	if onIdle != nil {
		onIdle()
	}
}

// retireIfIdle marks an idle flow as no longer accepting submissions.
func (f *Flow) retireIfIdle() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Idle {
		return false
	}
	f.retired = true
	return true
}
