package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
)

// Submission is a validated form handed to a Submitter.
type Submission struct {
	ID         string
	Form       Form
	ReceivedAt time.Time
}

// Receipt confirms a delivered submission.
type Receipt struct {
	SubmissionID string
	MessageID    string
	DeliveredAt  time.Time
}

// Submitter delivers a submission. Implementations must honour ctx
// cancellation.
type Submitter interface {
	Submit(ctx context.Context, s Submission) (Receipt, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, s Submission) (Receipt, error)

func (f SubmitterFunc) Submit(ctx context.Context, s Submission) (Receipt, error) {
	return f(ctx, s)
}

// SimulatedSubmitter stands in for a delivery backend: it waits a fixed
// delay and reports success, or gives up when ctx ends first.
type SimulatedSubmitter struct {
	delay time.Duration
	log   *slog.Logger
}

func NewSimulatedSubmitter(delay time.Duration, log *slog.Logger) *SimulatedSubmitter {
	return &SimulatedSubmitter{delay: delay, log: log.With(logger.Scope("contact.simulated"))}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	s.log.Info("contact submission accepted (simulated)",
		slog.String("submission_id", sub.ID),
		slog.String("email", sub.Form.Email))

	return Receipt{
		SubmissionID: sub.ID,
		MessageID:    "simulated-" + sub.ID,
		DeliveredAt:  time.Now(),
	}, nil
}
