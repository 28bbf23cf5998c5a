package contact

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aymerick/raymond"
	"github.com/mailgun/mailgun-go/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AadarshMishraa/ADmyBrand/internal/config"
	"github.com/AadarshMishraa/ADmyBrand/internal/logger"
	"github.com/AadarshMishraa/ADmyBrand/internal/tracing"
)

//go:embed templates/contact_email.hbs
var emailTemplateSource string

// emailTemplate is parsed once; raymond templates are safe for concurrent use.
var emailTemplate = raymond.MustParse(emailTemplateSource)

// RenderEmail renders the subject and plain-text body for a submission.
func RenderEmail(sub Submission) (subject, body string, err error) {
	body, err = emailTemplate.Exec(map[string]interface{}{
		"id":       sub.ID,
		"name":     sub.Form.Name,
		"email":    sub.Form.Email,
		"company":  sub.Form.Company,
		"message":  sub.Form.Message,
		"received": sub.ReceivedAt.UTC().Format(time.RFC1123),
	})
	if err != nil {
		return "", "", fmt.Errorf("render contact email: %w", err)
	}
	return fmt.Sprintf("Contact request from %s", sub.Form.Name), body, nil
}

// MailgunSubmitter delivers submissions as email through Mailgun.
type MailgunSubmitter struct {
	cfg    config.ContactConfig
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewMailgunSubmitter returns nil when Mailgun is not configured.
func NewMailgunSubmitter(cfg config.ContactConfig, log *slog.Logger) *MailgunSubmitter {
	if !cfg.IsMailgunConfigured() {
		return nil
	}
	return &MailgunSubmitter{
		cfg:    cfg,
		log:    log.With(logger.Scope("contact.mailgun")),
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
	}
}

func (s *MailgunSubmitter) validate() error {
	if s.cfg.MailgunDomain == "" {
		return errors.New("MAILGUN_DOMAIN is required")
	}
	if s.cfg.MailgunAPIKey == "" {
		return errors.New("MAILGUN_API_KEY is required")
	}
	if s.cfg.ToEmail == "" {
		return errors.New("CONTACT_TO_ADDRESS is required")
	}
	if s.cfg.FromEmail == "" {
		return errors.New("CONTACT_FROM_ADDRESS is required")
	}
	return nil
}

func (s *MailgunSubmitter) Submit(ctx context.Context, sub Submission) (_ Receipt, err error) {
	ctx, span := tracing.Start(ctx, "contact.mailgun.send",
		attribute.String("contact.submission_id", sub.ID),
		attribute.String("contact.mailgun.domain", s.cfg.MailgunDomain),
	)
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	if err := s.validate(); err != nil {
		return Receipt{}, fmt.Errorf("mailgun configuration invalid: %w", err)
	}

	subject, body, err := RenderEmail(sub)
	if err != nil {
		return Receipt{}, err
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	message := s.client.NewMessage(from, subject, body, s.cfg.ToEmail)
	message.SetReplyTo(sub.Form.Email)

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		s.log.Error("failed to send contact email",
			slog.String("submission_id", sub.ID),
			logger.Error(err))
		return Receipt{}, fmt.Errorf("send contact email: %w", err)
	}

	s.log.Info("contact email sent",
		slog.String("submission_id", sub.ID),
		slog.String("message_id", messageID))
	span.SetAttributes(attribute.String("contact.message_id", messageID))

	return Receipt{
		SubmissionID: sub.ID,
		MessageID:    messageID,
		DeliveredAt:  time.Now(),
	}, nil
}

// NewSubmitter picks Mailgun when configured and the simulated stand-in
// otherwise.
func NewSubmitter(cfg *config.Config, log *slog.Logger) Submitter {
	if mg := NewMailgunSubmitter(cfg.Contact, log); mg != nil {
		log.Info("using Mailgun contact submitter",
			slog.String("domain", cfg.Contact.MailgunDomain),
			slog.String("to", cfg.Contact.ToEmail))
		return mg
	}

	log.Info("using simulated contact submitter (Mailgun not configured)",
		slog.Duration("delay", cfg.Contact.SimulatedDelay))
	return NewSimulatedSubmitter(cfg.Contact.SimulatedDelay, log)
}
