package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/logger"
)

// DefaultSubmitDelay is how long the simulated send takes.
const DefaultSubmitDelay = time.Second

// Sender delivers a validated message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryError wraps a failure of the underlying transport.
type DeliveryError struct {
	MessageID string
	Err       error
}

func (e *DeliveryError) Error() string {
	return "deliver contact message " + e.MessageID + ": " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// DelaySender stands in for a remote call: it waits a fixed delay and
// always succeeds. Nothing leaves the process.
type DelaySender struct {
	delay time.Duration
	sleep func(context.Context, time.Duration) error
	log   *slog.Logger
}

// NewDelaySender creates a DelaySender. A zero delay returns immediately.
func NewDelaySender(delay time.Duration, log *slog.Logger) *DelaySender {
	return &DelaySender{
		delay: delay,
		sleep: sleepCtx,
		log:   log.With(logger.Scope("contact.sender")),
	}
}

func (s *DelaySender) Send(ctx context.Context, msg Message) error {
	if err := s.sleep(ctx, s.delay); err != nil {
		return err
	}
	s.log.Debug("contact message accepted (simulated)",
		slog.String("submission_id", msg.ID.String()),
		slog.Duration("delay", s.delay))
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewSender picks the transport: Mailgun when email is enabled and
// configured, otherwise the simulated delay.
func NewSender(cfg *config.Config, log *slog.Logger) (Sender, error) {
	if cfg.Email.Enabled && cfg.Email.IsConfigured() {
		mg, err := NewMailgunSender(&cfg.Email, log)
		if err != nil {
			return nil, err
		}
		log.Info("contact form delivers via Mailgun",
			slog.String("domain", cfg.Email.MailgunDomain),
			slog.String("inbox", cfg.Email.Inbox))
		return mg, nil
	}

	log.Info("contact form uses simulated delivery",
		slog.Duration("delay", cfg.Contact.SubmitDelay))
	return NewDelaySender(cfg.Contact.SubmitDelay, log), nil
}
