package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/logger"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/tracing"
)

// Status is the result of one submit attempt.
type Status string

const (
	StatusSent        Status = "sent"
	StatusInvalid     Status = "invalid"
	StatusFailed      Status = "failed"
	StatusRateLimited Status = "rate_limited"
)

// ErrRateLimited is the outcome error when a valid message is refused
// because its client submits too often.
var ErrRateLimited = errors.New("contact: too many submissions")

// Outcome describes what a submit did. Values is the form content after
// the attempt: empty on success, unchanged otherwise.
type Outcome struct {
	Status       Status
	Notification Notification
	Values       Values
	SubmissionID string
	Err          error
}

// ValidationError returns the validation failure, if that is why the
// attempt failed.
func (o Outcome) ValidationError() *ValidationError {
	var ve *ValidationError
	if errors.As(o.Err, &ve) {
		return ve
	}
	return nil
}

// Client identifies who submitted the form. Allow, when set, is asked once
// per valid submission right before delivery; invalid forms never reach it.
type Client struct {
	IP    string
	Allow func() bool
}

// Service runs the submit flow of the contact form.
type Service struct {
	sender Sender
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a contact service delivering through sender.
func NewService(sender Sender, log *slog.Logger) *Service {
	return &Service{
		sender: sender,
		log:    log.With(logger.Scope("contact.service")),
		now:    time.Now,
	}
}

// Submit validates the form, checks the client's submission budget and
// delivers it. The form is marked submitting
// for the whole call and released on every exit path. Exactly one
// notification is sent to sink per call. Delivery runs detached from ctx
// cancellation: once started it is not cut short.
func (s *Service) Submit(ctx context.Context, form *Form, client Client, sink NotificationSink) (out Outcome) {
	started := s.now()
	ctx, span := tracing.Start(ctx, "contact.submit")
	defer span.End()

	form.setSubmitting(true)
	defer func() {
		form.setSubmitting(false)
		span.SetAttributes(attribute.String("contact.outcome", string(out.Status)))
		if out.Status == StatusFailed {
			tracing.Fail(span, out.Err)
		}
		SubmissionsTotal.WithLabelValues(string(out.Status)).Inc()
		SubmitDuration.WithLabelValues(string(out.Status)).Observe(s.now().Sub(started).Seconds())
	}()

	result := Validate(form.Values())
	if !result.OK() {
		s.log.Debug("contact form rejected",
			slog.String("field", result.Err.Field.String()),
			slog.String("reason", result.Err.Message))
		return s.finish(sink, Outcome{
			Status:       StatusInvalid,
			Notification: invalidNotification(result.Err),
			Values:       form.Values(),
			Err:          result.Err,
		})
	}

	msg := Message{
		ID:         uuid.New(),
		Values:     result.Data,
		ReceivedAt: started,
		ClientIP:   client.IP,
	}
	span.SetAttributes(attribute.String("contact.submission_id", msg.ID.String()))

	if client.Allow != nil && !client.Allow() {
		RateLimitedTotal.Inc()
		s.log.Info("contact submission rate limited",
			slog.String("client_ip", client.IP))
		return s.finish(sink, Outcome{
			Status:       StatusRateLimited,
			Notification: RateLimitedNotification(),
			Values:       form.Values(),
			Err:          ErrRateLimited,
		})
	}

	if err := s.sender.Send(context.WithoutCancel(ctx), msg); err != nil {
		var de *DeliveryError
		if !errors.As(err, &de) {
			err = &DeliveryError{MessageID: msg.ID.String(), Err: err}
		}
		s.log.Warn("contact message not delivered",
			slog.String("submission_id", msg.ID.String()),
			logger.Error(err))
		return s.finish(sink, Outcome{
			Status:       StatusFailed,
			Notification: deliveryFailedNotification(),
			Values:       form.Values(),
			SubmissionID: msg.ID.String(),
			Err:          err,
		})
	}

	form.Reset()
	s.log.Info("contact message submitted",
		slog.String("submission_id", msg.ID.String()))
	return s.finish(sink, Outcome{
		Status:       StatusSent,
		Notification: sentNotification(),
		Values:       form.Values(),
		SubmissionID: msg.ID.String(),
	})
}

func (s *Service) finish(sink NotificationSink, out Outcome) Outcome {
	if sink != nil {
		sink.Notify(out.Notification)
	}
	return out
}
