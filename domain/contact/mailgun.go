package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/logger"
)

const mailgunTimeout = 30 * time.Second

type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunSender forwards contact messages to the company inbox.
type MailgunSender struct {
	cfg       *config.EmailConfig
	log       *slog.Logger
	client    mailgunClient
	templates *EmailTemplates
}

// NewMailgunSender creates a Mailgun-backed Sender.
func NewMailgunSender(cfg *config.EmailConfig, log *slog.Logger) (*MailgunSender, error) {
	s := &MailgunSender{cfg: cfg}
	if err := s.validate(); err != nil {
		return nil, err
	}

	templates, err := LoadEmailTemplates()
	if err != nil {
		return nil, err
	}

	s.log = log.With(logger.Scope("contact.mailgun"))
	s.client = mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	s.templates = templates
	return s, nil
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) error {
	content, err := s.templates.Render(msg)
	if err != nil {
		return &DeliveryError{MessageID: msg.ID.String(), Err: err}
	}

	from := (&mail.Address{Name: s.cfg.FromName, Address: s.cfg.FromEmail}).String()
	m := s.client.NewMessage(from, content.Subject, content.Text, s.cfg.Inbox)
	m.SetHtml(content.HTML)
	m.SetReplyTo(replyTo(msg.Values))
	m.AddHeader("X-Submission-ID", msg.ID.String())

	sendCtx, cancel := context.WithTimeout(ctx, mailgunTimeout)
	defer cancel()

	_, id, err := s.client.Send(sendCtx, m)
	if err != nil {
		s.log.Error("failed to deliver contact message",
			slog.String("submission_id", msg.ID.String()),
			logger.Error(err))
		return &DeliveryError{MessageID: msg.ID.String(), Err: err}
	}

	s.log.Info("contact message delivered",
		slog.String("submission_id", msg.ID.String()),
		slog.String("mailgun_id", id))
	return nil
}

// replyTo quotes the visitor's name so commas or angle brackets in it
// cannot split the address list.
func replyTo(v Values) string {
	return (&mail.Address{Name: v.Name, Address: v.Email}).String()
}

func (s *MailgunSender) validate() error {
	if s.cfg.MailgunDomain == "" {
		return errors.New("MAILGUN_DOMAIN is required")
	}
	if s.cfg.MailgunAPIKey == "" {
		return errors.New("MAILGUN_API_KEY is required")
	}
	if s.cfg.FromEmail == "" {
		return errors.New("EMAIL_FROM_ADDRESS is required")
	}
	if s.cfg.FromName == "" {
		return errors.New("EMAIL_FROM_NAME is required")
	}
	if s.cfg.Inbox == "" {
		return errors.New("CONTACT_INBOX is required")
	}
	return nil
}
