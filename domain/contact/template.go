package contact

import (
	"embed"
	"fmt"
	"strings"

	"github.com/aymerick/raymond"
)

//go:embed templates/*.hbs
var templateFS embed.FS

// EmailTemplates renders the notification email sent to the company inbox.
type EmailTemplates struct {
	html *raymond.Template
	text *raymond.Template
}

// EmailContent is a rendered email.
type EmailContent struct {
	Subject string
	HTML    string
	Text    string
}

// LoadEmailTemplates parses the embedded handlebars templates.
func LoadEmailTemplates() (*EmailTemplates, error) {
	html, err := parseTemplate("templates/contact.html.hbs")
	if err != nil {
		return nil, err
	}
	text, err := parseTemplate("templates/contact.txt.hbs")
	if err != nil {
		return nil, err
	}
	return &EmailTemplates{html: html, text: text}, nil
}

func parseTemplate(path string) (*raymond.Template, error) {
	src, err := templateFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	tmpl, err := raymond.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	return tmpl, nil
}

// Render fills both templates for msg.
func (t *EmailTemplates) Render(msg Message) (*EmailContent, error) {
	ctx := map[string]any{
		"name":         msg.Values.Name,
		"email":        msg.Values.Email,
		"phone":        msg.Values.Phone,
		"message":      msg.Values.Message,
		"paragraphs":   paragraphs(msg.Values.Message),
		"receivedAt":   msg.ReceivedAt.Format("02/01/2006 15:04 MST"),
		"submissionId": msg.ID.String(),
		"clientIp":     msg.ClientIP,
	}

	html, err := t.html.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("render html email: %w", err)
	}
	text, err := t.text.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("render text email: %w", err)
	}

	return &EmailContent{
		Subject: "Contato pelo site: " + msg.Values.Name,
		HTML:    html,
		Text:    text,
	}, nil
}

func paragraphs(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
