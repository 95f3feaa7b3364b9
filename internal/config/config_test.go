package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.ServerPort)
	assert.Equal(t, "0.0.0.0:4002", cfg.Addr())
	assert.Equal(t, time.Second, cfg.Contact.SubmitDelay)
	assert.Equal(t, 10, cfg.Contact.RateLimitPerMinute)
	assert.Equal(t, 3, cfg.Contact.RateLimitBurst)
	assert.True(t, cfg.CSRF.Enabled)
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, "contato@4data.com.br", cfg.Email.Inbox)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Otel.Enabled())
	assert.Equal(t, "4data-website", cfg.Otel.ServiceName)
	assert.Equal(t, 1.0, cfg.Otel.SamplingRate)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CONTACT_SUBMIT_DELAY", "250ms")
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("MAILGUN_DOMAIN", "mg.4data.com.br")
	t.Setenv("MAILGUN_API_KEY", "key-abc123")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 250*time.Millisecond, cfg.Contact.SubmitDelay)
	assert.True(t, cfg.Email.Enabled)
	assert.True(t, cfg.Email.IsConfigured())
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"port out of range", "SERVER_PORT", "70000", "SERVER_PORT"},
		{"negative delay", "CONTACT_SUBMIT_DELAY", "-1s", "CONTACT_SUBMIT_DELAY"},
		{"zero rate", "CONTACT_RATE_LIMIT_PER_MINUTE", "0", "CONTACT_RATE_LIMIT_PER_MINUTE"},
		{"zero burst", "CONTACT_RATE_LIMIT_BURST", "0", "CONTACT_RATE_LIMIT_BURST"},
		{"sampling rate above one", "OTEL_SAMPLING_RATE", "1.5", "OTEL_SAMPLING_RATE"},
		{"short csrf key", "CSRF_AUTH_KEY", "too-short", "CSRF_AUTH_KEY"},
		{"unparseable port", "SERVER_PORT", "abc", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := NewConfig()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "error %q should mention %q", err, tt.wantErr)
		})
	}
}

func TestEmailConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  EmailConfig
		want bool
	}{
		{"both present", EmailConfig{MailgunDomain: "mg.example.com", MailgunAPIKey: "key"}, true},
		{"missing domain", EmailConfig{MailgunAPIKey: "key"}, false},
		{"missing key", EmailConfig{MailgunDomain: "mg.example.com"}, false},
		{"empty", EmailConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.IsConfigured())
		})
	}
}
