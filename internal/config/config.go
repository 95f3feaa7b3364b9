package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Public URL of the site, used for og:url and canonical links
	BaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:4002"`

	Contact ContactConfig
	CSRF    CSRFConfig
	Email   EmailConfig
	Otel    OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ContactConfig tunes the contact form submission flow
type ContactConfig struct {
	// Delay of the simulated send when no real transport is configured
	SubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"1s"`

	// Per-client submission budget
	RateLimitPerMinute int `env:"CONTACT_RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	RateLimitBurst     int `env:"CONTACT_RATE_LIMIT_BURST" envDefault:"3"`
}

// CSRFConfig controls the CSRF middleware protecting form posts
type CSRFConfig struct {
	Enabled bool `env:"CSRF_ENABLED" envDefault:"true"`

	// 32-byte key; a random key is generated per process when empty
	AuthKey string `env:"CSRF_AUTH_KEY"`

	// Marks the CSRF cookie Secure (requires HTTPS)
	SecureCookie bool `env:"CSRF_SECURE_COOKIE" envDefault:"false"`
}

// EmailConfig holds the optional Mailgun delivery settings
type EmailConfig struct {
	Enabled       bool   `env:"EMAIL_ENABLED" envDefault:"false"`
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"4Data Website"`

	// Inbox receiving contact form messages
	Inbox string `env:"CONTACT_INBOX" envDefault:"contato@4data.com.br"`
}

// IsConfigured returns true if Mailgun credentials are present
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewConfig parses configuration from the environment
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.ServerPort)
	}
	if c.Contact.SubmitDelay < 0 {
		return fmt.Errorf("CONTACT_SUBMIT_DELAY must not be negative")
	}
	if c.Contact.RateLimitPerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.Contact.RateLimitBurst <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT_BURST must be positive")
	}
	if c.Otel.SamplingRate < 0 || c.Otel.SamplingRate > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATE must be between 0 and 1, got %g", c.Otel.SamplingRate)
	}
	if c.CSRF.AuthKey != "" && len(c.CSRF.AuthKey) != 32 {
		return fmt.Errorf("CSRF_AUTH_KEY must be 32 bytes, got %d", len(c.CSRF.AuthKey))
	}
	return nil
}
