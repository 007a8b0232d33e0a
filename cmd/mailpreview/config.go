package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/emailkit/pkg/logger"
	"github.com/dmitrymomot/emailkit/pkg/mailer"
	"github.com/dmitrymomot/emailkit/pkg/mailer/resend"
	"github.com/dmitrymomot/emailkit/pkg/mailer/smtp"
)

const (
	providerMock   = "mock"
	providerResend = "resend"
	providerSMTP   = "smtp"
)

type config struct {
	HTTPAddr     string `env:"HTTP_ADDR" envDefault:":8080"`
	Provider     string `env:"EMAIL_PROVIDER" envDefault:"mock"`
	PreviewRoute string `env:"PREVIEW_ROUTE" envDefault:"/emails/{name}"`
	Log          logger.Config
	Mailer       mailer.Config
	Resend       resend.Config
	SMTP         smtp.Config
}

// loadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func loadConfig(files ...string) (*config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	switch c.Provider {
	case providerMock:
	case providerResend:
		if c.Resend.APIKey == "" {
			return errors.New("RESEND_API_KEY is required for the resend provider")
		}
		if c.Resend.SenderEmail == "" {
			return errors.New("RESEND_FROM_EMAIL is required for the resend provider")
		}
	case providerSMTP:
		if c.SMTP.Host == "" {
			return errors.New("SMTP_HOST is required for the smtp provider")
		}
	default:
		return fmt.Errorf("EMAIL_PROVIDER must be one of mock, resend, smtp; got %q", c.Provider)
	}
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	return nil
}
