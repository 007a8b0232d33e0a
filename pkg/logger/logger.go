package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Output            io.Writer `env:"-"` // defaults to os.Stdout
	Level             string    `env:"LOG_LEVEL" envDefault:"info"`
	Format            string    `env:"LOG_FORMAT" envDefault:"json"`
	SentryDSN         string    `env:"SENTRY_DSN"`
	SentryEnvironment string    `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// New creates a logger writing JSON (or text) records to stdout.
// With a Sentry DSN, warnings and errors are also forwarded to Sentry;
// if Sentry cannot be initialized the logger keeps working on stdout only.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q (expected json or text)", cfg.Format)
	}

	if cfg.SentryDSN == "" {
		return slog.New(handler), nil
	}
	return slog.New(withSentry(handler, cfg)), nil
}

// Default is New with an empty Config: JSON records at info level on stdout.
func Default() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog levels.
// Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logger: %w", err)
	}
	return level, nil
}
