// Package logger builds the application's *slog.Logger from configuration.
//
//	log, err := logger.New(logger.Config{Level: "debug", Format: "text"})
//
// Records go to stdout as JSON by default. Setting SentryDSN also forwards
// warnings and errors to Sentry; when Sentry fails to initialize the logger
// falls back to stdout only, so the same code path works in development.
package logger
