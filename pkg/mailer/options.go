package mailer

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for send outcomes.
// Defaults to logger.Default(), JSON on stdout.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMock switches the registry into mock mode: sends are recorded in the
// sent log instead of reaching the provider, and sensitive variables are logged unredacted.
func WithMock(mock bool) Option {
	return func(r *Registry) {
		r.mock = mock
	}
}

// WithRedactionMarker sets the value logged in place of sensitive variables.
func WithRedactionMarker(marker string) Option {
	return func(r *Registry) {
		if marker != "" {
			r.marker = marker
		}
	}
}

// WithRenderer replaces the structured document renderer.
// Defaults to markup.NewRenderer().
func WithRenderer(renderer Renderer) Option {
	return func(r *Registry) {
		if renderer != nil {
			r.renderer = renderer
		}
	}
}

// WithMetrics registers send and render metrics with the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		if reg != nil {
			r.metrics = newMetrics(reg)
		}
	}
}

// WithClock overrides the time source used to stamp sent log entries.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}
