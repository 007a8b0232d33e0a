package mailer

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSent   = "sent"
	outcomeFailed = "failed"
	modeMock      = "mock"
	modeLive      = "live"
)

// metrics is nil-safe: a registry without WithMetrics records nothing.
type metrics struct {
	sends  *prometheus.CounterVec
	render *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		sends: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "email",
			Name:      "sends_total",
			Help:      "Email sends by definition, outcome and mode.",
		}, []string{"name", "outcome", "mode"})),
		render: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "email",
			Name:      "render_duration_seconds",
			Help:      "Time spent turning a template into HTML.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"name"})),
	}
}

// register reuses an already registered collector so several registries can share a registerer.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) observeSend(name string, ok, mock bool) {
	if m == nil {
		return
	}
	outcome, mode := outcomeFailed, modeLive
	if ok {
		outcome = outcomeSent
	}
	if mock {
		mode = modeMock
	}
	m.sends.WithLabelValues(name, outcome, mode).Inc()
}

func (m *metrics) observeRender(name string, started time.Time) {
	if m == nil {
		return
	}
	m.render.WithLabelValues(name).Observe(time.Since(started).Seconds())
}
