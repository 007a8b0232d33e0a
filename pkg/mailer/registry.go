package mailer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/emailkit/pkg/logger"
	"github.com/dmitrymomot/emailkit/pkg/mailer/markup"
)

// Registry creates email definitions that share one provider, logger,
// mock flag and sent log. Create one per process (or per test).
// Registries do not track the definitions they create.
type Registry struct {
	provider Provider
	renderer Renderer
	logger   *slog.Logger
	metrics  *metrics
	now      func() time.Time
	marker   string
	sent     []SentEmail
	mu       sync.Mutex
	mock     bool
}

// New creates a registry delivering through provider.
// The provider may be nil when the registry runs in mock mode.
func New(provider Provider, opts ...Option) *Registry {
	r := &Registry{
		provider: provider,
		renderer: markup.NewRenderer(),
		logger:   logger.Default(),
		now:      time.Now,
		marker:   DefaultRedactionMarker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig creates a registry from env-parsed config.
// Options passed explicitly take precedence over the config.
func NewFromConfig(provider Provider, cfg Config, opts ...Option) *Registry {
	base := []Option{
		WithMock(cfg.Mock),
		WithRedactionMarker(cfg.RedactionMarker),
	}
	return New(provider, append(base, opts...)...)
}

// Mock reports whether the registry runs in mock mode.
func (r *Registry) Mock() bool {
	return r.mock
}

// SentEmails returns a deep copy of the sent log, oldest first.
func (r *Registry) SentEmails() []SentEmail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneSent(r.sent)
}

// LastSentEmail returns the most recent entry, or false if the log is empty.
func (r *Registry) LastSentEmail() (SentEmail, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return SentEmail{}, false
	}
	return cloneEntry(r.sent[len(r.sent)-1]), true
}

// ClearSentEmails empties the sent log.
func (r *Registry) ClearSentEmails() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.sent)
	r.sent = r.sent[:0]
}

func (r *Registry) record(e SentEmail) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, cloneEntry(e))
}

func (r *Registry) sentByName(name string) []SentEmail {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []SentEmail
	for _, e := range r.sent {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return cloneSent(out)
}

func (r *Registry) lastSentByName(name string) (SentEmail, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.sent) - 1; i >= 0; i-- {
		if r.sent[i].Name == name {
			return cloneEntry(r.sent[i]), true
		}
	}
	return SentEmail{}, false
}
