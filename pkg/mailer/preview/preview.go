package preview

import (
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/emailkit/pkg/logger"
)

// ErrInvalidRoute indicates the route pattern has no name parameter.
var ErrInvalidRoute = errors.New("email preview route must include a {name} or :name parameter")

const nameParam = "{name}"

// expressNameRe matches an Express-style :name not continued by a word character,
// so /emails/:name.html is accepted and /emails/:names is not.
var expressNameRe = regexp.MustCompile(`:name(?:\W|$)`)

// Previewer is an email that can render itself with fixture variables.
// *mailer.Definition satisfies it.
type Previewer interface {
	Name() string
	PreviewHTML() (string, error)
}

// Option configures Mount.
type Option func(*config)

type config struct {
	logger *slog.Logger
	index  bool
}

// WithLogger logs preview render failures. Defaults to logger.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIndex also serves an HTML list of links to every preview at the
// pattern's parent path (e.g. /emails for /emails/{name}).
func WithIndex() Option {
	return func(c *config) {
		c.index = true
	}
}

// Mount registers a GET route rendering the preview of the definition named by
// the {name} parameter. Express-style :name is accepted and rewritten; the
// parameter may share its segment with a suffix, as in /emails/{name}.html.
// It fails before any request is served when the pattern lacks the parameter.
func Mount(r chi.Router, pattern string, previews []Previewer, opts ...Option) error {
	pattern, err := normalizePattern(pattern)
	if err != nil {
		return err
	}

	cfg := &config{logger: logger.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	r.Get(pattern, showHandler(previews, cfg.logger))

	if cfg.index {
		base := strings.TrimSuffix(pattern[:strings.Index(pattern, nameParam)], "/")
		if base == "" {
			base = "/"
		}
		r.Get(base, indexHandler(pattern, previews))
	}
	return nil
}

func normalizePattern(pattern string) (string, error) {
	if strings.Contains(pattern, nameParam) {
		return pattern, nil
	}
	loc := expressNameRe.FindStringIndex(pattern)
	if loc == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidRoute, pattern)
	}
	return pattern[:loc[0]] + nameParam + pattern[loc[0]+len(":name"):], nil
}

func showHandler(previews []Previewer, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		p := find(previews, name)
		if p == nil {
			writeText(w, http.StatusNotFound, "Email not found")
			return
		}

		body, err := p.PreviewHTML()
		if err != nil {
			logger.ErrorContext(r.Context(), "email preview failed",
				slog.String("tag", "email"),
				slog.String("name", name),
				slog.Any("error", err),
			)
			writeText(w, http.StatusInternalServerError, "Email preview failed")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
	}
}

func indexHandler(pattern string, previews []Previewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var b strings.Builder
		b.WriteString("<!doctype html><html><head><title>Email previews</title></head><body><h1>Email previews</h1><ul>")
		for _, p := range previews {
			href := strings.Replace(pattern, nameParam, url.PathEscape(p.Name()), 1)
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, html.EscapeString(href), html.EscapeString(p.Name()))
		}
		b.WriteString("</ul></body></html>")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, b.String())
	}
}

// find matches by exact name; the first definition wins on duplicates.
func find(previews []Previewer, name string) Previewer {
	for _, p := range previews {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
