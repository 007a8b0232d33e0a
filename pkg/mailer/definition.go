package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/emailkit/pkg/mailer/markup"
)

const logTag = "email"

// DefinitionConfig describes an email. Subject is used unless SubjectFunc is set.
type DefinitionConfig[V ~map[string]any] struct {
	PreviewVariables V
	SubjectFunc      func(vars V) string
	Template         func(vars V) Content
	Name             string
	Subject          string
}

// Definition is a named email bound to the registry that created it.
// It is immutable and safe for concurrent use.
type Definition[V ~map[string]any] struct {
	registry  *Registry
	preview   V
	subjectFn func(V) string
	template  func(V) Content
	name      string
	subject   string
}

// SendParams are the per-send inputs.
//
// To accepts a plain address string, an Address, a Contact or any other Addresser,
// and a net/mail.Address (value or pointer).
// Variables are logged as is. Sensitive variables are merged over Variables for
// rendering but replaced by the redaction marker in logs outside mock mode.
type SendParams[V ~map[string]any] struct {
	To        any
	Variables V
	Sensitive V
	Subject   string // overrides the definition subject when set
}

// Result reports the outcome of Send. Err carries the cause when OK is false.
type Result struct {
	Err error
	OK  bool
}

// Define creates an email definition bound to r.
// It is a function rather than a Registry method because methods cannot take type parameters.
func Define[V ~map[string]any](r *Registry, cfg DefinitionConfig[V]) (*Definition[V], error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrInvalidDefinition)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if cfg.Template == nil {
		return nil, fmt.Errorf("%w: %s: template is required", ErrInvalidDefinition, cfg.Name)
	}

	return &Definition[V]{
		registry:  r,
		name:      cfg.Name,
		subject:   cfg.Subject,
		subjectFn: cfg.SubjectFunc,
		template:  cfg.Template,
		preview:   maps.Clone(cfg.PreviewVariables),
	}, nil
}

// MustDefine is like Define but panics on error. Use it for package-level setup.
func MustDefine[V ~map[string]any](r *Registry, cfg DefinitionConfig[V]) *Definition[V] {
	d, err := Define(r, cfg)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the definition name, the key that ties sent log entries to it.
func (d *Definition[V]) Name() string {
	return d.name
}

// Subject resolves the subject for vars without any per-send override.
func (d *Definition[V]) Subject(vars V) string {
	return d.resolveSubject("", vars)
}

// PreviewVariables returns a copy of the fixture variables used for previews.
func (d *Definition[V]) PreviewVariables() V {
	return maps.Clone(d.preview)
}

// HTML renders the template with vars.
// Literal HTML is returned unchanged. Documents go through the registry renderer;
// a failure yields a *TemplateRenderError and never partial HTML.
func (d *Definition[V]) HTML(vars V) (string, error) {
	defer d.registry.metrics.observeRender(d.name, time.Now())

	switch c := d.template(vars).(type) {
	case HTML:
		return string(c), nil
	case documentContent:
		html, err := d.registry.renderer.Render(c.doc)
		if err != nil {
			return "", d.renderError(err)
		}
		return html, nil
	case nil:
		return "", d.renderError(errors.New("template returned no content"))
	default:
		return "", d.renderError(fmt.Errorf("unsupported content type %T", c))
	}
}

// PreviewHTML renders the template with the preview variables.
func (d *Definition[V]) PreviewHTML() (string, error) {
	return d.HTML(d.preview)
}

// Send renders and delivers the email, or records it in the sent log in mock mode.
// Every failure is logged and reported through Result; Send never panics.
func (d *Definition[V]) Send(ctx context.Context, params SendParams[V]) (res Result) {
	if ctx == nil {
		ctx = context.Background()
	}
	r := d.registry
	view := logView(params.Variables, params.Sensitive, r.marker, r.mock)

	var to any = params.To
	defer func() {
		if p := recover(); p != nil {
			res = d.fail(ctx, to, view, fmt.Errorf("%w: %v", ErrPanic, p))
		}
		r.metrics.observeSend(d.name, res.OK, r.mock)
	}()

	// Sensitive variables never feed the derived subject.
	subject := d.resolveSubject(params.Subject, params.Variables)

	addr, err := normalizeRecipient(params.To)
	if err != nil {
		return d.fail(ctx, to, view, err)
	}
	to = addr

	union := mergeVariables(params.Variables, params.Sensitive)

	html, err := d.HTML(union)
	if err != nil {
		return d.fail(ctx, to, view, err)
	}

	resp, err := d.dispatch(ctx, Message{To: addr, Subject: subject, HTML: html}, union)
	if err != nil {
		return d.fail(ctx, to, view, err)
	}

	r.logger.InfoContext(ctx, "email sent",
		slog.String("tag", logTag),
		slog.Group("meta",
			slog.String("name", d.name),
			slog.String("to", addr),
			slog.String("subject", subject),
			slog.Any("variables", view),
			slog.Any("response", resp.Loggable),
		),
	)
	return Result{OK: true}
}

// SentEmails returns this definition's entries of the sent log, oldest first.
func (d *Definition[V]) SentEmails() []SentEmail {
	return d.registry.sentByName(d.name)
}

// LastSentEmail returns this definition's most recent sent log entry.
func (d *Definition[V]) LastSentEmail() (SentEmail, bool) {
	return d.registry.lastSentByName(d.name)
}

func (d *Definition[V]) dispatch(ctx context.Context, msg Message, union V) (*Response, error) {
	r := d.registry
	if r.mock {
		r.record(SentEmail{
			SentAt:    r.now(),
			Name:      d.name,
			To:        msg.To,
			Subject:   msg.Subject,
			Variables: union,
		})
		return mockResponse(), nil
	}

	if r.provider == nil {
		return nil, ErrNoProvider
	}
	resp, err := r.provider.Send(ctx, msg)
	if err != nil {
		return nil, errors.Join(ErrDelivery, err)
	}
	if resp == nil {
		resp = &Response{}
	}
	return resp, nil
}

func (d *Definition[V]) fail(ctx context.Context, to any, view map[string]any, err error) Result {
	d.registry.logger.ErrorContext(ctx, "email send failed",
		slog.String("tag", logTag),
		slog.Any("error", err),
		slog.Group("meta",
			slog.String("name", d.name),
			slog.Any("to", to),
			slog.Any("variables", view),
		),
	)
	return Result{OK: false, Err: err}
}

func (d *Definition[V]) resolveSubject(override string, vars V) string {
	if override != "" {
		return override
	}
	if d.subjectFn != nil {
		return d.subjectFn(vars)
	}
	return d.subject
}

func (d *Definition[V]) renderError(err error) error {
	var details []byte
	var convErr *markup.ConvertError
	if errors.As(err, &convErr) {
		details, _ = json.Marshal(convErr.Errors)
	} else {
		details, _ = json.Marshal([]string{err.Error()})
	}
	return &TemplateRenderError{Name: d.name, Errors: string(details), Err: err}
}
