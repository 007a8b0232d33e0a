package markup

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
)

// ValidationLevel controls which findings make Render fail.
type ValidationLevel int

const (
	// ValidationSoft fails only on structural errors; warnings are collected.
	ValidationSoft ValidationLevel = iota
	// ValidationStrict fails on any finding.
	ValidationStrict
	// ValidationSkip never fails on findings.
	ValidationSkip
)

// DefaultButtonStyle is inlined on rendered buttons.
const DefaultButtonStyle = "display:inline-block;padding:12px 24px;background-color:#18181b;" +
	"color:#ffffff;text-decoration:none;border-radius:4px;font-weight:600;"

// Result is the outcome of a successful conversion.
type Result struct {
	HTML     string
	Markup   string            // intermediate markup the HTML was built from
	Warnings []ValidationError // findings tolerated by the validation level
}

// Renderer turns documents into HTML: document -> intermediate markup -> HTML -> layout.
// It holds no per-call state and is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	layout Layout
	level  ValidationLevel
}

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	layout      Layout
	buttonStyle string
	level       ValidationLevel
}

// WithLayout replaces DefaultLayout.
func WithLayout(l Layout) Option {
	return func(c *rendererConfig) {
		if l != nil {
			c.layout = l
		}
	}
}

// WithValidation sets the validation level. Defaults to ValidationSoft.
func WithValidation(level ValidationLevel) Option {
	return func(c *rendererConfig) {
		c.level = level
	}
}

// WithButtonStyle overrides the inline style of buttons.
// An empty string renders buttons with class="button" only.
func WithButtonStyle(style string) Option {
	return func(c *rendererConfig) {
		c.buttonStyle = style
	}
}

// NewRenderer creates a renderer with soft validation and the default layout.
func NewRenderer(opts ...Option) *Renderer {
	cfg := &rendererConfig{
		layout:      DefaultLayout,
		buttonStyle: DefaultButtonStyle,
		level:       ValidationSoft,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(NewButtonExtension(cfg.buttonStyle)),
		),
		layout: cfg.layout,
		level:  cfg.level,
	}
}

// Render converts a document to HTML.
// On validation failure it returns a *ConvertError and no HTML.
func (r *Renderer) Render(doc *Document) (string, error) {
	res, err := r.Convert(doc)
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// Convert is Render with access to the intermediate markup and tolerated warnings.
func (r *Renderer) Convert(doc *Document) (*Result, error) {
	source, issues := ToMarkup(doc)

	var fatal, warnings []ValidationError
	for _, issue := range issues {
		switch {
		case r.level == ValidationSkip:
			warnings = append(warnings, issue)
		case r.level == ValidationStrict, issue.Severity == SeverityError:
			fatal = append(fatal, issue)
		default:
			warnings = append(warnings, issue)
		}
	}
	if len(fatal) > 0 {
		return nil, &ConvertError{Errors: fatal}
	}

	var body bytes.Buffer
	if err := r.md.Convert([]byte(source), &body); err != nil {
		return nil, fmt.Errorf("markup: convert to html: %w", err)
	}

	var title, preheader string
	if doc != nil {
		title, preheader = doc.Title, doc.Preheader
	}

	var out bytes.Buffer
	err := r.layout(LayoutData{
		Title:     title,
		Preheader: preheader,
		Body:      templ.Raw(body.String()),
	}).Render(context.Background(), &out)
	if err != nil {
		return nil, fmt.Errorf("markup: render layout: %w", err)
	}

	return &Result{
		HTML:     out.String(),
		Markup:   source,
		Warnings: warnings,
	}, nil
}
