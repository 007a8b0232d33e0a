package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateRender indicates a definition's template could not be turned into HTML.
	ErrTemplateRender = errors.New("failed to render email template")

	// ErrDelivery indicates the delivery provider rejected or failed the send.
	ErrDelivery = errors.New("failed to deliver email")

	// ErrInvalidRecipient indicates the recipient is empty or of an unsupported type.
	ErrInvalidRecipient = errors.New("invalid email recipient")

	// ErrNoProvider indicates a live send was attempted on a registry without a provider.
	ErrNoProvider = errors.New("no delivery provider configured")

	// ErrInvalidDefinition indicates a definition config is missing its name or template.
	ErrInvalidDefinition = errors.New("invalid email definition")

	// ErrPanic indicates a template, subject function or provider panicked during send.
	ErrPanic = errors.New("email send panicked")
)

// TemplateRenderError is returned by Definition.HTML and Definition.PreviewHTML when
// the template cannot be rendered. It matches ErrTemplateRender with errors.Is.
type TemplateRenderError struct {
	Name   string // definition name
	Errors string // serialized list of conversion errors
	Err    error  // underlying renderer error
}

func (e *TemplateRenderError) Error() string {
	return fmt.Sprintf("email %q: error on email building: %s", e.Name, e.Errors)
}

func (e *TemplateRenderError) Unwrap() []error {
	return []error{ErrTemplateRender, e.Err}
}
