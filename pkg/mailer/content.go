package mailer

import "github.com/dmitrymomot/emailkit/pkg/mailer/markup"

// Content is what a template returns: literal HTML or a structured document.
// Use HTML or Doc to build one.
type Content interface {
	content()
}

// HTML is literal email HTML. It is sent as is, no variables are interpolated.
type HTML string

func (HTML) content() {}

type documentContent struct {
	doc *markup.Document
}

func (documentContent) content() {}

// Doc wraps a structured document, rendered through the registry's Renderer.
func Doc(doc *markup.Document) Content {
	return documentContent{doc: doc}
}

// Renderer converts structured documents to HTML.
// *markup.Renderer is the default implementation.
type Renderer interface {
	Render(doc *markup.Document) (string, error)
}
