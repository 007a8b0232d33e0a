// Package markup renders structured email documents to HTML.
//
// A Document is a flat list of blocks (headings, paragraphs, buttons, images,
// dividers, lists and one level of sections). Rendering happens in two steps:
// the document is converted to an intermediate markup, Markdown extended with a
// button syntax, which goldmark then turns into HTML that is wrapped in a templ layout.
//
//	doc := markup.New("Welcome",
//		markup.Heading(1, "Welcome, Alice"),
//		markup.Paragraph("Thanks for signing up."),
//		markup.Button("Get started", "https://example.com/start"),
//	)
//
//	html, err := markup.NewRenderer().Render(doc)
//
// # Escaping
//
// Heading, paragraph and list text is escaped, so variables interpolated into it
// render literally: a recipient name cannot inject links, emphasis or buttons.
// Trusted author text that needs inline formatting goes in a Markdown block.
//
// # Validation
//
// Conversion reports findings with a severity. Under the default soft validation,
// warnings (empty paragraphs, out-of-range heading levels) are fixed up or skipped
// while errors (a button without a URL, nested sections, unknown block kinds) make
// Render return a *ConvertError listing them. No partial HTML is returned.
package markup
