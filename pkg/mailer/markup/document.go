package markup

// Kind identifies a block type inside a Document.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindButton    Kind = "button"
	KindImage     Kind = "image"
	KindDivider   Kind = "divider"
	KindList      Kind = "list"
	KindSection   Kind = "section"
	KindMarkdown  Kind = "markdown"
)

// Document is a structured email body.
// It is converted to intermediate markup and then to HTML by a Renderer.
type Document struct {
	Title     string  `yaml:"title,omitempty"`
	Preheader string  `yaml:"preheader,omitempty"`
	Blocks    []Block `yaml:"blocks"`
}

// Block is a single node of a Document.
// Which fields are meaningful depends on Kind.
type Block struct {
	Kind     Kind     `yaml:"kind"`
	Text     string   `yaml:"text,omitempty"`  // heading, paragraph or markdown content
	Level    int      `yaml:"level,omitempty"` // heading level, 1-6
	Label    string   `yaml:"label,omitempty"` // button label
	URL      string   `yaml:"url,omitempty"`   // button target or image source
	Alt      string   `yaml:"alt,omitempty"`   // image alt text
	Items    []string `yaml:"items,omitempty"` // list items
	Children []Block  `yaml:"children,omitempty"`
}

// New creates a document with the given title and blocks.
func New(title string, blocks ...Block) *Document {
	return &Document{Title: title, Blocks: blocks}
}

// WithPreheader sets the hidden preview line shown by mail clients and returns the document.
func (d *Document) WithPreheader(s string) *Document {
	d.Preheader = s
	return d
}

// Append adds blocks to the end of the document and returns it.
func (d *Document) Append(blocks ...Block) *Document {
	d.Blocks = append(d.Blocks, blocks...)
	return d
}

func Heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text}
}

// Paragraph renders text literally. Use it for anything built from variables.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// Markdown passes trusted author text through as inline markup
// (emphasis, links, the button syntax). Never build it from recipient data.
func Markdown(text string) Block {
	return Block{Kind: KindMarkdown, Text: text}
}

func Button(label, url string) Block {
	return Block{Kind: KindButton, Label: label, URL: url}
}

func Image(src, alt string) Block {
	return Block{Kind: KindImage, URL: src, Alt: alt}
}

func Divider() Block {
	return Block{Kind: KindDivider}
}

func List(items ...string) Block {
	return Block{Kind: KindList, Items: items}
}

// Section groups blocks. Sections cannot be nested.
func Section(children ...Block) Block {
	return Block{Kind: KindSection, Children: children}
}
