package markup

import (
	"fmt"
	"strings"
)

// ToMarkup converts a document to the intermediate markup (Markdown plus the button syntax).
// Every finding is reported; the caller decides which severities are fatal.
// Blocks with warnings are fixed up or skipped, blocks with errors are skipped.
func ToMarkup(doc *Document) (string, []ValidationError) {
	c := &converter{}
	if doc == nil {
		c.fail("", "document is nil")
		return "", c.issues
	}
	if len(doc.Blocks) == 0 {
		c.fail("blocks", "document has no blocks")
		return "", c.issues
	}

	c.blocks("blocks", doc.Blocks, 0)
	return strings.Join(c.out, "\n\n") + "\n", c.issues
}

type converter struct {
	out    []string
	issues []ValidationError
}

func (c *converter) warn(path, format string, args ...any) {
	c.issues = append(c.issues, ValidationError{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

func (c *converter) fail(path, format string, args ...any) {
	c.issues = append(c.issues, ValidationError{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
}

func (c *converter) blocks(path string, blocks []Block, depth int) {
	for i, b := range blocks {
		c.block(fmt.Sprintf("%s[%d]", path, i), b, depth)
	}
}

func (c *converter) block(path string, b Block, depth int) {
	switch b.Kind {
	case KindHeading:
		text := singleLine(b.Text)
		if text == "" {
			c.warn(path, "empty heading skipped")
			return
		}
		level := b.Level
		if level < 1 || level > 6 {
			c.warn(path, "heading level %d out of range, clamped", level)
			level = min(max(level, 1), 6)
		}
		c.out = append(c.out, strings.Repeat("#", level)+" "+escapeText(text))

	case KindParagraph:
		if strings.TrimSpace(b.Text) == "" {
			c.warn(path, "empty paragraph skipped")
			return
		}
		c.out = append(c.out, escapeText(strings.TrimSpace(b.Text)))

	case KindMarkdown:
		if strings.TrimSpace(b.Text) == "" {
			c.warn(path, "empty markdown skipped")
			return
		}
		c.out = append(c.out, strings.TrimSpace(b.Text))

	case KindButton:
		if b.URL == "" {
			c.fail(path, "button has no url")
			return
		}
		if strings.ContainsAny(b.URL, ") \t\r\n") {
			c.fail(path, "button url %q contains ')' or whitespace", b.URL)
			return
		}
		label := singleLine(b.Label)
		if strings.Contains(label, "]") {
			c.fail(path, "button label %q contains ']'", label)
			return
		}
		if label == "" {
			c.warn(path, "button has no label, using url")
			label = b.URL
		}
		c.out = append(c.out, buttonPrefix+label+"]("+b.URL+")")

	case KindImage:
		if b.URL == "" {
			c.fail(path, "image has no url")
			return
		}
		if strings.ContainsAny(b.URL, " \t\r\n") {
			c.fail(path, "image url %q contains whitespace", b.URL)
			return
		}
		alt := singleLine(b.Alt)
		if strings.ContainsAny(alt, "[]") {
			c.warn(path, "brackets removed from image alt text")
			alt = strings.NewReplacer("[", "", "]", "").Replace(alt)
		}
		c.out = append(c.out, "!["+alt+"](<"+b.URL+">)")

	case KindDivider:
		c.out = append(c.out, "---")

	case KindList:
		items := make([]string, 0, len(b.Items))
		for _, item := range b.Items {
			if item = singleLine(item); item != "" {
				items = append(items, "- "+escapeText(item))
			}
		}
		if len(items) == 0 {
			c.warn(path, "empty list skipped")
			return
		}
		c.out = append(c.out, strings.Join(items, "\n"))

	case KindSection:
		if depth > 0 {
			c.fail(path, "sections cannot be nested")
			return
		}
		if len(b.Children) == 0 {
			c.warn(path, "empty section skipped")
			return
		}
		c.blocks(path+".children", b.Children, depth+1)

	default:
		c.fail(path, "unknown block kind %q", b.Kind)
	}
}

// asciiPunct is every character a backslash can escape in the intermediate markup.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// escapeText makes s render literally: no emphasis, links, buttons, entities or raw HTML.
func escapeText(s string) string {
	if !strings.ContainsAny(s, asciiPunct) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, r := range s {
		if strings.ContainsRune(asciiPunct, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
