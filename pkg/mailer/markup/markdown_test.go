package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkup(t *testing.T) {
	t.Parallel()

	doc := New("Welcome",
		Heading(1, "Hello   Alice"),
		Markdown("Thanks for **joining**."),
		List("one", "two"),
		Divider(),
		Section(
			Button("Start", "https://example.com/start"),
			Image("https://example.com/logo.png", "Logo"),
		),
	)

	source, issues := ToMarkup(doc)

	require.Empty(t, issues)
	assert.Equal(t, "# Hello Alice\n\n"+
		"Thanks for **joining**.\n\n"+
		"- one\n- two\n\n"+
		"---\n\n"+
		"[!button|Start](https://example.com/start)\n\n"+
		"![Logo](<https://example.com/logo.png>)\n", source)
}

func TestToMarkup_Findings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		block    Block
		severity Severity
		path     string
	}{
		{name: "empty paragraph", block: Paragraph("  "), severity: SeverityWarning, path: "blocks[0]"},
		{name: "empty heading", block: Heading(2, ""), severity: SeverityWarning, path: "blocks[0]"},
		{name: "heading level", block: Heading(9, "Big"), severity: SeverityWarning, path: "blocks[0]"},
		{name: "empty list", block: List(" ", ""), severity: SeverityWarning, path: "blocks[0]"},
		{name: "button without label", block: Button("", "https://example.com"), severity: SeverityWarning, path: "blocks[0]"},
		{name: "button without url", block: Button("Go", ""), severity: SeverityError, path: "blocks[0]"},
		{name: "button url with paren", block: Button("Go", "https://example.com/a)b"), severity: SeverityError, path: "blocks[0]"},
		{name: "button label with bracket", block: Button("Go]", "https://example.com"), severity: SeverityError, path: "blocks[0]"},
		{name: "image without url", block: Image("", "alt"), severity: SeverityError, path: "blocks[0]"},
		{name: "unknown kind", block: Block{Kind: "carousel"}, severity: SeverityError, path: "blocks[0]"},
		{name: "nested section", block: Section(Section(Paragraph("x"))), severity: SeverityError, path: "blocks[0].children[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, issues := ToMarkup(New("", tt.block))

			require.Len(t, issues, 1)
			assert.Equal(t, tt.severity, issues[0].Severity)
			assert.Equal(t, tt.path, issues[0].Path)
		})
	}
}

func TestToMarkup_ClampsHeadingLevel(t *testing.T) {
	t.Parallel()

	source, _ := ToMarkup(New("", Heading(0, "Top"), Heading(7, "Bottom")))

	assert.Equal(t, "# Top\n\n###### Bottom\n", source)
}

func TestToMarkup_EmptyDocument(t *testing.T) {
	t.Parallel()

	_, issues := ToMarkup(nil)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)

	_, issues = ToMarkup(New("empty"))
	require.Len(t, issues, 1)
	assert.Equal(t, "blocks", issues[0].Path)
}

func TestToMarkup_EscapesText(t *testing.T) {
	t.Parallel()

	source, issues := ToMarkup(New("",
		Heading(2, "#1 *deal*"),
		Paragraph("Hi [x](https://evil.example) & <b>"),
		List("- nested", "2. ordered"),
	))

	require.Empty(t, issues)
	assert.Equal(t, "## \\#1 \\*deal\\*\n\n"+
		"Hi \\[x\\]\\(https\\:\\/\\/evil\\.example\\) \\& \\<b\\>\n\n"+
		"- \\- nested\n- 2\\. ordered\n", source)
}

func TestToMarkup_MarkdownBlock(t *testing.T) {
	t.Parallel()

	source, issues := ToMarkup(New("", Markdown("  Read the **terms**.  "), Markdown(" ")))

	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "blocks[1]", issues[0].Path)
	assert.Equal(t, "Read the **terms**.\n", source)
}
