package markup

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func convertButtons(t *testing.T, style, source string) string {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(NewButtonExtension(style)))

	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(source), &buf))
	return buf.String()
}

func TestButtonExtension_RendersButton(t *testing.T) {
	t.Parallel()

	result := convertButtons(t, "", `[!button|Click Me](https://example.com)`)

	require.Contains(t, result, `<a href="https://example.com" class="button">Click Me</a>`)
}

func TestButtonExtension_InlinesStyle(t *testing.T) {
	t.Parallel()

	result := convertButtons(t, "color:#fff;", `[!button|Go](https://example.com)`)

	require.Contains(t, result, `<a href="https://example.com" class="button" style="color:#fff;">Go</a>`)
}

func TestButtonExtension_EscapesHTML(t *testing.T) {
	t.Parallel()

	result := convertButtons(t, "", `[!button|<script>alert(1)</script>](https://example.com)`)

	require.NotContains(t, result, "<script>")
	require.Contains(t, result, "&lt;script&gt;")
}

func TestButtonExtension_QueryParams(t *testing.T) {
	t.Parallel()

	result := convertButtons(t, "", `[!button|Verify](https://example.com/verify?token=abc123&user=john)`)

	require.Contains(t, result, `href="https://example.com/verify?token=abc123&amp;user=john"`)
}

func TestButtonExtension_TextAroundButton(t *testing.T) {
	t.Parallel()

	result := convertButtons(t, "", "Before [!button|Go](https://example.com) after")

	require.Contains(t, result, `Before <a href="https://example.com" class="button">Go</a> after`)
}

func TestButtonExtension_IgnoresNonButtons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{name: "regular link", source: `[Regular Link](https://example.com)`},
		{name: "missing URL", source: `[!button|Click Me]`},
		{name: "missing closing bracket", source: `[!button|Click Me(https://example.com)`},
		{name: "missing closing paren", source: `[!button|Click Me](https://example.com`},
		{name: "wrong prefix", source: `[button|Click Me](https://example.com)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NotContains(t, convertButtons(t, "", tt.source), `class="button"`)
		})
	}
}

func TestButtonNode_Kind(t *testing.T) {
	t.Parallel()

	node := &ButtonNode{URL: []byte("https://example.com"), Label: []byte("Test")}

	require.Equal(t, ButtonNodeKind, node.Kind())
}
