package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte(`
title: Welcome
preheader: Hi there
blocks:
  - kind: heading
    level: 2
    text: Hello
  - kind: section
    children:
      - kind: button
        label: Start
        url: https://example.com/start
`))

	require.NoError(t, err)
	assert.Equal(t, "Welcome", doc.Title)
	assert.Equal(t, "Hi there", doc.Preheader)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, Heading(2, "Hello"), doc.Blocks[0])
	assert.Equal(t, []Block{Button("Start", "https://example.com/start")}, doc.Blocks[1].Children)
}

func TestParseDocument_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte("blocks: [unclosed"))

	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestParseBlocks(t *testing.T) {
	t.Parallel()

	blocks, err := ParseBlocks([]byte(`
- kind: divider
- kind: paragraph
  text: Footer
`))

	require.NoError(t, err)
	assert.Equal(t, []Block{Divider(), Paragraph("Footer")}, blocks)
}
