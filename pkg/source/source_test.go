package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	content := []byte("first paragraph\ncontinues here\n\n\nsecond  one\n")

	paras := PlainText(content)
	require.Len(t, paras, 2)

	assert.Equal(t, "first paragraph continues here", paras[0].Text)
	assert.Equal(t, "first paragraph\ncontinues here", string(content[paras[0].Start:paras[0].Stop]))

	assert.Equal(t, "second one", paras[1].Text)
	assert.Equal(t, "second  one", string(content[paras[1].Start:paras[1].Stop]))
}

func TestPlainText_Degenerate(t *testing.T) {
	assert.Empty(t, PlainText(nil))
	assert.Empty(t, PlainText([]byte("\n\n  \n")))

	paras := PlainText([]byte("no trailing newline"))
	require.Len(t, paras, 1)
	assert.Equal(t, "no trailing newline", paras[0].Text)
}

func TestMarkdown(t *testing.T) {
	content := []byte(`# Title

A paragraph of prose that
spans two lines.

- a list item stays put

` + "```" + `
code fences stay put
` + "```" + `

Final paragraph.
`)

	paras := Markdown(content)
	require.Len(t, paras, 2)

	assert.Equal(t, "A paragraph of prose that spans two lines.", paras[0].Text)
	assert.Equal(t, "Final paragraph.", paras[1].Text)

	// Ranges cover exactly the paragraph source bytes.
	assert.Equal(t, "A paragraph of prose that\nspans two lines.", string(content[paras[0].Start:paras[0].Stop]))
}

func TestSplice(t *testing.T) {
	content := []byte("keep\n\nreplace me\n\nkeep too\n")
	paras := PlainText(content)
	require.Len(t, paras, 3)

	out := Splice(content, paras, [][]byte{nil, []byte("replaced"), nil})
	assert.Equal(t, "keep\n\nreplaced\n\nkeep too\n", string(out))
}

func TestSplice_NoReplacements(t *testing.T) {
	content := []byte("a\n\nb\n")
	paras := PlainText(content)

	out := Splice(content, paras, nil)
	assert.Equal(t, string(content), string(out))
}
