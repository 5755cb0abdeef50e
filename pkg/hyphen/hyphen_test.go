package hyphen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// liangDemo is the classic pattern subset that hyphenates "hyphenation".
var liangDemo = []string{
	"hy3ph", "he2n", "hen5at", "hena4", "1na", "n2at", "1tio", "2io", "o2n",
}

func TestHyphenate_ClassicExample(t *testing.T) {
	h, err := New(liangDemo, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"hy", "phen", "ation"}, h.Hyphenate("hyphenation"))
}

func TestHyphenate_ConcatenationInvariant(t *testing.T) {
	h, err := New(liangDemo, nil)
	require.NoError(t, err)

	words := []string{"hyphenation", "nation", "on", "a", "Hyphenation"}
	for _, w := range words {
		parts := h.Hyphenate(w)
		assert.Equal(t, w, strings.Join(parts, ""), "word %q", w)
	}
}

func TestHyphenate_ShortWordsComeBackWhole(t *testing.T) {
	h, err := New(liangDemo, nil)
	require.NoError(t, err)

	for _, w := range []string{"", "a", "an", "ant", "ants"} {
		assert.Equal(t, []string{w}, h.Hyphenate(w))
	}
}

func TestHyphenate_EdgeMinima(t *testing.T) {
	// With 1na in the set, "nation" scores only the gap before its first
	// letter, which is never a break. In "nationa" the second "na" scores
	// a break two letters from the end, which minima of 1 allow.
	h, err := New([]string{"1na"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"nation"}, h.Hyphenate("nation"))

	h.LeftMin, h.RightMin = 1, 1
	assert.Equal(t, []string{"natio", "na"}, h.Hyphenate("nationa"))
}

func TestHyphenate_Exceptions(t *testing.T) {
	h, err := New(liangDemo, []string{"ta-ble", "pre-sent"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ta", "ble"}, h.Hyphenate("table"))
	assert.Equal(t, []string{"Ta", "ble"}, h.Hyphenate("Table"))
	assert.Equal(t, []string{"pre", "sent"}, h.Hyphenate("present"))
}

func TestNew_BadPattern(t *testing.T) {
	_, err := New([]string{""}, nil)
	require.Error(t, err)

	_, err = New([]string{"123"}, nil)
	require.Error(t, err)
}

func TestParsePattern(t *testing.T) {
	key, scores, err := parsePattern("hy3ph")
	require.NoError(t, err)
	assert.Equal(t, "hyph", key)
	assert.Equal(t, []uint8{0, 0, 3, 0, 0}, scores)

	key, scores, err = parsePattern("1na")
	require.NoError(t, err)
	assert.Equal(t, "na", key)
	assert.Equal(t, []uint8{1, 0, 0}, scores)

	key, scores, err = parsePattern(".in1")
	require.NoError(t, err)
	assert.Equal(t, ".in", key)
	assert.Equal(t, []uint8{0, 0, 0, 1}, scores)
}
