package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonospace(t *testing.T) {
	m := Monospace(1)

	assert.Equal(t, 0.0, m.Width(""))
	assert.Equal(t, 3.0, m.Width("foo"))
	assert.Equal(t, 1.0, m.Width("é"), "runes, not bytes")

	wide := Monospace(2.5)
	assert.Equal(t, 5.0, wide.Width("ab"))
}

func TestFunc(t *testing.T) {
	var o Oracle = Func(func(s string) float64 { return float64(len(s)) * 2 })
	assert.Equal(t, 6.0, o.Width("abc"))
}

func TestDefaultFace(t *testing.T) {
	face, err := Default(12)
	require.NoError(t, err)

	assert.Equal(t, 0.0, face.Width(""))

	one := face.Width("m")
	assert.Greater(t, one, 0.0)

	// Widths accumulate: a longer string is at least as wide, and a
	// proportional face gives "i" less room than "m".
	assert.Greater(t, face.Width("mm"), one)
	assert.Less(t, face.Width("i"), one)
}

func TestNewFace_BadData(t *testing.T) {
	_, err := NewFace([]byte("not a font"), 12, DefaultDPI)
	require.Error(t, err)
}
