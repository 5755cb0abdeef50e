package linebreak

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terminator() []Item {
	return []Item{
		Penalty(0, Infinity, false),
		Glue(0, Infinity, 0),
		Penalty(0, -Infinity, true),
	}
}

func TestValidateStream_Terminator(t *testing.T) {
	stream := append([]Item{Box(3, "foo")}, terminator()...)
	require.NoError(t, ValidateStream(stream))
}

func TestValidateStream_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
	}{
		{"empty", nil},
		{"too short", []Item{Penalty(0, -Infinity, true)}},
		{"missing forced break", []Item{
			Penalty(0, Infinity, false),
			Glue(0, Infinity, 0),
			Box(1, "x"),
		}},
		{"finite trailing glue stretch", []Item{
			Penalty(0, Infinity, false),
			Glue(0, 1, 0),
			Penalty(0, -Infinity, true),
		}},
		{"finite forbidding penalty", []Item{
			Penalty(0, 1000, false),
			Glue(0, Infinity, 0),
			Penalty(0, -Infinity, true),
		}},
		{"forced break with width", []Item{
			Penalty(0, Infinity, false),
			Glue(0, Infinity, 0),
			Penalty(2, -Infinity, true),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStream(tt.items)
			require.Error(t, err)

			var iv *InvariantViolationError
			assert.ErrorAs(t, err, &iv)
		})
	}
}

func TestItem_IsForcedBreak(t *testing.T) {
	assert.True(t, Penalty(0, -Infinity, false).IsForcedBreak())
	assert.False(t, Penalty(0, Infinity, false).IsForcedBreak())
	assert.False(t, Penalty(0, -50, false).IsForcedBreak())
	assert.False(t, Glue(0, math.Inf(-1), 0).IsForcedBreak())
}

func TestItemKind_String(t *testing.T) {
	assert.Equal(t, "box", KindBox.String())
	assert.Equal(t, "glue", KindGlue.String())
	assert.Equal(t, "penalty", KindPenalty.String())
}
