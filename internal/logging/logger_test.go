package logging

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"ERROR", log.ErrorLevel},
		{"bogus", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(tt.level)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestDefault_Stable(t *testing.T) {
	require.NotNil(t, Default())
	assert.Same(t, Default(), Default())
}

func TestContextRoundTrip(t *testing.T) {
	logger := New("debug")
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	// Absent or nil context falls back to the default.
	assert.Same(t, Default(), FromContext(context.Background()))
	assert.Same(t, Default(), FromContext(nil)) //nolint:staticcheck // nil fallback is the point
}
