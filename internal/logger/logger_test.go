package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/comitanigiacomo/kanso-coach/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run("Success: level "+tt.level, func(t *testing.T) {
			log, err := logger.New(tt.level)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want))
			assert.False(t, log.Core().Enabled(tt.want-1))
		})
	}

	t.Run("Fail: unknown level", func(t *testing.T) {
		_, err := logger.New("chatty")
		assert.Error(t, err)
	})
}
