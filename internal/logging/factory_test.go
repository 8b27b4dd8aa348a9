package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		format    Format
		expectErr bool
		enabled   zapcore.Level
	}{
		{"debug structured", LevelDebug, FormatStructured, false, zapcore.DebugLevel},
		{"warn console", LevelWarn, FormatConsole, false, zapcore.WarnLevel},
		{"upper case", Level("ERROR"), Format("Console"), false, zapcore.ErrorLevel},
		{"bad level", Level("verbose"), FormatConsole, true, zapcore.InfoLevel},
		{"bad format", LevelInfo, Format("xml"), true, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.format)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, logger.Core().Enabled(tt.enabled))
			require.False(t, logger.Core().Enabled(tt.enabled-1))
		})
	}
}
