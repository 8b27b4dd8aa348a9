// Package logging builds the zap loggers used by the command line.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level enumerates supported logging granularities.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format enumerates supported logger encodings.
type Format string

const (
	// FormatStructured emits JSON lines.
	FormatStructured Format = "structured"
	// FormatConsole emits human-readable lines.
	FormatConsole Format = "console"
)

var levelMapping = map[Level]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
}

var formatEncoding = map[Format]string{
	FormatStructured: "json",
	FormatConsole:    "console",
}

// NewLogger builds a logger writing to stderr at the requested level and format.
func NewLogger(level Level, format Format) (*zap.Logger, error) {
	zapLevel, ok := levelMapping[Level(strings.ToLower(string(level)))]
	if !ok {
		return nil, fmt.Errorf("unsupported log level: %s", level)
	}
	encoding, ok := formatEncoding[Format(strings.ToLower(string(format)))]
	if !ok {
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.Encoding = encoding
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if encoding == "console" {
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return config.Build()
}
