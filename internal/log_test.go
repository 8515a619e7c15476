package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"ERROR":  LogLevelError,
		"warn":   LogLevelWarn,
		"INFO":   LogLevelInfo,
		" debug": LogLevelDebug,
		"TRACE":  LogLevelTrace,
		"":       LogLevelInfo,
		"chatty": LogLevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLogLevel(input), "input %q", input)
	}
}

func TestLoggerLevels(t *testing.T) {
	logger := NewLogger(ParseLogLevel("debug"))
	assert.Equal(t, LogLevelDebug, logger.level)

	child := logger.With("op", "test")
	assert.Equal(t, LogLevelDebug, child.level)

	nop := NewNopLogger()
	assert.NotPanics(t, func() {
		nop.Error("e %d", 1)
		nop.Warn("w")
		nop.Info("i")
		nop.Debug("d")
		nop.Trace("t")
	})
}
