package xlog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestXLoggerLevelControl(t *testing.T) {
	logger := NewXLogger(zapcore.InfoLevel, PlainText)
	require.Equal(t, "info", logger.Level())
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger.SetLevel(zapcore.DebugLevel)
	require.Equal(t, "debug", logger.Level())
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	// A named child shares the enabler with its parent.
	child := logger.Named("driver")
	child.SetLevel(zapcore.WarnLevel)
	require.Equal(t, "warn", logger.Level())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	require.Equal(t, zapcore.InfoLevel, ParseLevel("not-a-level"))
}
