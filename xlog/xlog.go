// Package xlog is a thin facade over Uber zap: one console or JSON core on
// stderr with a dynamically adjustable level. The algorithmic packages under
// lib/ stay log-free; only the command boundary logs.
package xlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogEncoderType uint8

const (
	PlainText LogEncoderType = iota
	JSON
)

// XLogger wraps a zap logger together with its level enabler so callers can
// raise or lower verbosity after construction.
type XLogger struct {
	*zap.Logger
	lvlEnabler zap.AtomicLevel
}

func (l *XLogger) SetLevel(lvl zapcore.Level) {
	l.lvlEnabler.SetLevel(lvl)
}

func (l *XLogger) Level() string {
	return l.lvlEnabler.Level().String()
}

// Named returns a component-scoped child sharing the level enabler.
func (l *XLogger) Named(name string) *XLogger {
	return &XLogger{
		Logger:     l.Logger.Named(name),
		lvlEnabler: l.lvlEnabler,
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		TimeKey:       "ts",
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: "stack",
	}
}

func NewXLogger(lvl zapcore.Level, encoder LogEncoderType) *XLogger {
	var enc zapcore.Encoder
	switch encoder {
	case JSON:
		enc = zapcore.NewJSONEncoder(encoderConfig())
	default:
		enc = zapcore.NewConsoleEncoder(encoderConfig())
	}

	lvlEnabler := zap.NewAtomicLevelAt(lvl)
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvlEnabler)
	return &XLogger{
		Logger:     zap.New(core),
		lvlEnabler: lvlEnabler,
	}
}

// ParseLevel maps a flag value onto a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	if lvl, err := zapcore.ParseLevel(s); err == nil {
		return lvl
	}
	return zapcore.InfoLevel
}
