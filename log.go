package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a logger that writes plain "[LEVEL] message" lines to w.
// Warnings are dropped when quiet is set.
func newLogger(w io.Writer, quiet bool) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	}
	level := zapcore.WarnLevel
	if quiet {
		level = zapcore.ErrorLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}
