// Package logging is the central logging package of codexrun. It holds our custom log formatters for zap.
// Info messages go to the "out" sink, everything more severe to the "err" sink, so that diagnostic output never mixes
// with the output of the wrapped executable on stdout.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewProductionLogger returns a logger that prints Info messages to out and Warn messages and above to err. Debug
// messages are discarded.
func NewProductionLogger(out, err io.Writer) *zap.SugaredLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		// These strings are meaningless - they just need to be non-empty for the console encoder.
		MessageKey: "M",
		LevelKey:   "L",
		EncodeLevel: func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			// Anything other than "info" logs will have a capitalized level prefix.
			if lvl != zapcore.InfoLevel {
				zapcore.CapitalLevelEncoder(lvl, enc)
			}
		},
	})

	return newTeeLogger(encoder, out, err, func(level zapcore.Level) bool {
		return level != zapcore.DebugLevel
	})
}

// NewDebugLogger is similar to our production logger, however it also includes debug output, timestamps & stacktraces
func NewDebugLogger(out, err io.Writer) *zap.SugaredLogger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		// These strings are meaningless - they just need to be non-empty for the console encoder.
		LevelKey:      "L",
		MessageKey:    "M",
		NameKey:       "N",
		StacktraceKey: "S",
		TimeKey:       "T",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
	})

	return newTeeLogger(encoder, out, err, func(zapcore.Level) bool { return true }).
		Desugar().
		WithOptions(zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel)).
		Sugar()
}

func newTeeLogger(encoder zapcore.Encoder, out, err io.Writer, enabled zap.LevelEnablerFunc) *zap.SugaredLogger {
	infoLevels := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zapcore.InfoLevel
	})

	errorLevels := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return !infoLevels(level) && enabled(level)
	})

	return zap.New(zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), infoLevels),
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(err)), errorLevels),
	)).Sugar()
}
