// internal/logging/logging.go

// Package logging builds the diagnostic logger. All progress and
// per-file failure reporting goes through zap to the stderr writer the
// caller hands in, keeping stdout reserved for results.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. quiet raises the
// level so only errors surface. The syncer is locked: parse workers
// and the fold loop log through the same instance concurrently.
func New(stderr io.Writer, quiet bool) *zap.Logger {
	level := zapcore.InfoLevel
	if quiet {
		level = zapcore.ErrorLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "" // keep the diagnostic stream stable across runs
	ws := zapcore.Lock(zapcore.AddSync(stderr))
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), ws, level)
	return zap.New(core)
}
