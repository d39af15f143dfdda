// Package logging provides the structured logger used across finlens.
// It is a thin interface over zap's SugaredLogger so that packages depend on
// a small surface and tests can inject a testing logger.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the logging interface injected into the loader, orchestrator,
// and analyzers. Loggers should be Named per analysis, e.g.
// lggr.Named("budget").
type Logger interface {
	// Named returns a child logger with the given name segment appended.
	Named(name string) Logger

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

type logger struct {
	sugared *zap.SugaredLogger
}

// New returns a production logger. With verbose true the level drops to
// Debug and output switches to the console encoder for readability.
func New(verbose bool) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level.SetLevel(zapcore.DebugLevel)
	} else {
		cfg.Level.SetLevel(zapcore.WarnLevel)
	}

	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &logger{core.Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &logger{zap.NewNop().Sugar()}
}

// Test returns a logger that writes through tb, for use in tests.
func Test(tb testing.TB) Logger {
	tb.Helper()
	return &logger{zaptest.NewLogger(tb).Sugar()}
}

func (l *logger) Named(name string) Logger {
	return &logger{l.sugared.Named(name)}
}

func (l *logger) Debugw(msg string, keysAndValues ...any) {
	l.sugared.Debugw(msg, keysAndValues...)
}

func (l *logger) Infow(msg string, keysAndValues ...any) {
	l.sugared.Infow(msg, keysAndValues...)
}

func (l *logger) Warnw(msg string, keysAndValues ...any) {
	l.sugared.Warnw(msg, keysAndValues...)
}

func (l *logger) Errorw(msg string, keysAndValues ...any) {
	l.sugared.Errorw(msg, keysAndValues...)
}

func (l *logger) Sync() error {
	return l.sugared.Sync()
}
