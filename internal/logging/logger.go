// Package logging builds the zap logger used for lifecycle diagnostics.
//
// The terminal belongs to the UI, so logs only go to a file. Without a file the
// logger is a no-op.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"counterlab/internal/config"
	"counterlab/internal/counter"
)

// New returns a logger writing JSON lines to cfg.File. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// CounterHook logs applied intents for the named counter. Count changes are
// logged at info, everything else at debug.
func CounterHook(logger *zap.Logger, name string) counter.Hook {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := logger.With(zap.String("counter", name))
	return func(ch counter.Change) {
		if ch.CountChanged() {
			l.Info(fmt.Sprintf("count changed from %d to %d", ch.From, ch.To),
				zap.Stringer("intent", ch.Intent),
				zap.Int("step", ch.Step))
			return
		}
		l.Debug("intent applied",
			zap.Stringer("intent", ch.Intent),
			zap.Int("count", ch.To),
			zap.Int("step", ch.Step))
	}
}
