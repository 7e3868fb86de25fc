// Package logger provides context-aware structured logging on top of zap.
//
// The dashboard owns the terminal, so logs normally go to a file. Until
// Setup runs, the package logger discards everything.
package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// Options configures Setup.
type Options struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// File receives JSON log lines. Empty disables file output.
	File string
	// Stderr adds human-readable console output on stderr.
	Stderr bool
}

var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup builds the package logger from opts and returns a function that
// flushes and closes its outputs.
func Setup(opts Options) (func() error, error) {
	levelName := opts.Level
	if levelName == "" {
		levelName = DefaultLevel
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", levelName, err)
	}

	var (
		cores []zapcore.Core
		file  *os.File
	)

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, fmt.Errorf("creating log dir: %w", err)
		}
		file, err = os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(file), level))
	}

	if opts.Stderr {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level))
	}

	if len(cores) == 0 {
		defaultLogger = zap.NewNop()
		return func() error { return nil }, nil
	}

	l := zap.New(zapcore.NewTee(cores...))
	defaultLogger = l

	return func() error {
		_ = l.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}, nil
}

type key struct{}

// Get retrieves the logger stored in ctx, or the package logger.
func Get(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
			return l
		}
	}
	return defaultLogger
}

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a context whose logger adds fields to every entry.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether debug entries from ctx's logger are written.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs at error level.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}
