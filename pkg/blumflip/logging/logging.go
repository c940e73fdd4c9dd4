package logging

import (
	"context"
	"log/slog"
)

const hiddenPlaceholder = "[hidden]"

// Logger defines the subset of slog functionality used around coin-flipping
// runs. The interface is intentionally small so applications can provide
// their own implementation for testing or secret-hiding policies.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds
// to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Hidden marks attributes whose values are secret at the time of logging,
// such as an unrevealed exponent. Callers include the attribute as a record
// that the value existed and was withheld.
func Hidden(key string) slog.Attr {
	return slog.String(key, hiddenPlaceholder)
}

// Placeholder returns the canonical string that stands in for a hidden value.
func Placeholder() string {
	return hiddenPlaceholder
}
