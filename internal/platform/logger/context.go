package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type for context keys defined in this package,
// preventing collisions with keys defined elsewhere.
type contextKey struct{}

var loggerKey = contextKey{}

// WithLogger returns a copy of ctx carrying the given logger.
// Handlers and middleware use this to thread request-scoped loggers
// (e.g., with trace IDs attached) through the call stack.
// Panics if logger is nil; pass slog.Default() instead of nil.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		// ALLOW-PANIC: Guarding a programmer error, not a runtime condition
		panic("nil logger passed to WithLogger")
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger stored in ctx, falling back to
// slog.Default() when none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in ctx, falling back to
// the provided default when none is present. Components use this to prefer
// a request-scoped logger over their own.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
