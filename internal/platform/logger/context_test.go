package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Parallel()

	custom := slog.Default().With(slog.String("trace_id", "abc123"))
	ctx := WithLogger(context.Background(), custom)

	assert.Same(t, custom, FromContext(ctx))
	assert.Same(t, custom, FromContextOrDefault(ctx, nil))
}

func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Same(t, slog.Default(), FromContext(ctx))

	def := slog.Default().With(slog.String("component", "test"))
	assert.Same(t, def, FromContextOrDefault(ctx, def))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))
}

func TestWithLoggerNilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		WithLogger(context.Background(), nil)
	})
}
