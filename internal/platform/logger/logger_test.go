package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprendia/aprendia-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		debugOn  bool
		errorOn  bool
	}{
		{"debug level", "debug", true, true},
		{"info level", "info", false, true},
		{"error level", "error", false, true},
		{"unknown level falls back to info", "verbose", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.Equal(t, tt.debugOn, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.errorOn, logger.Enabled(ctx, slog.LevelError))
		})
	}
}
