// Package main implements the entry point for the Aprendia API server,
// the backend for a flashcard tutor aimed at children learning emotions,
// concepts, and everyday environments. It tracks each child's progress
// per category as a single monotonically-improving record.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/aprendia/aprendia-api/internal/config"
	"github.com/aprendia/aprendia-api/internal/platform/logger"
)

// main initializes configuration, logging, the database connection, and
// all application services, then starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.seedCatalog(ctx); err != nil {
		return fmt.Errorf("failed to seed flashcard catalog: %w", err)
	}

	return app.Run(ctx)
}
