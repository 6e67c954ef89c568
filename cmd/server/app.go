package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/aprendia/aprendia-api/internal/config"
	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/platform/postgres"
	"github.com/aprendia/aprendia-api/internal/service/auth"
	"github.com/aprendia/aprendia-api/internal/service/progress"
	"github.com/aprendia/aprendia-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore      store.UserStore
	flashcardStore store.FlashcardStore
	progressStore  store.ProgressStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	catalog          progress.Catalog
	ledger           progress.Ledger
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(
	_ context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password services
	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.flashcardStore = postgres.NewPostgresFlashcardStore(db, logger)
	app.progressStore = postgres.NewPostgresProgressStore(db, logger)

	// Initialize the progress engine
	app.catalog = progress.NewCatalog(app.flashcardStore, logger)
	app.ledger = progress.NewLedger(app.progressStore, app.catalog, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// seedCatalog inserts the default flashcard set. Seeding is idempotent:
// cards already present by (category, question) are left untouched, so
// restarts never duplicate the catalog.
func (app *application) seedCatalog(ctx context.Context) error {
	cards := domain.DefaultFlashcards()

	err := store.RunInTransaction(ctx, app.db, func(ctx context.Context, tx *sql.Tx) error {
		return app.flashcardStore.WithTx(tx).Seed(ctx, cards)
	})
	if err != nil {
		return fmt.Errorf("failed to seed flashcards: %w", err)
	}

	app.logger.Info("Flashcard catalog seeded", "cards", len(cards))
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
