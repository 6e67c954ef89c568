package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aprendia/aprendia-api/internal/api"
	apiMiddleware "github.com/aprendia/aprendia-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // trace IDs for error correlation

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	userHandler := api.NewUserHandler(app.userStore, app.passwordHasher, app.logger)
	flashcardHandler := api.NewFlashcardHandler(app.catalog, app.logger)
	progressHandler := api.NewProgressHandler(app.ledger, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Profile endpoints
			r.Get("/users/me", userHandler.GetProfile)
			r.Put("/users/me", userHandler.UpdateProfile)

			// Catalog endpoints
			r.Get("/flashcards/{category}", flashcardHandler.ListByCategory)

			// Progress endpoints
			r.Post("/progress", progressHandler.SubmitOutcome)
			r.Get("/progress", progressHandler.GetAllOutcomes)
			r.Get("/progress/{category}", progressHandler.GetOutcome)
			r.Get("/progress/{category}/summary", progressHandler.GetSummary)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
