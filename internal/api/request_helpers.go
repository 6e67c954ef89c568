package api

import (
	"net/http"

	"github.com/aprendia/aprendia-api/internal/api/shared"
	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The user ID is placed there by the auth middleware.
// Returns the zero UUID and false if the value is missing or invalid.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathCategory extracts and validates the category key from the URL path.
func getPathCategory(r *http.Request) (domain.Category, error) {
	key := chi.URLParam(r, "category")
	if key == "" {
		return "", domain.NewValidationError("category", "is required", domain.ErrValidation)
	}

	category := domain.Category(key)
	if !category.Valid() {
		return "", domain.NewValidationError("category", "is not recognized", domain.ErrUnknownCategory)
	}

	return category, nil
}
