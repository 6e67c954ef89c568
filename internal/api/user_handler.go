package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aprendia/aprendia-api/internal/api/shared"
	"github.com/aprendia/aprendia-api/internal/redact"
	"github.com/aprendia/aprendia-api/internal/service/auth"
	"github.com/aprendia/aprendia-api/internal/store"
)

// UserHandler handles profile-related API requests for the
// authenticated user.
type UserHandler struct {
	userStore      store.UserStore
	passwordHasher auth.PasswordHasher
	logger         *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, passwordHasher auth.PasswordHasher, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		userStore:      userStore,
		passwordHasher: passwordHasher,
		logger:         logger.With(slog.String("component", "user_handler")),
	}
}

// GetProfile handles GET /users/me requests.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("failed to get user",
			"error", redact.Error(err),
			"user_id", userID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to retrieve profile", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	})
}

// UpdateProfile handles PUT /users/me requests. Fields omitted from the
// payload keep their stored values.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("failed to get user",
			"error", redact.Error(err),
			"user_id", userID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.Password != "" {
		hashed, err := h.passwordHasher.Hash(req.Password)
		if err != nil {
			h.logger.Error("failed to hash password",
				"error", redact.Error(err),
				"user_id", userID)
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to update profile", err)
			return
		}
		user.HashedPassword = hashed
	}

	user.UpdatedAt = time.Now().UTC()

	if err := h.userStore.Update(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		h.logger.Error("failed to update user",
			"error", redact.Error(err),
			"user_id", userID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	})
}
