package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`
}

// ProfileResponse defines the response for profile endpoints.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest defines the payload for the profile update endpoint.
// Empty fields keep the stored value; a non-empty password replaces the
// current one.
type UpdateProfileRequest struct {
	Name      string `json:"name"       validate:"omitempty,min=1,max=100"`
	Email     string `json:"email"      validate:"omitempty,email"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
	Password  string `json:"password"   validate:"omitempty,min=12,max=72"`
}

// FlashcardResponse represents one catalog card. The correct option index
// and feedback are included because the client drives the session locally.
type FlashcardResponse struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Question      string    `json:"question"`
	ImageURL      string    `json:"image_url"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correct_option"`
	Feedback      string    `json:"feedback"`
}

// SubmitProgressRequest defines the payload for an outcome submission.
type SubmitProgressRequest struct {
	Category   string  `json:"category"   validate:"required"`
	Score      int     `json:"score"      validate:"gte=0"`
	Percentage float64 `json:"percentage"`
	Completed  bool    `json:"completed"`
}

// ProgressResponse represents the merged progress record for one category.
type ProgressResponse struct {
	Category       string     `json:"category"`
	Score          int        `json:"score"`
	Percentage     float64    `json:"percentage"`
	CompletedCards int        `json:"completed_cards"`
	Completed      bool       `json:"completed"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// SummaryResponse represents the reporting projection for one category.
type SummaryResponse struct {
	Category       string  `json:"category"`
	Name           string  `json:"name"`
	Icon           string  `json:"icon"`
	Color          string  `json:"color"`
	CompletedCards int     `json:"completed_cards"`
	TotalCards     int     `json:"total_cards"`
	BestScore      int     `json:"best_score"`
	LastActivity   string  `json:"last_activity"`
	Progress       float64 `json:"progress"`
}
