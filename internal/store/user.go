package store

import (
	"context"
	"database/sql"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// The user must carry a non-empty HashedPassword; hashing is the
	// caller's responsibility.
	// Returns ErrEmailExists if the email is already in use.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user's profile fields (name, email,
	// avatar URL and, when set, hashed password).
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if the new email is already in use.
	Update(ctx context.Context, user *domain.User) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
