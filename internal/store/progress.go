package store

import (
	"context"
	"database/sql"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/google/uuid"
)

// ProgressStore defines the interface for progress record persistence.
// There is at most one record per (user, category) pair.
type ProgressStore interface {
	// Get retrieves the progress record for a (user, category) pair.
	// Returns ErrProgressNotFound if no record exists yet.
	Get(ctx context.Context, userID uuid.UUID, category domain.Category) (*domain.Progress, error)

	// Upsert merges an outcome into the stored record for (userID, category),
	// creating the record if absent. The merge is the monotonic rule from
	// domain.Progress.Merge (max score, max percentage, OR completed, derived
	// completed-card count) executed as a single atomic statement per key, so
	// concurrent submissions for the same pair serialize at the row and
	// converge to the same state in any order.
	// Returns the merged record as persisted.
	Upsert(
		ctx context.Context,
		userID uuid.UUID,
		category domain.Category,
		outcome domain.Outcome,
		totalCards int,
	) (*domain.Progress, error)

	// GetAllForUser retrieves every stored progress record for a user,
	// keyed by category. Categories the user has not played are absent.
	GetAllForUser(ctx context.Context, userID uuid.UUID) (map[domain.Category]*domain.Progress, error)

	// WithTx returns a new ProgressStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) ProgressStore
}
