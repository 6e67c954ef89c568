// Package progress implements the progress-tracking engine: the catalog of
// flashcards per category and the ledger that merges client-reported
// session outcomes into one monotonically-improving record per
// (user, category) pair.
package progress

import (
	"context"
	"errors"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/google/uuid"
)

// Catalog supplies the immutable, ordered flashcard list for a category.
// It is seeded once at startup and read-only afterwards.
type Catalog interface {
	// ListCards returns every card in a category, in catalog order.
	// Returns ErrUnknownCategory for an unrecognized category key; a
	// recognized category with no cards yields an empty slice.
	ListCards(ctx context.Context, category domain.Category) ([]domain.Flashcard, error)

	// TotalCards returns the number of cards in a category.
	// Returns ErrUnknownCategory for an unrecognized category key.
	TotalCards(ctx context.Context, category domain.Category) (int, error)
}

// Ledger owns the progress record per (user, category) pair. Submissions
// are merged under the monotonic rule: the record's score and percentage
// never decrease, and completion never reverts. Submissions are
// at-least-once and order-independent; repeating or reordering them
// converges to the same final state.
type Ledger interface {
	// SubmitOutcome merges a claimed session outcome into the stored record
	// for (userID, category), creating the record on first submission.
	// The claimed percentage is clamped to [0, 100] here; this is the single
	// authoritative clamp point. Returns the merged record as persisted.
	// Returns ErrUnknownCategory or ErrInvalidOutcome before any write.
	SubmitOutcome(
		ctx context.Context,
		userID uuid.UUID,
		category domain.Category,
		outcome domain.Outcome,
	) (*domain.Progress, error)

	// GetOutcome returns the merged record for (userID, category), or the
	// well-defined empty record (zero score, zero percentage, not completed)
	// when the user has not played the category. Absence of progress is a
	// normal state, never an error.
	GetOutcome(ctx context.Context, userID uuid.UUID, category domain.Category) (*domain.Progress, error)

	// GetAllOutcomes returns a record for every recognized category,
	// defaulting to the empty record where none is stored. Defined as
	// independent GetOutcome calls; there is no cross-category invariant.
	GetAllOutcomes(ctx context.Context, userID uuid.UUID) (map[domain.Category]*domain.Progress, error)

	// Summarize returns the reporting projection for one category,
	// combining the stored record with the catalog's card count.
	Summarize(ctx context.Context, userID uuid.UUID, category domain.Category) (*Summary, error)
}

// Summary is the read-only reporting projection for one category.
// LastActivity is formatted for display, not for comparison.
type Summary struct {
	Category       domain.Category     `json:"category"`
	Info           domain.CategoryInfo `json:"info"`
	CompletedCards int                 `json:"completed_cards"`
	TotalCards     int                 `json:"total_cards"`
	BestScore      int                 `json:"best_score"`
	LastActivity   string              `json:"last_activity"`
	Progress       float64             `json:"progress"`
}

// Common error types for the progress service
var (
	// ErrUnknownCategory indicates a category key outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidOutcome indicates a malformed outcome submission
	// (e.g., a negative score).
	ErrInvalidOutcome = errors.New("invalid outcome")
)
