package store

import (
	"context"
	"database/sql"

	"github.com/aprendia/aprendia-api/internal/domain"
)

// FlashcardStore defines the interface for catalog data persistence.
// The catalog is seeded once at startup and read-only afterwards.
type FlashcardStore interface {
	// ListByCategory retrieves every flashcard in a category, in seed order.
	// A recognized category with no cards yields an empty slice, not an error.
	// Category validity is checked by callers; the store answers for any key.
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Flashcard, error)

	// CountByCategory returns the number of cards in a category.
	CountByCategory(ctx context.Context, category domain.Category) (int, error)

	// Seed inserts the given cards, skipping any (category, question) pair
	// already present. Re-running it against a populated store is a no-op,
	// so startup seeding is idempotent.
	Seed(ctx context.Context, cards []domain.Flashcard) error

	// WithTx returns a new FlashcardStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) FlashcardStore
}
