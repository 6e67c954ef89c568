package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/platform/logger"
	"github.com/aprendia/aprendia-api/internal/store"
)

// Verify interface compliance at compile time
var _ Catalog = (*storeCatalog)(nil)

// storeCatalog implements the Catalog interface on top of a FlashcardStore.
type storeCatalog struct {
	flashcards store.FlashcardStore
	logger     *slog.Logger
}

// NewCatalog creates a Catalog backed by the given flashcard store.
func NewCatalog(flashcards store.FlashcardStore, logger *slog.Logger) Catalog {
	if flashcards == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("flashcards store cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &storeCatalog{
		flashcards: flashcards,
		logger:     logger.With(slog.String("component", "catalog")),
	}
}

// ListCards implements Catalog.ListCards.
func (c *storeCatalog) ListCards(
	ctx context.Context,
	category domain.Category,
) ([]domain.Flashcard, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	cards, err := c.flashcards.ListByCategory(ctx, category)
	if err != nil {
		log := logger.FromContextOrDefault(ctx, c.logger)
		log.Error("failed to list catalog cards",
			slog.String("error", err.Error()),
			slog.String("category", category.String()))
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// TotalCards implements Catalog.TotalCards.
func (c *storeCatalog) TotalCards(ctx context.Context, category domain.Category) (int, error) {
	if !category.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	count, err := c.flashcards.CountByCategory(ctx, category)
	if err != nil {
		log := logger.FromContextOrDefault(ctx, c.logger)
		log.Error("failed to count catalog cards",
			slog.String("error", err.Error()),
			slog.String("category", category.String()))
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}

	return count, nil
}
