package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/platform/logger"
	"github.com/aprendia/aprendia-api/internal/store"
)

// PostgresFlashcardStore implements the store.FlashcardStore interface
// using a PostgreSQL database as the storage backend. Option lists are
// stored as JSONB arrays and unmarshaled on read; the stored value is
// data, never code.
type PostgresFlashcardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFlashcardStore creates a new PostgreSQL implementation of the FlashcardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresFlashcardStore(db store.DBTX, logger *slog.Logger) *PostgresFlashcardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFlashcardStore{
		db:     db,
		logger: logger.With(slog.String("component", "flashcard_store")),
	}
}

// Ensure PostgresFlashcardStore implements store.FlashcardStore interface
var _ store.FlashcardStore = (*PostgresFlashcardStore)(nil)

// WithTx implements store.FlashcardStore.WithTx
func (s *PostgresFlashcardStore) WithTx(tx *sql.Tx) store.FlashcardStore {
	return &PostgresFlashcardStore{
		db:     tx,
		logger: s.logger,
	}
}

// ListByCategory implements store.FlashcardStore.ListByCategory
// Cards come back in seed order, which the position column pins down.
// An empty category yields an empty slice.
func (s *PostgresFlashcardStore) ListByCategory(
	ctx context.Context,
	category domain.Category,
) ([]domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, category, question, image_url, options, correct_option, feedback, position, created_at
		FROM flashcards
		WHERE category = $1
		ORDER BY position, id
	`
	rows, err := s.db.QueryContext(ctx, query, category)
	if err != nil {
		log.Error("failed to list flashcards",
			slog.String("error", err.Error()),
			slog.String("category", category.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	cards := []domain.Flashcard{}
	for rows.Next() {
		var card domain.Flashcard
		var optionsJSON []byte
		err := rows.Scan(
			&card.ID,
			&card.Category,
			&card.Question,
			&card.ImageURL,
			&optionsJSON,
			&card.CorrectOption,
			&card.Feedback,
			&card.Position,
			&card.CreatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}

		if err := json.Unmarshal(optionsJSON, &card.Options); err != nil {
			log.Error("failed to decode flashcard options",
				slog.String("error", err.Error()),
				slog.String("flashcard_id", card.ID.String()))
			return nil, fmt.Errorf("failed to decode options for flashcard %s: %w", card.ID, err)
		}

		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// CountByCategory implements store.FlashcardStore.CountByCategory
func (s *PostgresFlashcardStore) CountByCategory(
	ctx context.Context,
	category domain.Category,
) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM flashcards WHERE category = $1`
	if err := s.db.QueryRowContext(ctx, query, category).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Seed implements store.FlashcardStore.Seed
// It inserts cards one by one, skipping any (category, question) pair that
// already exists, so re-running the seed against a populated store adds
// nothing. Invalid cards are rejected before any write.
func (s *PostgresFlashcardStore) Seed(ctx context.Context, cards []domain.Flashcard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i := range cards {
		if err := cards[i].Validate(); err != nil {
			return fmt.Errorf("%w: flashcard %q: %v", store.ErrInvalidEntity, cards[i].Question, err)
		}
	}

	query := `
		INSERT INTO flashcards (id, category, question, image_url, options, correct_option, feedback, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (category, question) DO NOTHING
	`

	inserted := 0
	for _, card := range cards {
		optionsJSON, err := json.Marshal(card.Options)
		if err != nil {
			return fmt.Errorf("failed to encode options for flashcard %q: %w", card.Question, err)
		}

		result, err := s.db.ExecContext(
			ctx,
			query,
			card.ID,
			card.Category,
			card.Question,
			card.ImageURL,
			optionsJSON,
			card.CorrectOption,
			card.Feedback,
			card.Position,
			card.CreatedAt,
		)
		if err != nil {
			log.Error("failed to seed flashcard",
				slog.String("error", err.Error()),
				slog.String("category", card.Category.String()))
			return MapError(err)
		}

		if n, err := result.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	log.Info("flashcard seed completed",
		slog.Int("cards_total", len(cards)),
		slog.Int("cards_inserted", inserted))
	return nil
}
