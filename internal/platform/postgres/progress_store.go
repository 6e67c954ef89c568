package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/platform/logger"
	"github.com/aprendia/aprendia-api/internal/store"
	"github.com/google/uuid"
)

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the ProgressStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// WithTx implements store.ProgressStore.WithTx
func (s *PostgresProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &PostgresProgressStore{
		db:     tx,
		logger: s.logger,
	}
}

// upsertProgressQuery merges an outcome into the stored record in one
// statement. Postgres serializes concurrent upserts on the (user_id,
// category) primary key, and GREATEST/OR make the merge commutative and
// idempotent, so N racing submissions converge to the pairwise-max state
// in any order. completed_cards is always derived from the merged
// percentage; a zero card count pins it to 0.
const upsertProgressQuery = `
	INSERT INTO user_progress (user_id, category, score, percentage, completed_cards, completed, updated_at)
	VALUES (
		$1, $2, $3, $4,
		CASE WHEN $5 <= 0 THEN 0 ELSE FLOOR($4 / 100.0 * $5)::int END,
		$6, $7
	)
	ON CONFLICT (user_id, category) DO UPDATE SET
		score = GREATEST(user_progress.score, EXCLUDED.score),
		percentage = GREATEST(user_progress.percentage, EXCLUDED.percentage),
		completed_cards = CASE WHEN $5 <= 0 THEN 0
			ELSE FLOOR(GREATEST(user_progress.percentage, EXCLUDED.percentage) / 100.0 * $5)::int END,
		completed = user_progress.completed OR EXCLUDED.completed,
		updated_at = EXCLUDED.updated_at
	RETURNING score, percentage, completed_cards, completed, updated_at
`

// Upsert implements store.ProgressStore.Upsert
// The outcome must already be clamped by the ledger; values are merged
// as-is under the monotonic rule.
func (s *PostgresProgressStore) Upsert(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
	outcome domain.Outcome,
	totalCards int,
) (*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	progress := domain.NewProgress(userID, category)
	err := s.db.QueryRowContext(
		ctx,
		upsertProgressQuery,
		userID,
		category,
		outcome.Score,
		outcome.Percentage,
		totalCards,
		outcome.Completed,
		time.Now().UTC(),
	).Scan(
		&progress.Score,
		&progress.Percentage,
		&progress.CompletedCards,
		&progress.Completed,
		&progress.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to upsert progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("category", category.String()))
		return nil, MapError(err)
	}

	log.Debug("progress merged",
		slog.String("user_id", userID.String()),
		slog.String("category", category.String()),
		slog.Int("score", progress.Score),
		slog.Float64("percentage", progress.Percentage),
		slog.Bool("completed", progress.Completed))
	return progress, nil
}

// Get implements store.ProgressStore.Get
// Returns store.ErrProgressNotFound if no record exists for the pair.
func (s *PostgresProgressStore) Get(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
) (*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, category, score, percentage, completed_cards, completed, updated_at
		FROM user_progress
		WHERE user_id = $1 AND category = $2
	`
	progress := &domain.Progress{}
	err := s.db.QueryRowContext(ctx, query, userID, category).Scan(
		&progress.UserID,
		&progress.Category,
		&progress.Score,
		&progress.Percentage,
		&progress.CompletedCards,
		&progress.Completed,
		&progress.UpdatedAt,
	)

	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrProgressNotFound
		}
		log.Error("failed to get progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("category", category.String()))
		return nil, MapError(err)
	}

	return progress, nil
}

// GetAllForUser implements store.ProgressStore.GetAllForUser
func (s *PostgresProgressStore) GetAllForUser(
	ctx context.Context,
	userID uuid.UUID,
) (map[domain.Category]*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, category, score, percentage, completed_cards, completed, updated_at
		FROM user_progress
		WHERE user_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	records := make(map[domain.Category]*domain.Progress)
	for rows.Next() {
		progress := &domain.Progress{}
		err := rows.Scan(
			&progress.UserID,
			&progress.Category,
			&progress.Score,
			&progress.Percentage,
			&progress.CompletedCards,
			&progress.Completed,
			&progress.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		records[progress.Category] = progress
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return records, nil
}
