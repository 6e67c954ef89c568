package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/platform/logger"
	"github.com/aprendia/aprendia-api/internal/store"
	"github.com/google/uuid"
)

// noActivityLabel is shown for categories the user has never played.
const noActivityLabel = "Sin actividad"

// lastActivityFormat renders timestamps as dd/mm/yyyy for display.
const lastActivityFormat = "02/01/2006"

// Verify interface compliance at compile time
var _ Ledger = (*ledgerImpl)(nil)

// ledgerImpl implements the Ledger interface.
type ledgerImpl struct {
	records store.ProgressStore
	catalog Catalog
	logger  *slog.Logger
}

// NewLedger creates a new Ledger implementation.
func NewLedger(records store.ProgressStore, catalog Catalog, logger *slog.Logger) Ledger {
	if records == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("records store cannot be nil")
	}
	if catalog == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalog cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ledgerImpl{
		records: records,
		catalog: catalog,
		logger:  logger.With(slog.String("component", "progress_ledger")),
	}
}

// SubmitOutcome implements Ledger.SubmitOutcome.
// Validation happens before any write; the store-level upsert performs the
// merge atomically per (userID, category), so concurrent submissions from
// multiple tabs serialize at the record and converge regardless of order.
func (l *ledgerImpl) SubmitOutcome(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
	outcome domain.Outcome,
) (*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, l.logger)

	if !category.Valid() {
		log.Warn("outcome submitted for unknown category",
			slog.String("user_id", userID.String()),
			slog.String("category", category.String()))
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	if err := outcome.Validate(); err != nil {
		log.Warn("invalid outcome submitted",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("category", category.String()))
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutcome, err)
	}

	// Single authoritative clamp point for the claimed percentage.
	outcome = outcome.Clamped()

	totalCards, err := l.catalog.TotalCards(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog size: %w", err)
	}

	merged, err := l.records.Upsert(ctx, userID, category, outcome, totalCards)
	if err != nil {
		log.Error("failed to merge outcome",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("category", category.String()))
		return nil, fmt.Errorf("failed to merge outcome: %w", err)
	}

	log.Debug("outcome merged",
		slog.String("user_id", userID.String()),
		slog.String("category", category.String()),
		slog.Int("score", merged.Score),
		slog.Float64("percentage", merged.Percentage),
		slog.Bool("completed", merged.Completed))
	return merged, nil
}

// GetOutcome implements Ledger.GetOutcome.
// "Never played" comes back as the empty record, not an error; callers
// cannot distinguish it from "played and scored zero" at this layer.
func (l *ledgerImpl) GetOutcome(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
) (*domain.Progress, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	record, err := l.records.Get(ctx, userID, category)
	if err != nil {
		if errors.Is(err, store.ErrProgressNotFound) {
			return domain.NewProgress(userID, category), nil
		}

		log := logger.FromContextOrDefault(ctx, l.logger)
		log.Error("failed to get progress record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("category", category.String()))
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	totalCards, err := l.catalog.TotalCards(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog size: %w", err)
	}

	// The stored count was derived against the catalog size at submit
	// time; rederive on read so the record agrees with the current
	// catalog.
	record.CompletedCards = domain.CompletedCardCount(record.Percentage, totalCards)
	return record, nil
}

// GetAllOutcomes implements Ledger.GetAllOutcomes.
func (l *ledgerImpl) GetAllOutcomes(
	ctx context.Context,
	userID uuid.UUID,
) (map[domain.Category]*domain.Progress, error) {
	stored, err := l.records.GetAllForUser(ctx, userID)
	if err != nil {
		log := logger.FromContextOrDefault(ctx, l.logger)
		log.Error("failed to list progress records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	// Fill in the empty record for categories the user has not played,
	// and rederive completed-card counts for those they have.
	outcomes := make(map[domain.Category]*domain.Progress, len(domain.Categories()))
	for _, category := range domain.Categories() {
		record, ok := stored[category]
		if !ok {
			outcomes[category] = domain.NewProgress(userID, category)
			continue
		}

		totalCards, err := l.catalog.TotalCards(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve catalog size: %w", err)
		}
		record.CompletedCards = domain.CompletedCardCount(record.Percentage, totalCards)
		outcomes[category] = record
	}

	return outcomes, nil
}

// Summarize implements Ledger.Summarize.
func (l *ledgerImpl) Summarize(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
) (*Summary, error) {
	record, err := l.GetOutcome(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	totalCards, err := l.catalog.TotalCards(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog size: %w", err)
	}

	lastActivity := noActivityLabel
	if !record.UpdatedAt.IsZero() {
		lastActivity = record.UpdatedAt.Format(lastActivityFormat)
	}

	return &Summary{
		Category:       category,
		Info:           category.Info(),
		CompletedCards: domain.CompletedCardCount(record.Percentage, totalCards),
		TotalCards:     totalCards,
		BestScore:      record.Score,
		LastActivity:   lastActivity,
		Progress:       record.Percentage,
	}, nil
}
