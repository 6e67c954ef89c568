package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/service/progress"
)

// MockCatalog implements progress.Catalog for testing
type MockCatalog struct {
	// Function fields for customizable behavior
	ListCardsFn  func(ctx context.Context, category domain.Category) ([]domain.Flashcard, error)
	TotalCardsFn func(ctx context.Context, category domain.Category) (int, error)

	// Data for default implementation
	Cards map[domain.Category][]domain.Flashcard
	Err   error
}

// NewMockCatalog creates a catalog mock seeded with the given cards.
func NewMockCatalog(cards []domain.Flashcard) *MockCatalog {
	byCategory := make(map[domain.Category][]domain.Flashcard)
	for _, card := range cards {
		byCategory[card.Category] = append(byCategory[card.Category], card)
	}
	return &MockCatalog{Cards: byCategory}
}

// ListCards implements the progress.Catalog interface
func (m *MockCatalog) ListCards(
	ctx context.Context,
	category domain.Category,
) ([]domain.Flashcard, error) {
	if m.ListCardsFn != nil {
		return m.ListCardsFn(ctx, category)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	if !category.Valid() {
		return nil, progress.ErrUnknownCategory
	}
	return m.Cards[category], nil
}

// TotalCards implements the progress.Catalog interface
func (m *MockCatalog) TotalCards(ctx context.Context, category domain.Category) (int, error) {
	if m.TotalCardsFn != nil {
		return m.TotalCardsFn(ctx, category)
	}

	if m.Err != nil {
		return 0, m.Err
	}
	if !category.Valid() {
		return 0, progress.ErrUnknownCategory
	}
	return len(m.Cards[category]), nil
}

// MockLedger implements progress.Ledger for testing
type MockLedger struct {
	// Function fields for customizable behavior
	SubmitOutcomeFn  func(ctx context.Context, userID uuid.UUID, category domain.Category, outcome domain.Outcome) (*domain.Progress, error)
	GetOutcomeFn     func(ctx context.Context, userID uuid.UUID, category domain.Category) (*domain.Progress, error)
	GetAllOutcomesFn func(ctx context.Context, userID uuid.UUID) (map[domain.Category]*domain.Progress, error)
	SummarizeFn      func(ctx context.Context, userID uuid.UUID, category domain.Category) (*progress.Summary, error)

	// Default values used when functions aren't explicitly defined
	Record  *domain.Progress
	Records map[domain.Category]*domain.Progress
	Summary *progress.Summary
	Err     error
}

// SubmitOutcome implements the progress.Ledger interface
func (m *MockLedger) SubmitOutcome(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
	outcome domain.Outcome,
) (*domain.Progress, error) {
	if m.SubmitOutcomeFn != nil {
		return m.SubmitOutcomeFn(ctx, userID, category, outcome)
	}

	return m.Record, m.Err
}

// GetOutcome implements the progress.Ledger interface
func (m *MockLedger) GetOutcome(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
) (*domain.Progress, error) {
	if m.GetOutcomeFn != nil {
		return m.GetOutcomeFn(ctx, userID, category)
	}

	return m.Record, m.Err
}

// GetAllOutcomes implements the progress.Ledger interface
func (m *MockLedger) GetAllOutcomes(
	ctx context.Context,
	userID uuid.UUID,
) (map[domain.Category]*domain.Progress, error) {
	if m.GetAllOutcomesFn != nil {
		return m.GetAllOutcomesFn(ctx, userID)
	}

	return m.Records, m.Err
}

// Summarize implements the progress.Ledger interface
func (m *MockLedger) Summarize(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
) (*progress.Summary, error) {
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx, userID, category)
	}

	return m.Summary, m.Err
}
