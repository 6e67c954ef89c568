package progress

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/store"
)

// mockProgressStore is an in-memory ProgressStore that mirrors the
// database merge semantics via domain.Progress.Merge.
type mockProgressStore struct {
	// Function fields for custom behaviors
	GetFunc    func(ctx context.Context, userID uuid.UUID, category domain.Category) (*domain.Progress, error)
	UpsertFunc func(ctx context.Context, userID uuid.UUID, category domain.Category, outcome domain.Outcome, totalCards int) (*domain.Progress, error)

	records map[string]*domain.Progress
	now     time.Time
}

func newMockProgressStore() *mockProgressStore {
	return &mockProgressStore{
		records: make(map[string]*domain.Progress),
		now:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func progressKey(userID uuid.UUID, category domain.Category) string {
	return userID.String() + "|" + category.String()
}

func (m *mockProgressStore) Get(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
) (*domain.Progress, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, category)
	}

	record, ok := m.records[progressKey(userID, category)]
	if !ok {
		return nil, store.ErrProgressNotFound
	}
	copied := *record
	return &copied, nil
}

func (m *mockProgressStore) Upsert(
	ctx context.Context,
	userID uuid.UUID,
	category domain.Category,
	outcome domain.Outcome,
	totalCards int,
) (*domain.Progress, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, userID, category, outcome, totalCards)
	}

	key := progressKey(userID, category)
	record, ok := m.records[key]
	if !ok {
		record = domain.NewProgress(userID, category)
		m.records[key] = record
	}
	record.Merge(outcome, totalCards, m.now)

	copied := *record
	return &copied, nil
}

func (m *mockProgressStore) GetAllForUser(
	_ context.Context,
	userID uuid.UUID,
) (map[domain.Category]*domain.Progress, error) {
	result := make(map[domain.Category]*domain.Progress)
	for _, record := range m.records {
		if record.UserID == userID {
			copied := *record
			result[record.Category] = &copied
		}
	}
	return result, nil
}

func (m *mockProgressStore) WithTx(_ *sql.Tx) store.ProgressStore {
	return m
}

// mockFlashcardStore serves a fixed in-memory catalog.
type mockFlashcardStore struct {
	cards map[domain.Category][]domain.Flashcard

	ListErr  error
	CountErr error
}

func newMockFlashcardStore(cards []domain.Flashcard) *mockFlashcardStore {
	byCategory := make(map[domain.Category][]domain.Flashcard)
	for _, card := range cards {
		byCategory[card.Category] = append(byCategory[card.Category], card)
	}
	return &mockFlashcardStore{cards: byCategory}
}

func (m *mockFlashcardStore) ListByCategory(
	_ context.Context,
	category domain.Category,
) ([]domain.Flashcard, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.cards[category], nil
}

func (m *mockFlashcardStore) CountByCategory(
	_ context.Context,
	category domain.Category,
) (int, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return len(m.cards[category]), nil
}

func (m *mockFlashcardStore) Seed(_ context.Context, cards []domain.Flashcard) error {
	for _, card := range cards {
		m.cards[card.Category] = append(m.cards[card.Category], card)
	}
	return nil
}

func (m *mockFlashcardStore) WithTx(_ *sql.Tx) store.FlashcardStore {
	return m
}
