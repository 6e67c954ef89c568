package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error

	// Data for default implementation
	Users       map[string]*domain.User
	CreateError error
	GetError    error
	UpdateError error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if m.UpdateError != nil {
		return m.UpdateError
	}

	for email, existing := range m.Users {
		if existing.ID == user.ID {
			// If the email changed, check the new one is not taken
			if email != user.Email {
				if _, exists := m.Users[user.Email]; exists {
					return store.ErrEmailExists
				}
				delete(m.Users, email)
			}

			m.Users[user.Email] = user
			return nil
		}
	}

	return store.ErrUserNotFound
}

// WithTx implements the UserStore interface
func (m *MockUserStore) WithTx(_ *sql.Tx) store.UserStore {
	return m
}
