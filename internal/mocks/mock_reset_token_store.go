package mocks

import (
	"context"
	"time"

	"github.com/you/shopsvc/domain"
)

// MockResetTokenStore implements domain.ResetTokenStore interface for testing
type MockResetTokenStore struct {
	ConsumeFunc func(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}

// NewMockResetTokenStore creates a new MockResetTokenStore with default behaviors
func NewMockResetTokenStore() *MockResetTokenStore {
	return &MockResetTokenStore{}
}

// Consume marks a token id consumed
func (m *MockResetTokenStore) Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, tokenID, ttl)
	}
	// Default behavior: first consumer wins
	return true, nil
}

// Compile-time interface compliance verification
var _ domain.ResetTokenStore = (*MockResetTokenStore)(nil)
