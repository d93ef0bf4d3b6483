package mocks

import (
	"fmt"
	"time"

	"github.com/you/shopsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc func(userID uint, email, role string) (string, error)
	GenerateResetTokenFunc  func(userID uint) (string, error)
	ValidateAccessTokenFunc func(token string) (*domain.TokenClaims, error)
	ValidateResetTokenFunc  func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken mints a fake access token
func (m *MockTokenService) GenerateAccessToken(userID uint, email, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, email, role)
	}
	// Default behavior: readable fake token
	return fmt.Sprintf("access_%d_%s_%s", userID, email, role), nil
}

// GenerateResetToken mints a fake reset token
func (m *MockTokenService) GenerateResetToken(userID uint) (string, error) {
	if m.GenerateResetTokenFunc != nil {
		return m.GenerateResetTokenFunc(userID)
	}
	// Default behavior: readable fake token
	return fmt.Sprintf("reset_%d", userID), nil
}

// ValidateAccessToken validates a fake access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// ValidateResetToken validates a fake reset token
func (m *MockTokenService) ValidateResetToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateResetTokenFunc != nil {
		return m.ValidateResetTokenFunc(token)
	}
	// Default behavior: valid claims for user 1, expiring in 30 minutes
	return &domain.TokenClaims{
		UserID:    1,
		Scope:     domain.ScopeReset,
		TokenID:   "jti-default",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(30 * time.Minute).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
