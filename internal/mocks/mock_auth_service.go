package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	SignupFunc                func(ctx context.Context, firstName, lastName, email, password, phone, address, role string) (*domain.AuthResult, error)
	LoginFunc                 func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	ForgotPasswordFunc        func(ctx context.Context, email string) error
	ResetPasswordFunc         func(ctx context.Context, resetToken, newPassword string) error
	VerifyResetTokenFunc      func(resetToken string) bool
	GetAccountSettingsFunc    func(ctx context.Context, email string) (*domain.AccountSettings, error)
	UpdateAccountSettingsFunc func(ctx context.Context, email string, update *domain.AccountUpdate) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Signup(ctx context.Context, firstName, lastName, email, password, phone, address, role string) (*domain.AuthResult, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, firstName, lastName, email, password, phone, address, role)
	}
	if role == "" {
		role = domain.RoleUser
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: 1, FirstName: firstName, LastName: lastName, Email: email, Role: role},
		Token: "mock-token",
	}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: 1, Email: email, Role: domain.RoleUser},
		Token: "mock-token",
	}, nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, resetToken, newPassword)
	}
	return nil
}

func (m *MockAuthService) VerifyResetToken(resetToken string) bool {
	if m.VerifyResetTokenFunc != nil {
		return m.VerifyResetTokenFunc(resetToken)
	}
	return true
}

func (m *MockAuthService) GetAccountSettings(ctx context.Context, email string) (*domain.AccountSettings, error) {
	if m.GetAccountSettingsFunc != nil {
		return m.GetAccountSettingsFunc(ctx, email)
	}
	return &domain.AccountSettings{
		FullName:      "Mock User",
		Email:         email,
		Notifications: domain.DefaultNotificationPrefs(),
	}, nil
}

func (m *MockAuthService) UpdateAccountSettings(ctx context.Context, email string, update *domain.AccountUpdate) error {
	if m.UpdateAccountSettingsFunc != nil {
		return m.UpdateAccountSettingsFunc(ctx, email, update)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
