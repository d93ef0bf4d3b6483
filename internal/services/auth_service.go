package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/you/shopsvc/domain"
)

const minPasswordLength = 6

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	resetTokens domain.ResetTokenStore
	mailer      domain.Mailer
	sms         domain.SMSSender
	appBaseURL  string
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	resetTokens domain.ResetTokenStore,
	mailer domain.Mailer,
	sms domain.SMSSender,
	appBaseURL string,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		resetTokens: resetTokens,
		mailer:      mailer,
		sms:         sms,
		appBaseURL:  appBaseURL,
	}
}

// Signup implements domain.AuthService. Input shape is validated at the
// binding layer; the service only enforces persistence-level rules.
func (s *AuthServiceImpl) Signup(ctx context.Context, firstName, lastName, email, password, phone, address, role string) (*domain.AuthResult, error) {
	if role == "" {
		role = domain.RoleUser
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        phone,
		Address:      address,
		Role:         role,
		DateJoined:   time.Now(),
	}

	// The unique index on email is the sole duplicate guard; no pre-check read
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login implements domain.AuthService. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// ForgotPassword implements domain.AuthService. The reset token is minted
// before the email goes out; a delivery failure does not revoke it.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := s.tokenSvc.GenerateResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(s.appBaseURL, "/"), token)
	plain := fmt.Sprintf("Reset your password using this link: %s\nThe link expires in 30 minutes.", link)
	html := fmt.Sprintf(`<p>Reset your password using <a href="%s">this link</a>.</p><p>The link expires in 30 minutes.</p>`, link)

	if err := s.mailer.Send(ctx, user.Email, "Password Reset Request", plain, html); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	return nil
}

// ResetPassword implements domain.AuthService. Each reset token is honored
// once; the jti is marked consumed for the token's remaining life.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.NewValidationError(domain.FieldError{
			Field: "newPassword", Message: "Password must be at least 6 characters long",
		})
	}

	claims, err := s.tokenSvc.ValidateResetToken(resetToken)
	if err != nil {
		return domain.ErrResetTokenInvalid
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	consumed, err := s.resetTokens.Consume(ctx, claims.TokenID, ttl)
	if err != nil {
		return fmt.Errorf("failed to mark reset token consumed: %w", err)
	}
	if !consumed {
		return domain.ErrResetTokenInvalid
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	matched, err := s.userRepo.UpdatePassword(ctx, claims.UserID, hash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if !matched {
		// User was deleted after the token was issued
		return domain.ErrUserNotFound
	}

	log.Printf("PASSWORD_RESET: user_id=%d timestamp=%s", claims.UserID, time.Now().UTC().Format(time.RFC3339))
	return nil
}

// VerifyResetToken implements domain.AuthService. Pure check, never consumes.
func (s *AuthServiceImpl) VerifyResetToken(resetToken string) bool {
	_, err := s.tokenSvc.ValidateResetToken(resetToken)
	return err == nil
}

// GetAccountSettings implements domain.AuthService
func (s *AuthServiceImpl) GetAccountSettings(ctx context.Context, email string) (*domain.AccountSettings, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &domain.AccountSettings{
		FullName:      user.FullName(),
		Email:         user.Email,
		Phone:         user.Phone,
		Notifications: parseNotifications(user.Notifications),
	}, nil
}

// UpdateAccountSettings implements domain.AuthService. Profile fields and the
// optional password change commit in one transaction.
func (s *AuthServiceImpl) UpdateAccountSettings(ctx context.Context, email string, update *domain.AccountUpdate) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	first, last := splitFullName(update.FullName)
	user.FirstName = first
	user.LastName = last
	user.Phone = update.Phone

	prefs, err := json.Marshal(update.Notifications)
	if err != nil {
		return fmt.Errorf("failed to serialize notifications: %w", err)
	}
	user.Notifications = string(prefs)

	var newHash string
	changingPassword := update.Password != "" && update.NewPassword != "" && update.ConfirmPassword != ""
	if changingPassword {
		if !s.passwordSvc.Verify(user.PasswordHash, update.Password) {
			return domain.ErrInvalidCredentials
		}
		if update.NewPassword != update.ConfirmPassword {
			return domain.NewValidationError(domain.FieldError{
				Field: "confirmPassword", Message: "New password and confirmation do not match",
			})
		}
		if update.NewPassword == update.Password {
			return domain.NewValidationError(domain.FieldError{
				Field: "newPassword", Message: "New password must differ from the current password",
			})
		}
		if len(update.NewPassword) < minPasswordLength {
			return domain.NewValidationError(domain.FieldError{
				Field: "newPassword", Message: "Password must be at least 6 characters long",
			})
		}
		newHash, err = s.passwordSvc.Hash(update.NewPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	if err := s.userRepo.UpdateAccount(ctx, user, newHash); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if changingPassword {
		s.notifyPasswordChanged(ctx, user, update.Notifications)
	}

	return nil
}

// notifyPasswordChanged honors the stored notification preference. The update
// has already committed, so failures are logged and swallowed.
func (s *AuthServiceImpl) notifyPasswordChanged(ctx context.Context, user *domain.User, prefs domain.NotificationPrefs) {
	if prefs.Email {
		body := "Your account password was changed. If this wasn't you, reset it immediately."
		if err := s.mailer.Send(ctx, user.Email, "Password Changed", body, "<p>"+body+"</p>"); err != nil {
			log.Printf("password change email failed: user_id=%d err=%v", user.ID, err)
		}
	}
	if prefs.SMS && user.Phone != "" {
		if err := s.sms.SendSMS(user.Phone, "Your account password was changed."); err != nil {
			log.Printf("password change sms failed: user_id=%d err=%v", user.ID, err)
		}
	}
}

// splitFullName splits at the first whitespace boundary
func splitFullName(fullName string) (string, string) {
	trimmed := strings.TrimSpace(fullName)
	parts := strings.SplitN(trimmed, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

// parseNotifications tolerates unset or unreadable preference text
func parseNotifications(raw string) domain.NotificationPrefs {
	if raw == "" {
		return domain.DefaultNotificationPrefs()
	}
	var prefs domain.NotificationPrefs
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return domain.DefaultNotificationPrefs()
	}
	return prefs
}
