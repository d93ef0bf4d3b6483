package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	// UpdatePassword rewrites the stored hash and reports whether a row matched
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) (bool, error)
	// UpdateAccount applies profile fields and, when passwordHash is non-empty,
	// the password hash, inside a single transaction
	UpdateAccount(ctx context.Context, user *User, passwordHash string) error
}

// ProductRepository defines catalog data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// ProductImageRepository defines binary image storage
type ProductImageRepository interface {
	Create(ctx context.Context, image *ProductImage) error
	FindByID(ctx context.Context, id uint) (*ProductImage, error)
}

// AuthService defines authentication and account business logic
type AuthService interface {
	Signup(ctx context.Context, firstName, lastName, email, password, phone, address, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	VerifyResetToken(resetToken string) bool
	GetAccountSettings(ctx context.Context, email string) (*AccountSettings, error)
	UpdateAccountSettings(ctx context.Context, email string, update *AccountUpdate) error
}

// ProductService defines catalog business logic
type ProductService interface {
	Create(ctx context.Context, product *Product) (uint, error)
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
	UploadImage(ctx context.Context, image *ProductImage) (uint, error)
	DownloadImage(ctx context.Context, id uint) (*ProductImage, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, email, role string) (string, error)
	GenerateResetToken(userID uint) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateResetToken(token string) (*TokenClaims, error)
}

// ResetTokenStore tracks consumed reset tokens so each is honored once
type ResetTokenStore interface {
	// Consume marks the token id used. It returns false when the id was
	// already consumed by an earlier reset.
	Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}

// Mailer sends outbound email
type Mailer interface {
	Send(ctx context.Context, to, subject, plainBody, htmlBody string) error
}

// SMSSender sends outbound SMS
type SMSSender interface {
	SendSMS(to, message string) error
}
