package domain

import "time"

// User represents a customer or seller account
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Phone        string
	Address      string
	Role         string
	DateJoined   time.Time
	// Notifications is the serialized notification preference, e.g. {"email":true,"sms":false}
	Notifications string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName composes the display name from first and last name
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// NotificationPrefs represents the parsed notification preference
type NotificationPrefs struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// DefaultNotificationPrefs is used when the stored preference is unset or unreadable
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{Email: true, SMS: false}
}

// Product represents a catalog item
type Product struct {
	ID            uint
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	Rating        float64
	Size          string
	Color         string
	// AITagging is opaque serialized text, stored and returned verbatim
	AITagging  string
	CategoryID uint
	BrandID    uint
	SellerID   uint
}

// ProductImage is a binary image row keyed by product and color
type ProductImage struct {
	ID        uint
	ProductID uint
	Color     string
	Data      []byte
	MimeType  string
}

// AuthResult represents a successful signup or login outcome
type AuthResult struct {
	User  *User
	Token string
}

// AccountSettings is the account-settings view returned to the client
type AccountSettings struct {
	FullName      string
	Email         string
	Phone         string
	Notifications NotificationPrefs
}

// AccountUpdate carries an account-settings update request.
// The password fields are only acted on when all three are present.
type AccountUpdate struct {
	FullName        string
	Phone           string
	Notifications   NotificationPrefs
	Password        string
	NewPassword     string
	ConfirmPassword string
}

// TokenClaims represents verified JWT claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	Scope     string `json:"scope"`
	TokenID   string `json:"jti,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Token scopes. A reset token must never pass as an access token and vice versa.
const (
	ScopeAccess = "access"
	ScopeReset  = "password_reset"
)

// Roles
const (
	RoleUser   = "User"
	RoleSeller = "Seller"
	RoleAdmin  = "Admin"
)
