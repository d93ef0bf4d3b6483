package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/you/shopsvc/domain"
)

// JWTServiceImpl implements domain.TokenService.
// Access tokens carry {user_id, email, role}; reset tokens carry {user_id, jti}.
// The scope claim keeps the two flavors from being interchangeable.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
	resetTTL  time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, issuer string, accessTTL, resetTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
	}
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(userID uint, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"scope":   domain.ScopeAccess,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GenerateResetToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateResetToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"scope":   domain.ScopeReset,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.resetTTL).Unix(),
		"jti":     uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString, domain.ScopeAccess)
}

// ValidateResetToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateResetToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString, domain.ScopeReset)
}

// validateToken validates signature, expiry and scope, and extracts claims
func (j *JWTServiceImpl) validateToken(tokenString, wantScope string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		if token != nil && token.Claims != nil {
			// jwt/v5 rejects expired tokens during Parse; distinguish for callers
			if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil && exp.Before(time.Now()) {
				return nil, domain.ErrTokenExpired
			}
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	scope, ok := claims["scope"].(string)
	if !ok || scope != wantScope {
		// An access token must never pass as a reset token and vice versa
		return nil, domain.ErrTokenInvalid
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	tokenClaims := &domain.TokenClaims{
		UserID:    uint(userID),
		Scope:     scope,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}

	if email, ok := claims["email"].(string); ok {
		tokenClaims.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		tokenClaims.Role = role
	}
	if jti, ok := claims["jti"].(string); ok {
		tokenClaims.TokenID = jti
	}

	return tokenClaims, nil
}
