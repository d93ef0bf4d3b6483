package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/you/shopsvc/domain"
)

// AuthHandlers handles authentication and account HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// SignupRequest represents a signup request
type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role,omitempty"` // Optional role field, defaults to "User"
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest represents a forgot-password request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a reset-password request
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// AccountSettingsRequest represents an account-settings update
type AccountSettingsRequest struct {
	FullName        string                   `json:"fullName"`
	Phone           string                   `json:"phone"`
	Notifications   domain.NotificationPrefs `json:"notifications"`
	Password        string                   `json:"password"`
	NewPassword     string                   `json:"newPassword"`
	ConfirmPassword string                   `json:"confirmPassword"`
}

// Signup handles user registration
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.authSvc.Signup(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password, req.Phone, req.Address, req.Role)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   result.Token,
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"role":    result.User.Role,
	})
}

// ForgotPassword issues a reset token and emails the reset link
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword sets a new password from a valid reset token
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

// VerifyResetToken reports reset-token validity without side effects
func (h *AuthHandlers) VerifyResetToken(c *gin.Context) {
	valid := h.authSvc.VerifyResetToken(c.Param("token"))
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

// GetAccountSettings returns the authenticated user's settings
func (h *AuthHandlers) GetAccountSettings(c *gin.Context) {
	email, exists := c.Get("user_email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	settings, err := h.authSvc.GetAccountSettings(c.Request.Context(), email.(string))
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fullName":      settings.FullName,
		"email":         settings.Email,
		"phone":         settings.Phone,
		"notifications": settings.Notifications,
	})
}

// UpdateAccountSettings updates the authenticated user's settings
func (h *AuthHandlers) UpdateAccountSettings(c *gin.Context) {
	email, exists := c.Get("user_email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req AccountSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	update := &domain.AccountUpdate{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Notifications:   req.Notifications,
		Password:        req.Password,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}

	if err := h.authSvc.UpdateAccountSettings(c.Request.Context(), email.(string), update); err != nil {
		h.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account settings updated"})
}

// writeBindingError converts binding failures into the per-field error shape
// the frontend expects. Non-validator failures stay a generic 400.
func writeBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   jsonFieldName(fe.Field()),
			Message: bindingMessage(fe),
		})
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

// jsonFieldName lower-camels the struct field to its json key
func jsonFieldName(structField string) string {
	return strings.ToLower(structField[:1]) + structField[1:]
}

func bindingMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Email":
		return "Valid email is required"
	case fe.Tag() == "min":
		return fmt.Sprintf("Password must be at least %s characters long", fe.Param())
	case fe.Field() == "FirstName":
		return "First name is required"
	case fe.Field() == "LastName":
		return "Last name is required"
	case fe.Field() == "Password":
		return "Password is required"
	case fe.Field() == "NewPassword":
		return "New password is required"
	case fe.Field() == "Token":
		return "Reset token is required"
	default:
		return fe.Field() + " is required"
	}
}

// writeAuthError maps service failures onto status/body pairs
func (h *AuthHandlers) writeAuthError(c *gin.Context, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, domain.ErrResetTokenInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired reset token"})
	case errors.Is(err, domain.ErrDeliveryFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send email"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
