package dto

import "github.com/enrolldesk/enrolldesk/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterRequest represents staff sign-up data. ConsultancyName is required
// for Consultants and force-blanked for everyone else.
type RegisterRequest struct {
	FullName        string          `json:"fullName" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	Phone           string          `json:"phone" binding:"required,len=10,numeric"`
	Password        string          `json:"password" binding:"required,min=8"`
	UserType        models.UserType `json:"userType" binding:"required"`
	ConsultancyName string          `json:"consultancyName"`
	Address         string          `json:"address" binding:"required"`
	City            string          `json:"city" binding:"required"`
	State           string          `json:"state" binding:"required"`
	Pincode         string          `json:"pincode" binding:"required,len=6,numeric"`
}

// ForgotPasswordRequest asks for a password reset email
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a password reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// LogoutRequest revokes a refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserProfile represents the resolved actor profile consumed by the
// submission workflow's reference stamping.
type UserProfile struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	UserType        string `json:"userType"`
	ConsultancyName string `json:"consultancyName,omitempty"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Pincode         string `json:"pincode"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  interface{}   `json:"user"`
}
