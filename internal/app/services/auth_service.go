package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/app/repositories"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/auth"
	"github.com/enrolldesk/enrolldesk/internal/pkg/email"
	"github.com/enrolldesk/enrolldesk/internal/pkg/validation"
)

// passwordResetTokenTTL limits how long a reset link stays valid.
const passwordResetTokenTTL = 1 * time.Hour

// AuthService defines the authentication operations exposed to controllers
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error)
}

type authService struct {
	userRepo     repositories.IUserRepository
	tokenRepo    repositories.ITokenRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
	}
}

// validateEmail validates an email address
func (s *authService) validateEmail(emailAddr string) error {
	if strings.TrimSpace(emailAddr) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.CompiledPatterns.Email.MatchString(strings.ToLower(emailAddr)) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if password meets requirements
func (s *authService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	hasLetter := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}

	hasDigit := false
	for _, char := range password {
		if unicode.IsDigit(char) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// validateRegistration checks the profile fields that binding tags cannot
// express, notably the consultancy rule tied to the account type.
func (s *authService) validateRegistration(req *dto.RegisterRequest) error {
	switch req.UserType {
	case models.UserTypeConsultant:
		if strings.TrimSpace(req.ConsultancyName) == "" {
			return fmt.Errorf("%w: consultancy name is required for consultants", apperrors.ErrValidationFailed)
		}
	case models.UserTypeFreelance:
		// Accepted; consultancy name is force-blanked below
	default:
		return fmt.Errorf("%w: unknown user type %q", apperrors.ErrValidationFailed, req.UserType)
	}

	if !validation.CompiledPatterns.TenDigit.MatchString(req.Phone) {
		return fmt.Errorf("%w: phone must be a 10-digit number", apperrors.ErrValidationFailed)
	}

	if !validation.CompiledPatterns.Pincode.MatchString(req.Pincode) {
		return fmt.Errorf("%w: pincode must be a 6-digit number", apperrors.ErrValidationFailed)
	}

	return nil
}

// Register creates a new staff account and signs it in
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	// Only Consultants carry a consultancy name
	consultancyName := strings.TrimSpace(req.ConsultancyName)
	if req.UserType != models.UserTypeConsultant {
		consultancyName = ""
	}

	user := &models.User{
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Password:        hashedPassword,
		FullName:        strings.TrimSpace(req.FullName),
		Phone:           req.Phone,
		UserType:        req.UserType,
		ConsultancyName: consultancyName,
		Address:         strings.TrimSpace(req.Address),
		City:            strings.TrimSpace(req.City),
		State:           strings.TrimSpace(req.State),
		Pincode:         req.Pincode,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("userType", string(user.UserType)).Msg("Staff account registered")

	return s.generateTokenResponse(ctx, user)
}

// Login authenticates a staff account
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	if req.Password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Could not update last login time")
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken creates a new token pair using a refresh token
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, expiryDate, isRevoked, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrTokenNotFound, apperrors.ErrTokenExpired, apperrors.ErrTokenRevoked) {
			return nil, err
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	if expiryDate.Before(time.Now()) {
		_ = s.tokenRepo.RevokeToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	if isRevoked {
		return nil, apperrors.ErrTokenRevoked
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	// Rotation: the presented token is dead once exchanged
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes the presented refresh token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return apperrors.ErrTokenInvalid
	}

	err := s.tokenRepo.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}

// ForgotPassword issues a reset token and emails it to the account owner.
// Unknown addresses are not reported back to the caller.
func (s *authService) ForgotPassword(ctx context.Context, emailAddr string) error {
	if err := s.validateEmail(emailAddr); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info().Str("email", emailAddr).Msg("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("error retrieving user: %w", err)
	}

	token := uuid.New().String()
	expiry := time.Now().Add(passwordResetTokenTTL)

	if err := s.tokenRepo.CreatePasswordResetToken(ctx, token, user.ID, expiry); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.FullName, token); err != nil {
		return fmt.Errorf("error sending reset email: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token and replaces the password
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.ErrInvalidPasswordResetToken
	}

	if err := s.validatePassword(newPassword); err != nil {
		return err
	}

	userID, err := s.tokenRepo.ConsumePasswordResetToken(ctx, token)
	if err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("password hashing error: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	// Force re-login everywhere after a reset
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Could not revoke existing sessions after password reset")
	}

	return nil
}

// GetProfile retrieves the resolved staff profile
func (s *authService) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}

	return &dto.UserProfile{
		ID:              user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		Phone:           user.Phone,
		UserType:        string(user.UserType),
		ConsultancyName: user.ConsultancyName,
		Address:         user.Address,
		City:            user.City,
		State:           user.State,
		Pincode:         user.Pincode,
	}, nil
}

// generateTokenResponse creates token response
func (s *authService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
