package service

import (
	"errors"
	"fmt"
	"time"

	"mondict/internal/models"
	"mondict/internal/repository"
	"mondict/internal/security"
	"mondict/internal/validation"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

// TokenPair is an issued access/refresh token pair
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, login and refresh-token rotation.
// Refresh tokens are persisted through a TokenStore so sessions survive
// process restarts.
type AuthService struct {
	userRepo   *repository.UserRepository
	tokenStore repository.TokenStore
	tokens     *security.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, tokenStore repository.TokenStore, tokens *security.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		tokens:     tokens,
	}
}

// Register creates a new user account. The role defaults to "user" when
// not supplied.
func (s *AuthService) Register(username, password, email, role string) (*models.User, error) {
	if err := validation.ValidateRegistration(username, password, email); err != nil {
		return nil, err
	}
	if role == "" {
		role = models.RoleUser
	}

	existing, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(username, passwordHash, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and issues an access/refresh token pair,
// persisting the refresh token
func (s *AuthService) Login(username, password string) (*TokenPair, *models.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.tokens.RefreshTTL())
	if err := s.tokenStore.SaveRefreshToken(user.UserID, refreshToken, expiresAt); err != nil {
		return nil, nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, user, nil
}

// Refresh verifies a refresh token against its stored counterpart and
// issues a fresh access token
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	principal, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return "", ErrInvalidRefresh
	}

	stored, err := s.tokenStore.GetRefreshToken(principal.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to load stored refresh token: %w", err)
	}
	if stored == nil || stored.Token != refreshToken || stored.IsExpired() {
		return "", ErrInvalidRefresh
	}

	user := &models.User{
		UserID:   principal.UserID,
		Username: principal.Username,
		Role:     principal.Role,
	}
	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a user's stored refresh token
func (s *AuthService) Logout(userID int64) error {
	if err := s.tokenStore.DeleteRefreshToken(userID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// CleanupExpiredTokens removes expired refresh tokens, run periodically
// by the server
func (s *AuthService) CleanupExpiredTokens() error {
	return s.tokenStore.DeleteExpiredTokens()
}
