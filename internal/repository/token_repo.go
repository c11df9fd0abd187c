package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mondict/internal/database"
	"mondict/internal/models"
)

// TokenStore is the persistence contract for refresh tokens, so session
// state survives process restarts and scales across instances
type TokenStore interface {
	SaveRefreshToken(userID int64, token string, expiresAt time.Time) error
	GetRefreshToken(userID int64) (*models.RefreshToken, error)
	DeleteRefreshToken(userID int64) error
	DeleteExpiredTokens() error
}

// TokenRepository is the SQL-backed TokenStore. One token per user; saving
// replaces the previous one.
type TokenRepository struct {
	db *database.DB
}

// NewTokenRepository creates a new refresh-token repository
func NewTokenRepository(db *database.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// SaveRefreshToken stores a user's refresh token, replacing any existing one
func (r *TokenRepository) SaveRefreshToken(userID int64, token string, expiresAt time.Time) error {
	if _, err := r.db.Exec("DELETE FROM refresh_tokens WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to clear old refresh token: %w", err)
	}

	_, err := r.db.Exec(
		"INSERT INTO refresh_tokens (token_id, user_id, token, expires_at) VALUES (?, ?, ?, ?)",
		uuid.New().String(), userID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken retrieves a user's stored refresh token, or nil if none
func (r *TokenRepository) GetRefreshToken(userID int64) (*models.RefreshToken, error) {
	query := `
		SELECT token_id, user_id, token, expires_at, created_at
		FROM refresh_tokens
		WHERE user_id = ?
	`
	rt := &models.RefreshToken{}
	err := r.db.QueryRow(query, userID).Scan(
		&rt.TokenID,
		&rt.UserID,
		&rt.Token,
		&rt.ExpiresAt,
		&rt.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return rt, nil
}

// DeleteRefreshToken revokes a user's refresh token
func (r *TokenRepository) DeleteRefreshToken(userID int64) error {
	_, err := r.db.Exec("DELETE FROM refresh_tokens WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// DeleteExpiredTokens removes all expired refresh tokens
func (r *TokenRepository) DeleteExpiredTokens() error {
	_, err := r.db.Exec("DELETE FROM refresh_tokens WHERE expires_at < ?", time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return nil
}
