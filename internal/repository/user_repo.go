package repository

import (
	"database/sql"
	"fmt"
	"time"

	"mondict/internal/database"
	"mondict/internal/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user into the database
func (r *UserRepository) CreateUser(username, passwordHash, email, role string) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, email, role)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, username, passwordHash, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := &models.User{
		UserID:       id,
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username, or nil if absent
func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT user_id, username, password_hash, email, role, created_at
		FROM users
		WHERE username = ?
	`
	user := &models.User{}
	err := r.db.QueryRow(query, username).Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID, or nil if absent
func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	query := `
		SELECT user_id, username, password_hash, email, role, created_at
		FROM users
		WHERE user_id = ?
	`
	user := &models.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// CountUsers returns the total number of users
func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
