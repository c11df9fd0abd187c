package models

import "time"

// User roles
const (
	RoleUser   = "user"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// User represents an account in the system
type User struct {
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanEditWords reports whether the user's role permits word mutations
func (u *User) CanEditWords() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

// Principal is the authenticated caller's identity attached to a request,
// as carried in the access token claims
type Principal struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RefreshToken is a persisted refresh token for a user. One row per user;
// issuing a new token replaces the previous one.
type RefreshToken struct {
	TokenID   string    `json:"token_id"`
	UserID    int64     `json:"user_id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired checks if the refresh token has expired
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
