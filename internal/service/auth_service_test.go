package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"mondict/internal/database"
	"mondict/internal/models"
	"mondict/internal/repository"
	"mondict/internal/security"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := security.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repository.NewUserRepository(db), repository.NewTokenRepository(db), tokens)
}

func TestAuthFlow(t *testing.T) {
	auth := setupAuthService(t)

	user, err := auth.Register("mya", "s3cret-pass", "mya@example.com", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("expected default role user, got %q", user.Role)
	}

	t.Run("duplicate username", func(t *testing.T) {
		_, err := auth.Register("mya", "other-pass", "other@example.com", "")
		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.Login("mya", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := auth.Login("nobody", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	pair, loggedIn, err := auth.Login("mya", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.UserID != user.UserID {
		t.Errorf("expected user id %d, got %d", user.UserID, loggedIn.UserID)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}

	t.Run("refresh", func(t *testing.T) {
		accessToken, err := auth.Refresh(pair.RefreshToken)
		if err != nil {
			t.Fatalf("Refresh failed: %v", err)
		}
		if accessToken == "" {
			t.Error("expected a new access token")
		}
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		_, err := auth.Refresh("not-a-token")
		if !errors.Is(err, ErrInvalidRefresh) {
			t.Errorf("expected ErrInvalidRefresh, got %v", err)
		}
	})

	t.Run("refresh after logout", func(t *testing.T) {
		if err := auth.Logout(user.UserID); err != nil {
			t.Fatalf("Logout failed: %v", err)
		}
		_, err := auth.Refresh(pair.RefreshToken)
		if !errors.Is(err, ErrInvalidRefresh) {
			t.Errorf("expected ErrInvalidRefresh after logout, got %v", err)
		}
	})
}

func TestLoginReplacesStoredRefreshToken(t *testing.T) {
	auth := setupAuthService(t)

	if _, err := auth.Register("aung", "p@ssword1", "aung@example.com", models.RoleEditor); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	first, _, err := auth.Login("aung", "p@ssword1")
	if err != nil {
		t.Fatalf("first Login failed: %v", err)
	}

	// Tokens embed issue timestamps at second resolution
	time.Sleep(1100 * time.Millisecond)

	second, _, err := auth.Login("aung", "p@ssword1")
	if err != nil {
		t.Fatalf("second Login failed: %v", err)
	}

	if _, err := auth.Refresh(first.RefreshToken); !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("expected the first refresh token to be revoked, got %v", err)
	}
	if _, err := auth.Refresh(second.RefreshToken); err != nil {
		t.Errorf("expected the second refresh token to work, got %v", err)
	}
}
