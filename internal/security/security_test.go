package security

import (
	"strings"
	"testing"
	"time"

	"mondict/internal/models"
)

func TestHashPassword(t *testing.T) {
	password := "correct-horse-battery"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "" {
		t.Error("HashPassword() returned empty string")
	}

	if hash == password {
		t.Error("HashPassword() returned unhashed password")
	}

	// Hashing the same password again must produce a different hash (salt)
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == hash2 {
		t.Error("HashPassword() should produce different hashes due to salt")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "correct-horse-battery"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword(password, hash) {
		t.Error("CheckPassword() should accept the original password")
	}

	if CheckPassword("wrong-password", hash) {
		t.Error("CheckPassword() should reject a wrong password")
	}
}

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	user := &models.User{UserID: 42, Username: "editor1", Role: models.RoleEditor}

	t.Run("IssueAndVerify", func(t *testing.T) {
		token, err := manager.IssueAccessToken(user)
		if err != nil {
			t.Fatalf("IssueAccessToken() error = %v", err)
		}

		principal, err := manager.Verify(token)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if principal.UserID != 42 || principal.Username != "editor1" || principal.Role != models.RoleEditor {
			t.Errorf("Verify() = %+v, want claims of the issued user", principal)
		}
	})

	t.Run("RejectsTampered", func(t *testing.T) {
		token, err := manager.IssueAccessToken(user)
		if err != nil {
			t.Fatalf("IssueAccessToken() error = %v", err)
		}

		tampered := token[:len(token)-2] + "xx"
		if _, err := manager.Verify(tampered); err == nil {
			t.Error("Verify() should reject a tampered token")
		}
	})

	t.Run("RejectsWrongSecret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour, 24*time.Hour)
		token, err := other.IssueAccessToken(user)
		if err != nil {
			t.Fatalf("IssueAccessToken() error = %v", err)
		}
		if _, err := manager.Verify(token); err == nil {
			t.Error("Verify() should reject a token signed with another secret")
		}
	})

	t.Run("RejectsExpired", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -time.Minute, 24*time.Hour)
		token, err := expired.IssueAccessToken(user)
		if err != nil {
			t.Fatalf("IssueAccessToken() error = %v", err)
		}
		if _, err := manager.Verify(token); err == nil {
			t.Error("Verify() should reject an expired token")
		}
	})

	t.Run("TokenLooksLikeJWT", func(t *testing.T) {
		token, err := manager.IssueRefreshToken(user)
		if err != nil {
			t.Fatalf("IssueRefreshToken() error = %v", err)
		}
		if strings.Count(token, ".") != 2 {
			t.Errorf("token %q is not a three-part JWT", token)
		}
	})
}
