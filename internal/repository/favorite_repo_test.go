package repository

import (
	"testing"

	"mondict/internal/database"
)

func seedFavoriteFixtures(t *testing.T, db *database.DB) (userID, wordID int64) {
	t.Helper()

	userRepo := NewUserRepository(db)
	user, err := userRepo.CreateUser("mya", "not-a-real-hash", "mya@example.com", "user")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	wordRepo := NewWordRepository(db)
	wordID, _, err = wordRepo.CreateWord(simpleWord("star", "a burning sphere"))
	if err != nil {
		t.Fatalf("CreateWord failed: %v", err)
	}
	return user.UserID, wordID
}

func TestFavoriteLifecycle(t *testing.T) {
	db := setupDB(t)
	repo := NewFavoriteRepository(db)
	userID, wordID := seedFavoriteFixtures(t, db)

	notes := "learn this one"
	if err := repo.UpsertFavorite(userID, wordID, nil, &notes, []byte(`{"color":"gold"}`)); err != nil {
		t.Fatalf("UpsertFavorite failed: %v", err)
	}

	favorites, err := repo.GetFavorites(userID)
	if err != nil {
		t.Fatalf("GetFavorites failed: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favorites))
	}
	if favorites[0].Word != "star" {
		t.Errorf("expected joined word star, got %q", favorites[0].Word)
	}
	if favorites[0].Notes != "learn this one" {
		t.Errorf("expected notes, got %q", favorites[0].Notes)
	}

	t.Run("upsert replaces instead of duplicating", func(t *testing.T) {
		updated := "changed my mind"
		if err := repo.UpsertFavorite(userID, wordID, nil, &updated, nil); err != nil {
			t.Fatalf("second UpsertFavorite failed: %v", err)
		}
		favorites, err := repo.GetFavorites(userID)
		if err != nil {
			t.Fatalf("GetFavorites failed: %v", err)
		}
		if len(favorites) != 1 {
			t.Fatalf("expected 1 favorite after upsert, got %d", len(favorites))
		}
		if favorites[0].Notes != "changed my mind" {
			t.Errorf("expected updated notes, got %q", favorites[0].Notes)
		}
	})

	t.Run("update", func(t *testing.T) {
		notes := "final notes"
		found, err := repo.UpdateFavorite(userID, wordID, &notes, nil)
		if err != nil {
			t.Fatalf("UpdateFavorite failed: %v", err)
		}
		if !found {
			t.Error("expected the favorite to be found")
		}

		found, err = repo.UpdateFavorite(userID, 9999, &notes, nil)
		if err != nil {
			t.Fatalf("UpdateFavorite on missing row failed: %v", err)
		}
		if found {
			t.Error("expected found to be false for a missing favorite")
		}
	})

	t.Run("delete", func(t *testing.T) {
		found, err := repo.DeleteFavorite(userID, wordID)
		if err != nil {
			t.Fatalf("DeleteFavorite failed: %v", err)
		}
		if !found {
			t.Error("expected the favorite to be found")
		}

		found, err = repo.DeleteFavorite(userID, wordID)
		if err != nil {
			t.Fatalf("second DeleteFavorite failed: %v", err)
		}
		if found {
			t.Error("expected found to be false on the second delete")
		}
	})
}
