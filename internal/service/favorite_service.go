package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"mondict/internal/models"
	"mondict/internal/repository"
	"mondict/internal/validation"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteService handles a user's favorite words
type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// GetFavorites lists a user's favorites with word display fields
func (s *FavoriteService) GetFavorites(userID int64) ([]models.FavoriteWithWord, error) {
	favorites, err := s.favoriteRepo.GetFavorites(userID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.FavoriteWithWord{}
	}
	return favorites, nil
}

// AddFavorite upserts a favorite for (user, word); notes and metadata are
// replaced when the pair already exists
func (s *FavoriteService) AddFavorite(userID, wordID int64, definitionID *int64, notes *string, metadata json.RawMessage) error {
	if wordID <= 0 {
		return validation.ValidationError{Field: "word_id", Message: "word_id is required"}
	}
	if err := s.favoriteRepo.UpsertFavorite(userID, wordID, definitionID, notes, metadata); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes a favorite
func (s *FavoriteService) RemoveFavorite(userID, wordID int64) error {
	found, err := s.favoriteRepo.DeleteFavorite(userID, wordID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFavoriteNotFound
	}
	return nil
}

// UpdateFavorite updates notes/metadata of an existing favorite
func (s *FavoriteService) UpdateFavorite(userID, wordID int64, notes *string, metadata json.RawMessage) error {
	found, err := s.favoriteRepo.UpdateFavorite(userID, wordID, notes, metadata)
	if err != nil {
		return err
	}
	if !found {
		return ErrFavoriteNotFound
	}
	return nil
}
