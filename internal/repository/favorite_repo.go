package repository

import (
	"database/sql"
	"fmt"

	"mondict/internal/database"
	"mondict/internal/models"
)

// FavoriteRepository handles database operations for user favorites
type FavoriteRepository struct {
	db *database.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *database.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// GetFavorites retrieves all favorites for a user joined with word display
// fields
func (r *FavoriteRepository) GetFavorites(userID int64) ([]models.FavoriteWithWord, error) {
	query := `
		SELECT f.user_id, f.word_id, f.definition_id, f.notes, f.metadata,
			f.created_at, f.updated_at, w.word, w.pronunciation, w.language_id
		FROM favorites f
		INNER JOIN words w ON f.word_id = w.word_id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteWithWord
	for rows.Next() {
		var fav models.FavoriteWithWord
		var definitionID sql.NullInt64
		var notes, metadata, pronunciation sql.NullString
		if err := rows.Scan(
			&fav.UserID,
			&fav.WordID,
			&definitionID,
			&notes,
			&metadata,
			&fav.CreatedAt,
			&fav.UpdatedAt,
			&fav.Word,
			&pronunciation,
			&fav.LanguageID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		if definitionID.Valid {
			fav.DefinitionID = &definitionID.Int64
		}
		if notes.Valid {
			fav.Notes = notes.String
		}
		if metadata.Valid {
			fav.Metadata = []byte(metadata.String)
		}
		if pronunciation.Valid {
			fav.Pronunciation = pronunciation.String
		}
		favorites = append(favorites, fav)
	}

	return favorites, nil
}

// UpsertFavorite inserts a favorite or updates notes/metadata when the
// (user, word) pair already exists
func (r *FavoriteRepository) UpsertFavorite(userID, wordID int64, definitionID *int64, notes *string, metadata []byte) error {
	query := r.db.Dialect.UpsertFavoriteQuery()

	var metadataArg interface{}
	if metadata != nil {
		metadataArg = string(metadata)
	}

	_, err := r.db.Exec(query, userID, wordID, definitionID, notes, metadataArg)
	if err != nil {
		return fmt.Errorf("failed to upsert favorite: %w", err)
	}
	return nil
}

// DeleteFavorite removes a favorite; found is false when it did not exist
func (r *FavoriteRepository) DeleteFavorite(userID, wordID int64) (bool, error) {
	result, err := r.db.Exec("DELETE FROM favorites WHERE user_id = ? AND word_id = ?", userID, wordID)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// UpdateFavorite updates notes and metadata of an existing favorite;
// found is false when it did not exist
func (r *FavoriteRepository) UpdateFavorite(userID, wordID int64, notes *string, metadata []byte) (bool, error) {
	var metadataArg interface{}
	if metadata != nil {
		metadataArg = string(metadata)
	}

	result, err := r.db.Exec(
		"UPDATE favorites SET notes = ?, metadata = ?, updated_at = CURRENT_TIMESTAMP WHERE user_id = ? AND word_id = ?",
		notes, metadataArg, userID, wordID)
	if err != nil {
		return false, fmt.Errorf("failed to update favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}
	return affected > 0, nil
}
