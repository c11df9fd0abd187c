package repository

import (
	"fmt"

	"mondict/internal/database"
	"mondict/internal/models"
)

// PosRepository handles reads of the part-of-speech reference data
type PosRepository struct {
	db *database.DB
}

// NewPosRepository creates a new part-of-speech repository
func NewPosRepository(db *database.DB) *PosRepository {
	return &PosRepository{db: db}
}

// GetAllPartsOfSpeech retrieves all parts of speech ordered by id
func (r *PosRepository) GetAllPartsOfSpeech() ([]models.PartOfSpeech, error) {
	query := `
		SELECT pos_id, pos_en_name, pos_mm_name
		FROM parts_of_speech
		ORDER BY pos_id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query parts of speech: %w", err)
	}
	defer rows.Close()

	var result []models.PartOfSpeech
	for rows.Next() {
		var pos models.PartOfSpeech
		if err := rows.Scan(&pos.PosID, &pos.ENName, &pos.MMName); err != nil {
			return nil, fmt.Errorf("failed to scan part of speech: %w", err)
		}
		result = append(result, pos)
	}

	return result, nil
}
