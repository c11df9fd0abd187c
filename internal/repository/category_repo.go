package repository

import (
	"database/sql"
	"fmt"

	"mondict/internal/database"
	"mondict/internal/models"
)

// CategoryRepository handles reads of the category reference data
type CategoryRepository struct {
	db *database.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *database.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetCategoryByID retrieves a category by ID, or nil if absent
func (r *CategoryRepository) GetCategoryByID(categoryID int64) (*models.Category, error) {
	query := `
		SELECT category_id, name, parent_category_id, level
		FROM categories
		WHERE category_id = ?
	`
	category := &models.Category{}
	var parentID sql.NullInt64
	err := r.db.QueryRow(query, categoryID).Scan(
		&category.CategoryID,
		&category.Name,
		&parentID,
		&category.Level,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if parentID.Valid {
		category.ParentCategoryID = &parentID.Int64
	}

	return category, nil
}

// GetAllCategories retrieves all categories ordered by level then name
func (r *CategoryRepository) GetAllCategories() ([]models.Category, error) {
	query := `
		SELECT category_id, name, parent_category_id, level
		FROM categories
		ORDER BY level ASC, name ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		var parentID sql.NullInt64
		if err := rows.Scan(
			&category.CategoryID,
			&category.Name,
			&parentID,
			&category.Level,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if parentID.Valid {
			category.ParentCategoryID = &parentID.Int64
		}
		categories = append(categories, category)
	}

	return categories, nil
}
