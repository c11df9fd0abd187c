package handlers

import (
	"encoding/json"

	"mondict/internal/models"
)

// registerRequest is the payload for POST /api/auth/register
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// loginRequest is the payload for POST /api/auth/login
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// refreshRequest is the payload for POST /api/auth/refresh-token
type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type authResponse struct {
	Message      string       `json:"message"`
	AccessToken  string       `json:"accessToken,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         *models.User `json:"user,omitempty"`
}

// addFavoriteRequest is the payload for POST /api/favorites
type addFavoriteRequest struct {
	WordID       int64           `json:"word_id"`
	DefinitionID *int64          `json:"definition_id"`
	Notes        *string         `json:"notes"`
	Metadata     json.RawMessage `json:"metadata"`
}

// updateFavoriteRequest is the payload for PATCH /api/favorites/{wordId}
type updateFavoriteRequest struct {
	Notes    *string         `json:"notes"`
	Metadata json.RawMessage `json:"metadata"`
}

// mutationResponse reports a successful word create or update
type mutationResponse struct {
	Message       string             `json:"message"`
	WordID        int64              `json:"word_id"`
	DefinitionIDs []int64            `json:"definition_ids"`
	Data          *models.WordRecord `json:"data,omitempty"`
}

// deleteResponse reports a successful word delete
type deleteResponse struct {
	Message            string `json:"message"`
	WordID             int64  `json:"word_id"`
	DefinitionsDeleted int64  `json:"definitions_deleted"`
}

// categoryPageResponse wraps a word page with the resolved category
type categoryPageResponse struct {
	Data         []models.WordRecord `json:"data"`
	Pagination   models.Pagination   `json:"pagination"`
	Category     *models.Category    `json:"category"`
	SearchQuery  string              `json:"searchQuery,omitempty"`
	SearchFields []string            `json:"searchFields,omitempty"`
}

// statsResponse reports aggregate admin counters
type statsResponse struct {
	TotalWords       int64 `json:"totalWords"`
	TotalDefinitions int64 `json:"totalDefinitions"`
	TotalUsers       int64 `json:"totalUsers"`
}
