package models

import (
	"encoding/json"
	"time"
)

// Favorite links a user to a word, optionally pinned to one of its
// definitions, with free-form notes and an opaque metadata blob.
// Upserted on (user_id, word_id).
type Favorite struct {
	UserID       int64           `json:"user_id"`
	WordID       int64           `json:"word_id"`
	DefinitionID *int64          `json:"definition_id"`
	Notes        string          `json:"notes,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// FavoriteWithWord joins a favorite with its word's display fields
type FavoriteWithWord struct {
	Favorite
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation,omitempty"`
	LanguageID    int64  `json:"language_id"`
}
