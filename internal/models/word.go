package models

import "time"

// Word represents a dictionary headword
type Word struct {
	WordID        int64     `json:"word_id"`
	Word          string    `json:"word"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	LanguageID    int64     `json:"language_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Definition represents one sense of a word. A word owns zero or more
// definitions, each with exactly one part of speech and an optional category.
type Definition struct {
	DefinitionID int64     `json:"definition_id"`
	WordID       int64     `json:"word_id"`
	LanguageID   int64     `json:"language_id"`
	PosID        int64     `json:"pos_id"`
	CategoryID   *int64    `json:"category_id"`
	Definition   string    `json:"definition"`
	Example      string    `json:"example,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Synonym represents a synonym attached to a word. Synonyms are replaced
// wholesale on update, never edited individually.
type Synonym struct {
	WordID     int64  `json:"word_id"`
	LanguageID int64  `json:"language_id"`
	Synonym    string `json:"synonym"`
}

// WordRecord is one row of the denormalized word_records view: a word with
// all of its definitions, parts of speech, categories and synonyms
// aggregated into parallel arrays. The aggregate fields hold either a
// decoded array or, when a column cannot be parsed, the raw value as read
// from the store.
type WordRecord struct {
	WordID         int64       `json:"word_id"`
	MonWord        string      `json:"mon_word"`
	Pronunciation  string      `json:"pronunciation"`
	WordLanguageID int64       `json:"word_language_id"`
	PosIDs         interface{} `json:"pos_ids"`
	PosENNames     interface{} `json:"pos_ENnames"`
	PosMMNames     interface{} `json:"pos_Mmnames"`
	DefinitionIDs  interface{} `json:"definition_ids"`
	Definitions    interface{} `json:"definitions"`
	Examples       interface{} `json:"examples"`
	CategoryIDs    interface{} `json:"category_id"`
	Synonyms       interface{} `json:"synonyms_text"`
}

// DefinitionInput is one definition entry in a create/update request.
// A nil DefinitionID means insert; a set one means update in place.
type DefinitionInput struct {
	DefinitionID *int64 `json:"definition_id,omitempty"`
	Definition   string `json:"definition_text"`
	Example      string `json:"example_text"`
	LanguageID   int64  `json:"definition_language_id"`
	PosID        int64  `json:"pos_id"`
	CategoryID   *int64 `json:"category_id"`
}

// WordInput is the payload for creating or updating a word with its
// definitions and synonyms
type WordInput struct {
	MonWord       string            `json:"mon_word"`
	Pronunciation string            `json:"pronunciation"`
	LanguageID    int64             `json:"word_language_id"`
	Definitions   []DefinitionInput `json:"definitions"`
	Synonyms      []string          `json:"synonyms"`
}

// Pagination describes the slice of a paginated result set
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	PageSize        int   `json:"pageSize"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// WordPage combines a page of word records with its pagination info
type WordPage struct {
	Data       []WordRecord `json:"data"`
	Pagination Pagination   `json:"pagination"`
}
