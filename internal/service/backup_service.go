package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"mondict/internal/database"
)

// BackupData represents the complete dictionary backup structure
type BackupData struct {
	Version        string             `json:"version"`
	ExportedAt     time.Time          `json:"exported_at"`
	Words          []WordBackup       `json:"words"`
	Definitions    []DefinitionBackup `json:"definitions"`
	Synonyms       []SynonymBackup    `json:"synonyms"`
	PartsOfSpeech  []PosBackup        `json:"parts_of_speech"`
	Categories     []CategoryBackup   `json:"categories"`
	Users          []UserBackup       `json:"users"`
}

// WordBackup represents a word row for backup
type WordBackup struct {
	WordID        int64   `json:"word_id"`
	Word          string  `json:"word"`
	Pronunciation *string `json:"pronunciation"`
	LanguageID    int64   `json:"language_id"`
}

// DefinitionBackup represents a definition row for backup
type DefinitionBackup struct {
	DefinitionID int64   `json:"definition_id"`
	WordID       int64   `json:"word_id"`
	LanguageID   int64   `json:"language_id"`
	PosID        int64   `json:"pos_id"`
	CategoryID   *int64  `json:"category_id"`
	Definition   string  `json:"definition"`
	Example      *string `json:"example"`
}

// SynonymBackup represents a synonym row for backup
type SynonymBackup struct {
	WordID     int64  `json:"word_id"`
	LanguageID int64  `json:"language_id"`
	Synonym    string `json:"synonym"`
}

// PosBackup represents a part-of-speech row for backup
type PosBackup struct {
	PosID  int64  `json:"pos_id"`
	ENName string `json:"pos_en_name"`
	MMName string `json:"pos_mm_name"`
}

// CategoryBackup represents a category row for backup
type CategoryBackup struct {
	CategoryID       int64  `json:"category_id"`
	Name             string `json:"name"`
	ParentCategoryID *int64 `json:"parent_category_id"`
	Level            int    `json:"level"`
}

// UserBackup represents a user row for backup
type UserBackup struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// BackupService exports and imports the dictionary tables as JSON
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes the full dictionary to a JSON file
func (s *BackupService) Export(outputPath string) error {
	backup := BackupData{
		Version:    "1",
		ExportedAt: time.Now(),
	}

	var err error
	if backup.Words, err = s.exportWords(); err != nil {
		return fmt.Errorf("failed to export words: %w", err)
	}
	if backup.Definitions, err = s.exportDefinitions(); err != nil {
		return fmt.Errorf("failed to export definitions: %w", err)
	}
	if backup.Synonyms, err = s.exportSynonyms(); err != nil {
		return fmt.Errorf("failed to export synonyms: %w", err)
	}
	if backup.PartsOfSpeech, err = s.exportPartsOfSpeech(); err != nil {
		return fmt.Errorf("failed to export parts of speech: %w", err)
	}
	if backup.Categories, err = s.exportCategories(); err != nil {
		return fmt.Errorf("failed to export categories: %w", err)
	}
	if backup.Users, err = s.exportUsers(); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported %d words, %d definitions, %d synonyms, %d users",
		len(backup.Words), len(backup.Definitions), len(backup.Synonyms), len(backup.Users))
	return nil
}

func (s *BackupService) exportWords() ([]WordBackup, error) {
	rows, err := s.db.Query("SELECT word_id, word, pronunciation, language_id FROM words ORDER BY word_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []WordBackup
	for rows.Next() {
		var w WordBackup
		var pronunciation sql.NullString
		if err := rows.Scan(&w.WordID, &w.Word, &pronunciation, &w.LanguageID); err != nil {
			return nil, err
		}
		if pronunciation.Valid {
			w.Pronunciation = &pronunciation.String
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

func (s *BackupService) exportDefinitions() ([]DefinitionBackup, error) {
	rows, err := s.db.Query(`SELECT definition_id, word_id, language_id, pos_id, category_id, definition, example
		FROM definitions ORDER BY definition_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DefinitionBackup
	for rows.Next() {
		var d DefinitionBackup
		var categoryID sql.NullInt64
		var example sql.NullString
		if err := rows.Scan(&d.DefinitionID, &d.WordID, &d.LanguageID, &d.PosID, &categoryID, &d.Definition, &example); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			d.CategoryID = &categoryID.Int64
		}
		if example.Valid {
			d.Example = &example.String
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (s *BackupService) exportSynonyms() ([]SynonymBackup, error) {
	rows, err := s.db.Query("SELECT word_id, language_id, synonym FROM synonyms ORDER BY word_id, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SynonymBackup
	for rows.Next() {
		var syn SynonymBackup
		if err := rows.Scan(&syn.WordID, &syn.LanguageID, &syn.Synonym); err != nil {
			return nil, err
		}
		result = append(result, syn)
	}
	return result, rows.Err()
}

func (s *BackupService) exportPartsOfSpeech() ([]PosBackup, error) {
	rows, err := s.db.Query("SELECT pos_id, pos_en_name, pos_mm_name FROM parts_of_speech ORDER BY pos_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PosBackup
	for rows.Next() {
		var p PosBackup
		if err := rows.Scan(&p.PosID, &p.ENName, &p.MMName); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *BackupService) exportCategories() ([]CategoryBackup, error) {
	rows, err := s.db.Query("SELECT category_id, name, parent_category_id, level FROM categories ORDER BY category_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CategoryBackup
	for rows.Next() {
		var c CategoryBackup
		var parentID sql.NullInt64
		if err := rows.Scan(&c.CategoryID, &c.Name, &parentID, &c.Level); err != nil {
			return nil, err
		}
		if parentID.Valid {
			c.ParentCategoryID = &parentID.Int64
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (s *BackupService) exportUsers() ([]UserBackup, error) {
	rows, err := s.db.Query("SELECT user_id, username, password_hash, email, role FROM users ORDER BY user_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []UserBackup
	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.UserID, &u.Username, &u.PasswordHash, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// Import loads a backup file into the database. With clear set, existing
// dictionary data is removed first.
func (s *BackupService) Import(inputPath string, clear bool) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	var backup BackupData
	if err := json.NewDecoder(file).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if clear {
		for _, table := range []string{"favorites", "synonyms", "definitions", "words", "categories", "parts_of_speech"} {
			if _, err = tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("failed to clear table %s: %w", table, err)
			}
		}
	}

	for _, p := range backup.PartsOfSpeech {
		if _, err = tx.Exec("INSERT INTO parts_of_speech (pos_id, pos_en_name, pos_mm_name) VALUES (?, ?, ?)",
			p.PosID, p.ENName, p.MMName); err != nil {
			return fmt.Errorf("failed to import part of speech %d: %w", p.PosID, err)
		}
	}
	for _, c := range backup.Categories {
		if _, err = tx.Exec("INSERT INTO categories (category_id, name, parent_category_id, level) VALUES (?, ?, ?, ?)",
			c.CategoryID, c.Name, c.ParentCategoryID, c.Level); err != nil {
			return fmt.Errorf("failed to import category %d: %w", c.CategoryID, err)
		}
	}
	for _, w := range backup.Words {
		if _, err = tx.Exec("INSERT INTO words (word_id, word, pronunciation, language_id) VALUES (?, ?, ?, ?)",
			w.WordID, w.Word, w.Pronunciation, w.LanguageID); err != nil {
			return fmt.Errorf("failed to import word %d: %w", w.WordID, err)
		}
	}
	for _, d := range backup.Definitions {
		if _, err = tx.Exec(`INSERT INTO definitions (definition_id, word_id, language_id, pos_id, category_id, definition, example)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.DefinitionID, d.WordID, d.LanguageID, d.PosID, d.CategoryID, d.Definition, d.Example); err != nil {
			return fmt.Errorf("failed to import definition %d: %w", d.DefinitionID, err)
		}
	}
	for _, syn := range backup.Synonyms {
		if _, err = tx.Exec("INSERT INTO synonyms (word_id, language_id, synonym) VALUES (?, ?, ?)",
			syn.WordID, syn.LanguageID, syn.Synonym); err != nil {
			return fmt.Errorf("failed to import synonym for word %d: %w", syn.WordID, err)
		}
	}
	for _, u := range backup.Users {
		if _, err = tx.Exec("INSERT INTO users (user_id, username, password_hash, email, role) VALUES (?, ?, ?, ?, ?)",
			u.UserID, u.Username, u.PasswordHash, u.Email, u.Role); err != nil {
			return fmt.Errorf("failed to import user %d: %w", u.UserID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log.Printf("Imported %d words, %d definitions, %d synonyms, %d users",
		len(backup.Words), len(backup.Definitions), len(backup.Synonyms), len(backup.Users))
	return nil
}
