package database

import (
	"path/filepath"
	"testing"
)

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test_integration.db")

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Tables created by migrations
	tables := []string{"words", "definitions", "synonyms", "parts_of_speech", "categories", "users", "favorites", "refresh_tokens"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// The denormalized projection
	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='view' AND name='word_records'").Scan(&name)
	if err != nil {
		t.Errorf("View word_records not found: %v", err)
	}

	// Reference data seeded
	var posCount int64
	if err := db.QueryRow("SELECT COUNT(*) FROM parts_of_speech").Scan(&posCount); err != nil {
		t.Fatalf("Failed to count parts of speech: %v", err)
	}
	if posCount == 0 {
		t.Error("Expected seeded parts of speech")
	}
}

// TestMigrationsAreIdempotent verifies that running migrations twice does
// not fail or duplicate data
func TestMigrationsAreIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test_idempotent.db")

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("First migration run failed: %v", err)
	}

	var posBefore int64
	if err := db.QueryRow("SELECT COUNT(*) FROM parts_of_speech").Scan(&posBefore); err != nil {
		t.Fatalf("Failed to count parts of speech: %v", err)
	}

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var posAfter int64
	if err := db.QueryRow("SELECT COUNT(*) FROM parts_of_speech").Scan(&posAfter); err != nil {
		t.Fatalf("Failed to count parts of speech: %v", err)
	}
	if posBefore != posAfter {
		t.Errorf("Reference data duplicated: %d before, %d after", posBefore, posAfter)
	}
}
