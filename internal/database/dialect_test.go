package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if dialect.DriverName() != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", dialect.DriverName())
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if dialect.MigrationsSubdir() != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", dialect.MigrationsSubdir())
		}
	})

	t.Run("RewriteQueryIsIdentity", func(t *testing.T) {
		query := "SELECT * FROM words WHERE word_id = ?"
		if dialect.RewriteQuery(query) != query {
			t.Error("SQLite queries should not be rewritten")
		}
	})

	t.Run("DSNEnforcesForeignKeys", func(t *testing.T) {
		dsn := dialect.DSN(DialectConfig{Path: "test.db"})
		if !strings.Contains(dsn, "_foreign_keys=on") {
			t.Errorf("DSN %q should enable foreign keys", dsn)
		}
	})

	t.Run("JSONGroupArray", func(t *testing.T) {
		got := dialect.JSONGroupArray("d.pos_id")
		if got != "json_group_array(d.pos_id)" {
			t.Errorf("JSONGroupArray() = %v", got)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if dialect.DriverName() != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", dialect.DriverName())
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if dialect.MigrationsSubdir() != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", dialect.MigrationsSubdir())
		}
	})

	t.Run("RewriteQueryNumbersPlaceholders", func(t *testing.T) {
		got := dialect.RewriteQuery("INSERT INTO words (word, pronunciation, language_id) VALUES (?, ?, ?)")
		want := "INSERT INTO words (word, pronunciation, language_id) VALUES ($1, $2, $3)"
		if got != want {
			t.Errorf("RewriteQuery() = %v, want %v", got, want)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if dialect.DriverName() != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", dialect.DriverName())
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if dialect.MigrationsSubdir() != "mysql" {
			t.Errorf("MigrationsSubdir() = %v, want mysql", dialect.MigrationsSubdir())
		}
	})

	t.Run("JSONGroupArray", func(t *testing.T) {
		got := dialect.JSONGroupArray("d.pos_id")
		if got != "JSON_ARRAYAGG(d.pos_id)" {
			t.Errorf("JSONGroupArray() = %v", got)
		}
	})
}

func TestReturningColumn(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "words", query: "INSERT INTO words (word) VALUES ($1)", expected: "word_id"},
		{name: "definitions", query: "INSERT INTO definitions (word_id) VALUES ($1)", expected: "definition_id"},
		{name: "users", query: "INSERT INTO users (username) VALUES ($1)", expected: "user_id"},
		{name: "categories", query: "INSERT INTO categories (name) VALUES ($1)", expected: "category_id"},
		{name: "parts of speech", query: "INSERT INTO parts_of_speech (pos_en_name) VALUES ($1)", expected: "pos_id"},
		{name: "unknown table", query: "INSERT INTO audit_log (entry) VALUES ($1)", expected: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := returningColumn(tt.query); got != tt.expected {
				t.Errorf("returningColumn() = %v, want %v", got, tt.expected)
			}
		})
	}
}
