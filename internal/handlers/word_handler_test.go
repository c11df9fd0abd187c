package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"mondict/internal/database"
	"mondict/internal/repository"
	"mondict/internal/service"
)

// setupWordMux wires a word handler over a fresh SQLite database with the
// public word routes registered
func setupWordMux(t *testing.T) *http.ServeMux {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	wordRepo := repository.NewWordRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	wordService := service.NewWordService(wordRepo, categoryRepo)
	wordHandler := NewWordHandler(wordService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/words/search", wordHandler.Search)
	mux.HandleFunc("GET /api/words/paginated-search", wordHandler.PaginatedSearch)
	mux.HandleFunc("GET /api/words/{id}", wordHandler.GetByID)
	mux.HandleFunc("POST /api/words", wordHandler.Create)
	mux.HandleFunc("DELETE /api/words/{id}", wordHandler.Delete)
	return mux
}

func TestWordHandlerLifecycle(t *testing.T) {
	mux := setupWordMux(t)

	createBody := `{
		"mon_word": "ဍုင်",
		"pronunciation": "dung",
		"word_language_id": 1,
		"definitions": [
			{"definition_text": "city", "definition_language_id": 2, "pos_id": 1},
			{"definition_text": "country", "definition_language_id": 2, "pos_id": 1}
		],
		"synonyms": ["town"]
	}`

	t.Run("create", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/words", strings.NewReader(createBody))
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
		}
		var resp mutationResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.WordID == 0 {
			t.Fatal("expected a word id")
		}
		if len(resp.DefinitionIDs) != 2 {
			t.Errorf("expected 2 definition ids, got %d", len(resp.DefinitionIDs))
		}
		if resp.Data == nil {
			t.Error("expected the created record in the response")
		}
	})

	t.Run("get by id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/words/1", nil)
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
	})

	t.Run("search finds the word", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/words/search?query="+"ဍုင်", nil)
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
		}
		var records []json.RawMessage
		if err := json.Unmarshal(recorder.Body.Bytes(), &records); err != nil {
			t.Fatalf("expected a JSON array, got %s", recorder.Body.String())
		}
		if len(records) != 1 {
			t.Errorf("expected 1 match, got %d", len(records))
		}
	})

	t.Run("search misses are 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/words/search?query=zzzzz", nil)
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", recorder.Code)
		}
	})

	t.Run("blank search is 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/words/search?query=++", nil)
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", recorder.Code)
		}
	})

	t.Run("delete reports definition count", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/words/1", nil)
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
		}
		var resp deleteResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.DefinitionsDeleted != 2 {
			t.Errorf("expected 2 deleted definitions, got %d", resp.DefinitionsDeleted)
		}
	})

	t.Run("delete again is 404", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/words/1", nil)
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", recorder.Code)
		}
	})
}

func TestPaginatedSearchEmptyFilter(t *testing.T) {
	mux := setupWordMux(t)

	req := httptest.NewRequest("GET", "/api/words/paginated-search", nil)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var resp struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("expected an empty page, got %d rows", len(resp.Data))
	}
	if resp.Pagination.TotalItems != 0 {
		t.Errorf("expected zero total items, got %d", resp.Pagination.TotalItems)
	}
}

func TestPaginatedSearchRejectsBadPosID(t *testing.T) {
	mux := setupWordMux(t)

	req := httptest.NewRequest("GET", "/api/words/paginated-search?posId=abc", nil)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", recorder.Code)
	}
}
