package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"mondict/internal/models"
	"mondict/internal/service"
	"mondict/internal/validation"
)

// WordHandler handles dictionary lookup and mutation HTTP requests
type WordHandler struct {
	wordService *service.WordService
}

// NewWordHandler creates a new word handler
func NewWordHandler(wordService *service.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// Search handles GET /api/words/search
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	records, err := h.wordService.SearchWords(query)
	if err != nil {
		respondError(w, "Search failed", err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// PaginatedSearch handles GET /api/words/paginated-search
func (h *WordHandler) PaginatedSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, pageSize := pageParams(r)

	var posID int64
	if raw := r.URL.Query().Get("posId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondBadRequest(w, "posId must be an integer")
			return
		}
		posID = parsed
	}

	result, err := h.wordService.PaginatedSearchWords(query, page, pageSize, posID)
	if err != nil {
		respondError(w, "Search failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Random handles GET /api/words/random
func (h *WordHandler) Random(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondBadRequest(w, "count must be a positive integer")
			return
		}
		count = parsed
	}

	records, err := h.wordService.GetRandomWords(count)
	if err != nil {
		respondError(w, "Failed to pick random words", err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// WordOfTheDay handles GET /api/words/word-of-the-day
func (h *WordHandler) WordOfTheDay(w http.ResponseWriter, r *http.Request) {
	record, err := h.wordService.GetWordOfTheDay()
	if err != nil {
		respondError(w, "Failed to pick word of the day", err)
		return
	}
	if record == nil {
		// Empty store: an empty object rather than null
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// ByCategory handles GET /api/words/categories/{categoryId}
func (h *WordHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		respondBadRequest(w, "Invalid category ID")
		return
	}
	page, pageSize := pageParams(r)

	result, category, err := h.wordService.GetWordsByCategory(categoryID, page, pageSize)
	if err != nil {
		respondError(w, "Failed to list category words", err)
		return
	}

	writeJSON(w, http.StatusOK, categoryPageResponse{
		Data:       result.Data,
		Pagination: result.Pagination,
		Category:   category,
	})
}

// SearchInCategory handles GET /api/words/categories/{categoryId}/search
func (h *WordHandler) SearchInCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		respondBadRequest(w, "Invalid category ID")
		return
	}
	query := r.URL.Query().Get("query")
	page, pageSize := pageParams(r)
	fields := searchFieldParams(r)

	result, category, err := h.wordService.SearchWordsInCategory(categoryID, query, page, pageSize, fields)
	if err != nil {
		respondError(w, "Category search failed", err)
		return
	}

	writeJSON(w, http.StatusOK, categoryPageResponse{
		Data:         result.Data,
		Pagination:   result.Pagination,
		Category:     category,
		SearchQuery:  query,
		SearchFields: fields,
	})
}

// GetByID handles GET /api/words/{id}
func (h *WordHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	wordID, err := parseID(r, "id")
	if err != nil {
		respondBadRequest(w, "Invalid word ID")
		return
	}

	record, err := h.wordService.GetWordByID(wordID)
	if err != nil {
		respondError(w, "Failed to load word", err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Create handles POST /api/words
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.WordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	wordID, definitionIDs, record, err := h.wordService.AddWord(&input)
	if err != nil {
		respondError(w, "Failed to create word", err)
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse{
		Message:       "Word created successfully",
		WordID:        wordID,
		DefinitionIDs: definitionIDs,
		Data:          record,
	})
}

// Update handles PUT /api/words/{id}
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	wordID, err := parseID(r, "id")
	if err != nil {
		respondBadRequest(w, "Invalid word ID")
		return
	}

	var input models.WordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	definitionIDs, record, err := h.wordService.UpdateWord(wordID, &input)
	if err != nil {
		respondError(w, "Failed to update word", err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{
		Message:       "Word updated successfully",
		WordID:        wordID,
		DefinitionIDs: definitionIDs,
		Data:          record,
	})
}

// Delete handles DELETE /api/words/{id}
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	wordID, err := parseID(r, "id")
	if err != nil {
		respondBadRequest(w, "Invalid word ID")
		return
	}

	definitionsDeleted, err := h.wordService.DeleteWord(wordID)
	if err != nil {
		respondError(w, "Failed to delete word", err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{
		Message:            "Word deleted successfully",
		WordID:             wordID,
		DefinitionsDeleted: definitionsDeleted,
	})
}

// pageParams reads page and pageSize query parameters; missing or
// malformed values fall back to the service defaults
func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	return page, pageSize
}

// searchFieldParams reads the comma separated searchFields query parameter
func searchFieldParams(r *http.Request) []string {
	raw := r.URL.Query().Get("searchFields")
	if raw == "" {
		return []string{validation.SearchFieldWord, validation.SearchFieldDefinitions}
	}
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
