package handlers

import (
	"net/http"

	"mondict/internal/repository"
)

// ReferenceHandler serves the parts-of-speech and category reference data
type ReferenceHandler struct {
	posRepo      *repository.PosRepository
	categoryRepo *repository.CategoryRepository
}

// NewReferenceHandler creates a new reference data handler
func NewReferenceHandler(posRepo *repository.PosRepository, categoryRepo *repository.CategoryRepository) *ReferenceHandler {
	return &ReferenceHandler{posRepo: posRepo, categoryRepo: categoryRepo}
}

// ListPartsOfSpeech handles GET /api/pos
func (h *ReferenceHandler) ListPartsOfSpeech(w http.ResponseWriter, r *http.Request) {
	pos, err := h.posRepo.GetAllPartsOfSpeech()
	if err != nil {
		respondError(w, "Failed to list parts of speech", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": pos})
}

// ListCategories handles GET /api/categories
func (h *ReferenceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAllCategories()
	if err != nil {
		respondError(w, "Failed to list categories", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": categories})
}
