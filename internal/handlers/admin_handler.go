package handlers

import (
	"net/http"

	"mondict/internal/repository"
)

// AdminHandler serves the admin dashboard endpoints
type AdminHandler struct {
	wordRepo *repository.WordRepository
	userRepo *repository.UserRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(wordRepo *repository.WordRepository, userRepo *repository.UserRepository) *AdminHandler {
	return &AdminHandler{wordRepo: wordRepo, userRepo: userRepo}
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	totalWords, err := h.wordRepo.CountWords()
	if err != nil {
		respondError(w, "Failed to count words", err)
		return
	}
	totalDefinitions, err := h.wordRepo.CountDefinitions()
	if err != nil {
		respondError(w, "Failed to count definitions", err)
		return
	}
	totalUsers, err := h.userRepo.CountUsers()
	if err != nil {
		respondError(w, "Failed to count users", err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalWords:       totalWords,
		TotalDefinitions: totalDefinitions,
		TotalUsers:       totalUsers,
	})
}
