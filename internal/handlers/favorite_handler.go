package handlers

import (
	"encoding/json"
	"net/http"

	"mondict/internal/service"
)

// FavoriteHandler handles favorite word HTTP requests
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List handles GET /api/favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	principal := GetPrincipalFromContext(r.Context())

	favorites, err := h.favoriteService.GetFavorites(principal.UserID)
	if err != nil {
		respondError(w, "Failed to list favorites", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": favorites})
}

// Add handles POST /api/favorites
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	principal := GetPrincipalFromContext(r.Context())

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	if err := h.favoriteService.AddFavorite(principal.UserID, req.WordID, req.DefinitionID, req.Notes, req.Metadata); err != nil {
		respondError(w, "Failed to save favorite", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Favorite saved"})
}

// Remove handles DELETE /api/favorites/{wordId}
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	principal := GetPrincipalFromContext(r.Context())

	wordID, err := parseID(r, "wordId")
	if err != nil {
		respondBadRequest(w, "Invalid word ID")
		return
	}

	if err := h.favoriteService.RemoveFavorite(principal.UserID, wordID); err != nil {
		respondError(w, "Failed to remove favorite", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Favorite removed"})
}

// Update handles PATCH /api/favorites/{wordId}
func (h *FavoriteHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal := GetPrincipalFromContext(r.Context())

	wordID, err := parseID(r, "wordId")
	if err != nil {
		respondBadRequest(w, "Invalid word ID")
		return
	}

	var req updateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request body")
		return
	}

	if err := h.favoriteService.UpdateFavorite(principal.UserID, wordID, req.Notes, req.Metadata); err != nil {
		respondError(w, "Failed to update favorite", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Favorite updated"})
}
