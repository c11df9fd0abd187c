package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mondict/internal/service"
	"mondict/internal/validation"
)

// writeJSON encodes v to the response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError maps a service error to an HTTP status and JSON body
func respondError(w http.ResponseWriter, message string, err error) {
	var validationErr validation.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": validationErr.Message,
			"field":   validationErr.Field,
		})
	case errors.Is(err, service.ErrWordNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrNoMatches),
		errors.Is(err, service.ErrFavoriteNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, map[string]string{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidRefresh):
		writeJSON(w, http.StatusForbidden, map[string]string{"message": err.Error()})
	default:
		log.Printf("%s: %v", message, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": message,
			"error":   err.Error(),
		})
	}
}

// respondBadRequest reports a malformed request body or parameter
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"message": message})
}

func parseID(r *http.Request, name string) (int64, error) {
	return parseInt64(r.PathValue(name))
}
