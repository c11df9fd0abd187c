package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"mondict/internal/service"
	"mondict/internal/validation"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "word not found", err: service.ErrWordNotFound, status: 404},
		{name: "category not found", err: service.ErrCategoryNotFound, status: 404},
		{name: "no matches", err: service.ErrNoMatches, status: 404},
		{name: "favorite not found", err: service.ErrFavoriteNotFound, status: 404},
		{name: "username taken", err: service.ErrUsernameTaken, status: 409},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, status: 401},
		{name: "invalid refresh token", err: service.ErrInvalidRefresh, status: 403},
		{name: "validation error", err: validation.ValidationError{Field: "mon_word", Message: "required"}, status: 400},
		{name: "unexpected error", err: errors.New("boom"), status: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respondError(recorder, "Operation failed", tt.err)
			if recorder.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, recorder.Code)
			}
			if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %q", ct)
			}
		})
	}
}

func TestRespondErrorSurfacesInternalDetail(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondError(recorder, "Operation failed", errors.New("disk on fire"))

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Operation failed" {
		t.Errorf("expected message 'Operation failed', got %q", body["message"])
	}
	if body["error"] != "disk on fire" {
		t.Errorf("expected underlying error in body, got %q", body["error"])
	}
}

func TestRespondErrorIncludesValidationField(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondError(recorder, "Operation failed", validation.ValidationError{Field: "username", Message: "username is required"})

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["field"] != "username" {
		t.Errorf("expected field username, got %q", body["field"])
	}
	if body["message"] != "username is required" {
		t.Errorf("expected validation message, got %q", body["message"])
	}
}
