package validation

import (
	"fmt"
	"strings"

	"mondict/internal/models"
)

// ValidationError represents a validation error. Handlers map it to a
// 400 response; no storage access happens once one is raised.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateWordInput checks a create/update word payload: the headword and
// at least one definition with text are required, everything else is
// optional.
func ValidateWordInput(input *models.WordInput) error {
	if strings.TrimSpace(input.MonWord) == "" {
		return ValidationError{Field: "mon_word", Message: "mon_word is required"}
	}
	if len(input.Definitions) == 0 {
		return ValidationError{Field: "definitions", Message: "at least one definition is required"}
	}
	for i, def := range input.Definitions {
		if strings.TrimSpace(def.Definition) == "" {
			return ValidationError{
				Field:   fmt.Sprintf("definitions[%d].definition_text", i),
				Message: "definition_text is required",
			}
		}
	}
	return nil
}

// Searchable fields accepted by category-scoped search
const (
	SearchFieldWord        = "word"
	SearchFieldDefinitions = "definitions"
)

// ValidateSearchFields checks the caller-selected field subset for
// category-scoped search; at least one known field must be selected.
func ValidateSearchFields(fields []string) error {
	if len(fields) == 0 {
		return ValidationError{Field: "searchFields", Message: "at least one search field is required"}
	}
	for _, f := range fields {
		if f != SearchFieldWord && f != SearchFieldDefinitions {
			return ValidationError{
				Field:   "searchFields",
				Message: fmt.Sprintf("unknown search field %q", f),
			}
		}
	}
	return nil
}

// ValidateRegistration checks a registration payload
func ValidateRegistration(username, password, email string) error {
	if strings.TrimSpace(username) == "" {
		return ValidationError{Field: "username", Message: "username is required"}
	}
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if strings.TrimSpace(email) == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	return nil
}

// NormalizeSynonyms trims synonym strings and drops blanks, preserving
// input order of the survivors
func NormalizeSynonyms(synonyms []string) []string {
	var result []string
	for _, s := range synonyms {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		result = append(result, s)
	}
	return result
}
