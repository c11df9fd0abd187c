package validation

import (
	"reflect"
	"testing"

	"mondict/internal/models"
)

func TestValidateWordInput(t *testing.T) {
	valid := func() *models.WordInput {
		return &models.WordInput{
			MonWord:    "mon",
			LanguageID: 1,
			Definitions: []models.DefinitionInput{
				{Definition: "a people of lower Burma", LanguageID: 2, PosID: 1},
			},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		if err := ValidateWordInput(valid()); err != nil {
			t.Errorf("ValidateWordInput() error = %v, want nil", err)
		}
	})

	t.Run("MissingWord", func(t *testing.T) {
		input := valid()
		input.MonWord = "   "
		err := ValidateWordInput(input)
		if err == nil {
			t.Fatal("ValidateWordInput() should reject blank mon_word")
		}
		var vErr ValidationError
		if !errorAs(err, &vErr) || vErr.Field != "mon_word" {
			t.Errorf("expected ValidationError on mon_word, got %v", err)
		}
	})

	t.Run("NoDefinitions", func(t *testing.T) {
		input := valid()
		input.Definitions = nil
		if err := ValidateWordInput(input); err == nil {
			t.Error("ValidateWordInput() should reject empty definitions")
		}
	})

	t.Run("BlankDefinitionText", func(t *testing.T) {
		input := valid()
		input.Definitions = append(input.Definitions, models.DefinitionInput{Definition: ""})
		if err := ValidateWordInput(input); err == nil {
			t.Error("ValidateWordInput() should reject blank definition_text")
		}
	})
}

func TestValidateSearchFields(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if err := ValidateSearchFields(nil); err == nil {
			t.Error("ValidateSearchFields() should require at least one field")
		}
	})

	t.Run("Known", func(t *testing.T) {
		if err := ValidateSearchFields([]string{SearchFieldWord, SearchFieldDefinitions}); err != nil {
			t.Errorf("ValidateSearchFields() error = %v, want nil", err)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if err := ValidateSearchFields([]string{"pronunciation"}); err == nil {
			t.Error("ValidateSearchFields() should reject unknown fields")
		}
	})
}

func TestNormalizeSynonyms(t *testing.T) {
	input := []string{" first ", "", "second", "   ", "first"}
	result := NormalizeSynonyms(input)
	expected := []string{"first", "second", "first"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("NormalizeSynonyms() = %v, want %v", result, expected)
	}
}

// errorAs is a tiny local wrapper so tests read cleanly
func errorAs(err error, target *ValidationError) bool {
	v, ok := err.(ValidationError)
	if ok {
		*target = v
	}
	return ok
}
