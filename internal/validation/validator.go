package validation

import (
	"strings"
	"unicode/utf8"

	"specialty-match/internal/domain"
	"specialty-match/internal/dto"
)

const (
	// MaxNumRows bounds num_rows on similarity requests.
	MaxNumRows = 50
	// MaxNameLength bounds specialty labels accepted over HTTP.
	MaxNameLength = 200
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSimilarRequest requires input_name; num_rows is optional (0 means default).
func (v *Validator) ValidateSimilarRequest(req dto.SimilarSpecialtiesRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.InputName) == "" {
		errors = append(errors, domain.NewMissingFieldError("input_name"))
	}
	if req.NumRows < 0 || req.NumRows > MaxNumRows {
		errors = append(errors, domain.NewOutOfRangeError("num_rows", req.NumRows, 0, MaxNumRows))
	}

	return errors
}

// ValidateAddRequest checks the label of a new specialty.
func (v *Validator) ValidateAddRequest(req dto.AddSpecialtyRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	name := strings.TrimSpace(req.Name)
	switch {
	case req.Name == "":
		errors = append(errors, domain.NewMissingFieldError("name"))
	case name == "":
		errors = append(errors, domain.NewEmptyFieldError("name"))
	case utf8.RuneCountInString(name) > MaxNameLength:
		errors = append(errors, domain.NewOutOfRangeError("name", utf8.RuneCountInString(name), 1, MaxNameLength))
	}

	return errors
}
