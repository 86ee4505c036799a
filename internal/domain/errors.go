package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Specialty specific errors
	CodeSpecialtyNotFound ErrorCode = "SPECIALTY_NOT_FOUND"
	CodeEmbeddingService  ErrorCode = "EMBEDDING_SERVICE_ERROR"
	CodeStore             ErrorCode = "STORE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// NewSpecialtyNotFoundError is returned when no stored embedding exists for a label.
func NewSpecialtyNotFoundError(name string) *DomainError {
	return NewError(CodeSpecialtyNotFound, fmt.Sprintf("no embedding found for specialty: %s", name), nil)
}

func NewEmbeddingServiceError(err error) *DomainError {
	return NewError(CodeEmbeddingService, "failed to generate embedding", err)
}

func NewStoreError(message string, err error) *DomainError {
	return NewError(CodeStore, message, err)
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == CodeNotFound || domainErr.Code == CodeSpecialtyNotFound
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors collects the field errors of one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: "MISSING_FIELD", Message: fmt.Sprintf("%s is required", field)}
}

func NewEmptyFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: "EMPTY_FIELD", Message: fmt.Sprintf("%s cannot be empty", field)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    "OUT_OF_RANGE",
		Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value),
	}
}
