package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks a lookup whose target does not exist in the store. It is
// distinct from validation failures so transports can map the two to
// different status codes.
var ErrNotFound = errors.New("not found")

// FieldViolation names one field that failed validation.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports the full set of field-level violations for a
// rejected input. It is never raised with an empty violation list.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}
