package languages

import (
	"errors"
	"fmt"
)

// Errors returned by language configuration operations.
var (
	// ErrLexerMissing indicates a language spec without the required lexer field.
	ErrLexerMissing = errors.New("language spec missing lexer")

	// ErrValidationFailed indicates a language spec failed schema validation.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError describes a schema violation in a language spec.
type ValidationError struct {
	// Field is the spec field that failed validation.
	Field string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// Is implements error matching for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
