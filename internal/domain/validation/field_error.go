package validation

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError reports a rule violation tied to one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// Errors collects field errors in the order they were found.
type Errors []*FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *Errors) Add(field, message string) {
	*e = append(*e, NewFieldError(field, message))
}

// Err returns nil when no errors were collected.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Fields extracts every field error wrapped in err.
func Fields(err error) []*FieldError {
	var many Errors
	if errors.As(err, &many) {
		return many
	}
	var one *FieldError
	if errors.As(err, &one) {
		return []*FieldError{one}
	}
	return nil
}
