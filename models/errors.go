package models

import "errors"

// ErrTaskNotFound is returned when the referenced task ID does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports bad or missing input. Its message is safe to
// return to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
