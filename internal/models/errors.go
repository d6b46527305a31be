package models

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrInterviewCompleted guards submit/terminate against re-execution on a
	// finished session, so a candidate record is created exactly once.
	ErrInterviewCompleted = errors.New("interview already completed")
)

// ValidationError marks malformed or incomplete caller input. Handlers map it
// to a 400 response; no session mutation happens before it is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
