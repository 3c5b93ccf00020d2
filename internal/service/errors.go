package service

import (
	"fmt"

	"mediastudio-backend/internal/model"
)

// ValidationError rejects a request before any provider call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// TimeoutError signals that a long-running provider call outlived the
// caller's deadline. The outcome is user-retryable; continuation state is
// guaranteed untouched.
type TimeoutError struct {
	Operation model.Operation
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out; the request may be retried", e.Operation)
}
