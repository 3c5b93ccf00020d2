package provider

import "errors"

// Error is a provider-side failure. Message is the short user-facing
// summary; Detail holds the full diagnostic when the backend supplied
// one. The two travel separately all the way to the HTTP response.
type Error struct {
	Message string
	Detail  string
	Cause   error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Errorf builds an Error with the cause's text as the diagnostic detail.
func Errorf(message string, cause error) *Error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &Error{Message: message, Detail: detail, Cause: cause}
}

// ErrUnsupported marks operations the selected backend cannot perform.
var ErrUnsupported = errors.New("operation not supported by this provider")
