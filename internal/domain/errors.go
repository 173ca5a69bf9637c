package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Remote failure kinds. Completer implementations wrap the underlying
// cause with one of these so the HTTP layer can tell them apart with
// errors.Is.
var (
	// ErrRemoteAuth indicates the backend rejected the credential.
	ErrRemoteAuth = errors.New("remote authentication failed")

	// ErrRemoteRateLimited indicates a quota or rate-limit rejection.
	ErrRemoteRateLimited = errors.New("remote rate limit exceeded")

	// ErrRemoteTimeout indicates the call did not resolve in time.
	ErrRemoteTimeout = errors.New("remote call timed out")

	// ErrRemoteUnavailable covers network failures and unexpected
	// backend statuses.
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// ErrEmptyCompletion indicates the backend answered without any
	// completion text.
	ErrEmptyCompletion = errors.New("remote returned an empty completion")
)

// ValidationError reports missing or malformed request fields. The
// remote call is never attempted when one is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError creates a ValidationError for the given fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
