package commontype

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the identity does not resolve to a profile
	ErrNotFound = errors.New("not found")
	// ErrDuplicateLike: the (source, target, kind) edge already exists
	ErrDuplicateLike = errors.New("like already exists")
	// ErrMatchExists: insert lost the race on the unordered pair key;
	// recovered internally, never returned to callers
	ErrMatchExists = errors.New("match already exists")
	// ErrStoreUnavailable: storage-boundary fault, distinct from business failures
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError rejects a request before any store interaction
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsBusinessError reports whether err is a caller-recoverable rule failure
// rather than an infrastructure fault.
func IsBusinessError(err error) bool {
	var ve *ValidationError
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicateLike) ||
		errors.As(err, &ve)
}
