package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the caller's identity maps to no seller. Terminal,
	// retrying with the same identity cannot succeed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidTransition means a request state machine misuse, e.g. deciding
	// an already approved request.
	ErrInvalidTransition = errors.New("invalid request transition")

	// ErrOpenRequestExists means the submitter already has an open request of
	// the same type. Policy error, not a storage error.
	ErrOpenRequestExists = errors.New("open request already exists")

	// ErrRequestPending means creation is review-gated and the request has not
	// been approved yet. No entity has been materialized.
	ErrRequestPending = errors.New("request awaiting approval")

	ErrNotFound = errors.New("not found")
)

// ValidationError marks malformed input. Terminal, the caller must fix and resubmit.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
