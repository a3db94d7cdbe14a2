package errors

import (
	"errors"
	"fmt"
)

// Error taxonomy for the client. Failures fall into four buckets: validation
// (blocked before any request), authorization (force logout), domain-rule
// rejections (blocked before any request), and transport/server failures.

var (
	// ErrValidation indicates input that failed client-side validation
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates a missing or rejected credential (401)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the server refused the operation (403)
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrDomainRule indicates a client-enforced domain rule rejection
	ErrDomainRule = errors.New("domain rule violation")

	// ErrTransport indicates a network or server failure
	ErrTransport = errors.New("transport error")
)

// ValidationError creates a validation error with field context
func ValidationError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrValidation)
}

// DomainRuleError creates a domain rule rejection with the user-facing message
func DomainRuleError(message string) error {
	return fmt.Errorf("%s: %w", message, ErrDomainRule)
}

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// TransportError wraps a network or server failure
func TransportError(err error) error {
	if err == nil {
		return ErrTransport
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

// IsAuthFailure reports whether err should force a logout and redirect to
// the login view.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
