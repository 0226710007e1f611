// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeMalformedInput indicates a token that does not match the input grammar
	TypeMalformedInput Type = "MALFORMED_INPUT"

	// TypeIdentityMismatch indicates a merge of resources with different identities
	TypeIdentityMismatch Type = "IDENTITY_MISMATCH"

	// TypeNotFound indicates a ledger entry that does not exist
	TypeNotFound Type = "NOT_FOUND"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeOverflow indicates a quantity too large to compute with
	TypeOverflow Type = "QUANTITY_OVERFLOW"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Context keys
const (
	KeyToken      = "token"
	KeyReason     = "reason"
	KeySuggestion = "suggestion"
	KeyLeft       = "left"
	KeyRight      = "right"
	KeyIdentity   = "identity"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Get returns a context value
func (e *Error) Get(key string) (interface{}, bool) {
	v, ok := e.Context[key]
	return v, ok
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := As(err); ok {
		return e.Type == t
	}
	return false
}

// MalformedInput creates an error for a token that fails the input grammar
func MalformedInput(token, reason string) *Error {
	return Newf(TypeMalformedInput, "Malformed input [%s] %s", token, reason).
		WithContext(KeyToken, token).
		WithContext(KeyReason, reason)
}

// IdentityMismatch creates an error for a merge of two different identities.
// left and right are the identities of the two operands.
func IdentityMismatch(left, right fmt.Stringer) *Error {
	return Newf(TypeIdentityMismatch, "cannot merge [%s] with [%s]", left, right).
		WithContext(KeyLeft, left).
		WithContext(KeyRight, right)
}

// NotFound creates a not found error
func NotFound(collection string, identity fmt.Stringer) *Error {
	return Newf(TypeNotFound, "%s has no entry for %s", collection, identity).
		WithContext(KeyIdentity, identity)
}

// Overflow creates an error for a quantity that cannot be scaled by factor
// without leaving the int range
func Overflow(identity fmt.Stringer, quantity, factor int) *Error {
	return Newf(TypeOverflow, "%d x %d of %s is too large", quantity, factor, identity).
		WithContext(KeyIdentity, identity)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
