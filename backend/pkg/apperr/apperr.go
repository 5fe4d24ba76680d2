package apperr

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure so the HTTP layer can map it to a status code.
type Kind string

const (
	// KindNotFound is returned when a key is missing on read/update/delete
	KindNotFound Kind = "not_found"
	// KindDuplicateKey is returned when a create collides with an existing key
	KindDuplicateKey Kind = "duplicate_key"
	// KindInvalidArgument is returned on malformed pagination or payload shape
	KindInvalidArgument Kind = "invalid_argument"
	// KindStoreUnavailable is returned when the graph backend cannot be reached
	KindStoreUnavailable Kind = "store_unavailable"
	// KindReferentialPrecondition is returned when a create references a
	// non-existent related key
	KindReferentialPrecondition Kind = "referential_precondition_failed"
)

// Error is the base error type carrying a kind and an optional wrapped cause
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NotFound reports a missing entity by kind and key
func NotFound(entity, key string) *Error {
	return New(KindNotFound, fmt.Sprintf("%s not found: %s", entity, key), nil)
}

// DuplicateKey reports a create collision
func DuplicateKey(entity, key string, err error) *Error {
	return New(KindDuplicateKey, fmt.Sprintf("%s already exists: %s", entity, key), err)
}

// InvalidArgument reports a malformed request value
func InvalidArgument(message string) *Error {
	return New(KindInvalidArgument, message, nil)
}

// StoreUnavailable reports an unreachable graph backend
func StoreUnavailable(err error) *Error {
	return New(KindStoreUnavailable, "graph store unavailable", err)
}

// ReferentialPrecondition reports a create citing a non-existent related key
func ReferentialPrecondition(message string) *Error {
	return New(KindReferentialPrecondition, message, nil)
}

// KindOf extracts the kind from err, unwrapping as needed. Returns an empty
// kind for errors that did not originate here.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsNotFound reports whether err is a missing-key failure
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsDuplicateKey reports whether err is a create collision
func IsDuplicateKey(err error) bool {
	return IsKind(err, KindDuplicateKey)
}
