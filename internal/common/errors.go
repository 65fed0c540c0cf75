// Package common defines shared constants and sentinel errors used across
// imob components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrCorruptDocument reports a persisted value that cannot be decoded into
	// the expected shape. It is never masked as an empty collection.
	ErrCorruptDocument = errors.New("corrupt document")

	// Validation errors.
	ErrInvalidDraft        = errors.New("invalid property draft")
	ErrInvalidPropertyType = errors.New("invalid property type")
	ErrIncompleteRequest   = errors.New("incomplete description request")

	// CLI flow errors.
	ErrorUnauthorized = errors.New("unauthorized")
)
