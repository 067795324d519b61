package domain

import "fmt"

// Validation failure reasons.
const (
	ReasonRequired      = "required"
	ReasonInvalidFormat = "invalid_format"
	ReasonEmptyPatch    = "empty_patch"
)

// ValidationError names the field that failed validation and why.
// It is recovered at the boundary; no partial write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NotFoundError is returned when no task matches the requested id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// StorageError wraps a store failure that the core cannot recover from.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
