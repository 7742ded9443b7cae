package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrHoldingNotFound is returned when a referenced holding does not exist
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrInvalidHolding is returned when a holding breaks a domain rule
	ErrInvalidHolding = errors.New("invalid holding")
)

// StorageError reports a failure of the underlying persistence layer.
// It is propagated unchanged and never retried.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a storage failure of operation op
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is, or wraps, a StorageError
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}
