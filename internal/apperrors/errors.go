package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a failed credential check or a missing identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrReadFailed indicates that the storage backend failed while reading.
var ErrReadFailed = errors.New("storage read failed")

// ErrWriteFailed indicates that the storage backend failed while writing.
var ErrWriteFailed = errors.New("storage write failed")

// ErrStorageInit indicates that the storage backend connection could not be established.
var ErrStorageInit = errors.New("storage initialization failed")

// Wrap annotates a storage error with one of the taxonomy sentinels while
// keeping the underlying detail in the message. errors.Is matches on kind.
func Wrap(kind error, op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, kind, err)
}
