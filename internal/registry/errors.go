package registry

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when an operation references an id with no record.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden is returned when the caller fails the authorization policy.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalid is returned for malformed payloads.
	ErrInvalid = errors.New("invalid payload")
	// ErrStorageUnavailable wraps failures of the backing store or allocator.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Code maps an operation error to its result code. A nil error maps to 200.
func Code(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalid, err)
}
