package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrVenueNotFound        = errors.New("venue not found")
	ErrArtistNotFound       = errors.New("artist not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidShowReference = errors.New("show must reference an existing venue and artist")
	ErrDuplicateName        = errors.New("name already listed")
	ErrHasShows             = errors.New("listing still has shows")
	ErrInternalServerError  = errors.New("internal server error")
)

// ValidationError carries per-field messages. It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// StoreError wraps an unexpected persistence failure. It matches ErrInternalServerError with errors.Is.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrInternalServerError
}
