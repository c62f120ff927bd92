package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "fyyur/pkg/app_errors"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &apperrors.ValidationError{Fields: map[string]string{
		"state": "must be a US state code",
		"name":  "is required",
	}}

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, "invalid input: name: is required; state: must be a US state code", err.Error())

	wrapped := fmt.Errorf("create venue: %w", apperrors.NewValidationError("name", "is required"))
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "is required", ve.Fields["name"])
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &apperrors.StoreError{Op: "venue.create", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, apperrors.ErrInternalServerError)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, "store venue.create: connection reset", err.Error())
}
