package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessageListsAllFields(t *testing.T) {
	err := NewValidationError("gender", "password")
	assert.Equal(t, "Missing fields: gender, password", err.Error())
}

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	err := NewValidationError("email")
	assert.ErrorIs(t, err, ErrValidationFailed)

	wrapped := fmt.Errorf("handling request: %w", err)
	assert.ErrorIs(t, wrapped, ErrValidationFailed)

	var validationErr *ValidationError
	assert.True(t, errors.As(wrapped, &validationErr))
	assert.Equal(t, []string{"email"}, validationErr.Fields)
}
