package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationErrorsFieldList(t *testing.T) {
	type payload struct {
		Username string `validate:"required,max=100"`
		Email    string `validate:"omitempty,email"`
	}

	err := validator.New().Struct(payload{Username: "", Email: "nope"})
	require.Error(t, err)

	formatted := FormatValidationErrors(err)
	messages, ok := formatted.([]string)
	require.True(t, ok)
	assert.Contains(t, messages, "Username is required")
	assert.Contains(t, messages, "Email must be a valid email address")
}

func TestFormatValidationErrorsPlainError(t *testing.T) {
	formatted := FormatValidationErrors(errors.New("boom"))
	assert.Equal(t, "boom", formatted)
}
