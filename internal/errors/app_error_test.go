package errors_test

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	fields := []appErrors.FieldError{
		{Field: "name", Message: "Name is required"},
		{Field: "address", Message: "Address must be at most 128 characters"},
	}

	err := appErrors.ValidationErrors(fields)

	assert.Equal(t, appErrors.ErrCodeValidation, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, fields, err.Fields)
	assert.Equal(t, "Validation failed: name: Name is required; address: Address must be at most 128 characters", err.Error())
}

func TestAddValidationError(t *testing.T) {
	err := appErrors.AddValidationError("amount", "must be a number")

	require.Len(t, err.Fields, 1)
	assert.Equal(t, "amount", err.Fields[0].Field)
	assert.Equal(t, "Invalid field 'amount': must be a number", err.Detail)
}

func TestIsAppError(t *testing.T) {
	t.Run("Wrapped AppError", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", appErrors.NotFoundError("Cart not found"))

		appErr, ok := appErrors.IsAppError(wrapped)

		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
		assert.True(t, appErrors.HasCode(wrapped, appErrors.ErrCodeNotFound))
	})

	t.Run("Plain Error", func(t *testing.T) {
		appErr, ok := appErrors.IsAppError(sql.ErrConnDone)

		assert.False(t, ok)
		assert.Nil(t, appErr)
		assert.False(t, appErrors.HasCode(sql.ErrConnDone, appErrors.ErrCodeNotFound))
	})
}

func TestWithError(t *testing.T) {
	err := appErrors.DatabaseError("Failed to add item").WithError(sql.ErrTxDone)

	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.Equal(t, "Failed to add item", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}
