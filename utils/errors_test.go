package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewValidationError(FieldViolation{Field: "name"}), fiber.StatusBadRequest},
		{&NotFoundError{Resource: "Contractor"}, fiber.StatusNotFound},
		{&AuthError{Message: "No token provided"}, fiber.StatusUnauthorized},
		{&DuplicateError{Message: "dup"}, fiber.StatusConflict},
		{&StoreError{Op: "create", Err: errors.New("boom")}, fiber.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", &NotFoundError{}), fiber.StatusNotFound},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("plain"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), tt.err.Error())
	}
}

func TestWrapStoreError(t *testing.T) {
	assert.NoError(t, WrapStoreError("create", nil))
	assert.Same(t, ErrRecordNotFound, WrapStoreError("find", ErrRecordNotFound))

	dup := &DuplicateError{Message: "dup"}
	assert.Same(t, dup, WrapStoreError("create", dup))

	err := WrapStoreError("create", errors.New("connection refused"))
	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "connection refused", err.Error())
	assert.Equal(t, "create", storeErr.Op)
}

func TestErrorHandlerBody(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(ctx *fiber.Ctx) error {
		return NewValidationError(
			FieldViolation{Field: "name", Message: "name is required"},
			FieldViolation{Field: "address", Message: "address is required"},
		)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": false,
		"message": "Validation failed: name, address",
		"errors": [
			{"field": "name", "message": "name is required"},
			{"field": "address", "message": "address is required"}
		]
	}`, string(body))
}
