package utils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    *string `json:"name"`
	Remarks *string `json:"remarks"`
}

func TestDecodeStrict(t *testing.T) {
	var s sample
	require.NoError(t, DecodeStrict([]byte(`{"name":"Acme"}`), &s))
	require.NotNil(t, s.Name)
	assert.Equal(t, "Acme", *s.Name)
	assert.Nil(t, s.Remarks)
}

func TestDecodeStrictEmptyBody(t *testing.T) {
	var s sample
	require.NoError(t, DecodeStrict([]byte("  "), &s))
	assert.Nil(t, s.Name)
}

func TestDecodeStrictRejects(t *testing.T) {
	tests := map[string]string{
		"unknown field": `{"name":"Acme","color":"red"}`,
		"malformed":     `{"name":`,
		"wrong type":    `{"name":42}`,
		"two objects":   `{"name":"a"}{"name":"b"}`,
		"array":         `[1,2]`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var s sample
			err := DecodeStrict([]byte(body), &s)
			var fiberErr *fiber.Error
			require.True(t, errors.As(err, &fiberErr), "got %v", err)
			assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
		})
	}

	var s sample
	err := DecodeStrict([]byte(`{"color":"red"}`), &s)
	assert.EqualError(t, err, `Unknown field "color"`)
}
