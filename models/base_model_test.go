package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestApplyToClearsBlankOptionalFields(t *testing.T) {
	s := Supplier{Email: ptr("old@example.com"), Remarks: ptr("keep")}

	(&SupplierPayload{Email: ptr("  ")}).ApplyTo(&s)
	assert.Nil(t, s.Email)
	require.NotNil(t, s.Remarks)
	assert.Equal(t, "keep", *s.Remarks)

	(&SupplierPayload{Email: ptr("new@example.com"), Remarks: ptr("")}).ApplyTo(&s)
	require.NotNil(t, s.Email)
	assert.Equal(t, "new@example.com", *s.Email)
	assert.Nil(t, s.Remarks)
}
