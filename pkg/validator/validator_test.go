package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Link     string `json:"link" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&sample{Username: "ab"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "required", fields["link"])
	assert.Equal(t, "min", fields["username"])
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Link: "https://youtu.be/abc123", Username: "alice"}))
	assert.Nil(t, FieldErrors(nil))
}
