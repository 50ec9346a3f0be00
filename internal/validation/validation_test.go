package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Kind     string `json:"kind,omitempty" validate:"omitempty,startswith=image/"`
}

func TestStructValid(t *testing.T) {
	err := Struct(signup{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestStructCollectsEveryViolation(t *testing.T) {
	err := Struct(signup{Name: "A", Email: "not-an-email", Password: "123", Kind: "text/plain"})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []Violation{
		{Field: "name", Message: "must be at least 2 characters"},
		{Field: "email", Message: "must be a valid email address"},
		{Field: "password", Message: "must be at least 6 characters"},
		{Field: "kind", Message: `must start with "image/"`},
	}, verr.Violations)
	assert.Contains(t, verr.Error(), "password: must be at least 6 characters")
}

func TestStructRequired(t *testing.T) {
	err := Struct(signup{})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Violations, 3)
	for _, v := range verr.Violations {
		assert.Equal(t, "is required", v.Message)
	}
}

type secret struct {
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

func TestStructMaxBytesCountsBytes(t *testing.T) {
	assert.NoError(t, Struct(secret{Password: strings.Repeat("é", 36)}))

	err := Struct(secret{Password: strings.Repeat("é", 40)})
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []Violation{{Field: "password", Message: "must be at most 72 bytes"}}, verr.Violations)
}
