package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "onboard/internal/errors"
)

type registerForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	GSTIN    string `json:"gstin" validate:"required,gstin"`
	Password string `json:"password" validate:"required,min=8,password"`
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	return ve.Fields
}

func TestValidator_ValidInput(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&registerForm{
		Name:     "Acme Export",
		Email:    "broker@acme.com",
		GSTIN:    "27AAPFU0939F1ZV",
		Password: "Secret123",
	})
	assert.NoError(t, err)
}

func TestValidator_ReportsEachFieldByJSONName(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&registerForm{Email: "not-an-email", GSTIN: "bad", Password: "short"})
	fields := validationFields(t, err)

	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "valid email is required", fields["email"])
	assert.Equal(t, "a valid GSTIN is required", fields["gstin"])
	assert.Equal(t, "password must be at least 8 characters", fields["password"])
}

func TestValidator_PasswordComposition(t *testing.T) {
	cv := NewValidator()

	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"mixed case with digit", "Secret123", true},
		{"missing uppercase", "secret123", false},
		{"missing lowercase", "SECRET123", false},
		{"missing digit", "Secretpass", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cv.Validate(&registerForm{
				Name:     "Acme Export",
				Email:    "broker@acme.com",
				GSTIN:    "27AAPFU0939F1ZV",
				Password: tc.password,
			})
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			fields := validationFields(t, err)
			assert.Equal(t, "password must contain a lowercase letter, an uppercase letter and a number", fields["password"])
		})
	}
}

func TestValidator_GSTINFormat(t *testing.T) {
	cv := NewValidator()

	valid := []string{"27AAPFU0939F1ZV", "09AAACH7409R1ZZ"}
	invalid := []string{"", "27aapfu0939f1zv", "27AAPFU0939F1XV", "27AAPFU0939F1ZVX"}

	for _, g := range valid {
		err := cv.Validate(&registerForm{Name: "n", Email: "a@b.com", GSTIN: g, Password: "Secret123"})
		assert.NoError(t, err, "gstin %q should pass", g)
	}
	for _, g := range invalid {
		err := cv.Validate(&registerForm{Name: "n", Email: "a@b.com", GSTIN: g, Password: "Secret123"})
		fields := validationFields(t, err)
		assert.Contains(t, fields, "gstin", "gstin %q should fail", g)
	}
}
