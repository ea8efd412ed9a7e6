// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "John Doe", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format rule, including the domain label constraints.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"plus_in_local_part", "john+tuition@example.com", true},
		{"hyphenated_domain", "a@my-school.edu.sg", true},
		{"single_letter_domain_label", "a@b.co", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"short_last_label", "test@example.c", false},
		{"leading_special", ".test@example.com", false},
		{"double_special", "te..st@example.com", false},
		{"label_ends_with_hyphen", "test@example-.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			assert.Equal(t, !tt.isValid, v.HasErrors())
			assert.Equal(t, tt.isValid, validate.IsEmail(tt.email))
		})
	}
}

/*
TestValidator_DigitsAndAlnum checks the character class rules used by phones and tags.
*/
func TestValidator_DigitsAndAlnum(t *testing.T) {
	v := &validate.Validator{}
	v.Digits("phone", "98765432").Alnum("tag", "friends2")
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.Digits("phone", "9876 5432")
	assert.True(t, v.HasErrors())

	v = &validate.Validator{}
	v.Alnum("tag", "best friend")
	assert.True(t, v.HasErrors())

	v = &validate.Validator{}
	v.Alnum("tag", "Zoë")
	assert.False(t, v.HasErrors())
}

/*
TestValidator_SingleFailureMessage verifies that one failure surfaces its own message.
*/
func TestValidator_SingleFailureMessage(t *testing.T) {
	v := &validate.Validator{}
	err := v.Matches("time", "25:00", regexp.MustCompile(`^[01][0-9]:[0-5][0-9]$`), "Bad time").Err()

	require.Error(t, err)
	assert.Equal(t, "Bad time", err.Error())
}

/*
TestValidator_ErrAs verifies that any failure collapses into the given constraint.
*/
func TestValidator_ErrAs(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.Required("name", "Alex").ErrAs("name", "Names are bad"))

	v = &validate.Validator{}
	err := v.Required("name", "").MinLen("name", "", 1).ErrAs("name", "Names are bad")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Names are bad", ae.Message)
	assert.Len(t, ae.Details, 1)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("name", "Alex").
		MinLen("name", "Alex", 3).
		MaxLen("name", "Alex", 10).
		Email("email", "alex@tutorbook.dev").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").           // Fails
		MinLen("name", "a", 5).         // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
	assert.Equal(t, "Validation failed", ae.Message)
}
