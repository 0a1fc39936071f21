// Copyright (c) 2026 Campus. All rights reserved.

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekara/campus/internal/platform/apperr"
	"github.com/ozgekara/campus/internal/platform/validate"
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
		{"valid_string", "firstName", "Ada", false},
		{"empty_string", "firstName", "", true},
		{"whitespace_only", "firstName", "   ", true},
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
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_PastDate checks that birth dates in the future are rejected.
*/
func TestValidator_PastDate(t *testing.T) {
	tests := []struct {
		name    string
		value   time.Time
		isValid bool
	}{
		{"past_date", time.Now().AddDate(-20, 0, 0), true},
		{"future_date", time.Now().AddDate(1, 0, 0), false},
		{"zero_date", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.PastDate("birthDate", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "ada").
		MinLen("username", "ada", 3).
		MaxLen("username", "ada", 10).
		PastDate("birthDate", time.Now().AddDate(-18, 0, 0)).
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
		Required("username", "").                       // Fails
		MinLen("password", "a", 6).                     // Fails
		PastDate("birthDate", time.Now().AddDate(1, 0, 0)). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestParseDate covers both accepted wire formats and the failure modes.
*/
func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"calendar_date", "2001-05-14", true},
		{"rfc3339", "2001-05-14T00:00:00Z", true},
		{"empty", "", false},
		{"garbage", "14/05/2001", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := validate.ParseDate("birthDate", tt.value)

			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, 2001, parsed.Year())
			} else {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			}
		})
	}
}
