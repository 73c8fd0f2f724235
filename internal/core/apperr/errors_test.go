package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_Status(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequest("x"), http.StatusBadRequest},
		{"conflict", Conflict("x"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("x"), http.StatusUnauthorized},
		{"forbidden", Forbidden("x"), http.StatusForbidden},
		{"not found", NotFound("x"), http.StatusNotFound},
		{"internal", Internal("x", errors.New("db")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestAs_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("Contact not found"))
	ae := As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Contact not found", ae.Error())
	assert.Nil(t, As(errors.New("plain")))
}

func TestInternal_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("internal server error", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal server error", err.Error())
}

func TestValidation_JoinsMessages(t *testing.T) {
	err := Validation([]Violation{
		{Field: "firstName", Message: "must not be blank"},
		{Field: "email", Message: "must be a well-formed email address"},
	})
	assert.Equal(t, "firstName: must not be blank, email: must be a well-formed email address", err.Error())
	ae := As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Violations, 2)
}
