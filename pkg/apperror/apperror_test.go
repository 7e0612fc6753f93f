package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Unauthorized("no token", nil), http.StatusUnauthorized},
		{Permission("not allowed"), http.StatusForbidden},
		{NotFound("appointment", nil), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode())
	}
}

func TestKindChecksUnwrapWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", Validation("bad input"))
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsConflict(wrapped))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("staff", errors.New("sql: no rows in result set"))
	assert.Equal(t, "staff not found", err.Message)
	assert.Contains(t, err.Error(), "no rows")
}
