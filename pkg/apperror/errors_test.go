package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("Post not found"), http.StatusNotFound},
		{"validation", Validation("missing required fields: title"), http.StatusBadRequest},
		{"conflict", Conflict("category exists"), http.StatusConflict},
		{"forbidden", Forbidden("not yours"), http.StatusForbidden},
		{"invalid credentials", New(ErrInvalidCredentials, "invalid credentials"), http.StatusUnauthorized},
		{"unauthorized sentinel", ErrUnauthorized, http.StatusUnauthorized},
		{"rate limited", New(ErrRateLimitExceeded, "slow down"), http.StatusTooManyRequests},
		{"wrapped internal", Wrap(ErrInternal, "", errors.New("db gone")), http.StatusInternalServerError},
		{"unknown error", errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatus(tt.err))
		})
	}
}

func TestAppErrorMessageAndCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(ErrConflict, "category exists", cause)

	assert.Equal(t, "category exists", err.Error())
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)
}
