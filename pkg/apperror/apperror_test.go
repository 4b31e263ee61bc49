package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: ValidationError("messages is required"), want: http.StatusUnprocessableEntity},
		{name: "wrapped validation", err: fmt.Errorf("parse: %w", ValidationError("bad")), want: http.StatusUnprocessableEntity},
		{name: "backend", err: Backend(errors.New("upstream down")), want: http.StatusInternalServerError},
		{name: "internal", err: Internal(errors.New("read failed")), want: http.StatusInternalServerError},
		{name: "untyped", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestBackendKeepsMessageAndCause(t *testing.T) {
	cause := errors.New("openrouter http 429: rate limited")
	err := Backend(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Same(t, cause, be.Err)
}

func TestConstructorsPassNilThrough(t *testing.T) {
	assert.NoError(t, Backend(nil))
	assert.NoError(t, Internal(nil))
}
