package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"iakwe-hr/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and message", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.New(apperror.CodeStaleState, "stale", http.StatusConflict))

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeStaleState, got.Code)
		assert.Equal(t, "stale", got.Message)
		assert.Equal(t, apperror.KindClient, got.Details["kind"])
		assert.Equal(t, false, got.Details["retryable"])
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), apperror.ErrForbidden)
		got := apperror.ToHTTP(wrapped)

		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.KindAuth, got.Details["kind"])
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: relation does not exist"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestAppError_KindAndRetryable(t *testing.T) {
	cases := []struct {
		name      string
		err       *apperror.AppError
		kind      string
		retryable bool
	}{
		{"validation", apperror.ErrInvalidInput, apperror.KindClient, false},
		{"unauthorized", apperror.ErrUnauthorized, apperror.KindAuth, false},
		{"unavailable", apperror.ErrServiceUnavailable, apperror.KindNetwork, true},
		{"internal", apperror.ErrInternal, apperror.KindServer, true},
		{"rate limited", apperror.New("RATE_LIMITED", "slow down", http.StatusTooManyRequests), apperror.KindClient, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind())
			assert.Equal(t, tc.retryable, tc.err.Retryable())
		})
	}
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		RejectionReason string `validate:"required"`
	}
	v := validator.New()
	err := v.Struct(payload{})

	mapped := apperror.MapValidationError(err)

	var appErr *apperror.AppError
	assert.True(t, errors.As(mapped, &appErr))
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	assert.Contains(t, appErr.Message, "is required")
}

func TestValidationDetails(t *testing.T) {
	type payload struct {
		StartDate string `validate:"required"`
	}
	err := validator.New().Struct(payload{})

	details := apperror.ValidationDetails(err)

	assert.Equal(t, apperror.KindClient, details["kind"])
	assert.Equal(t, false, details["retryable"])
	assert.Contains(t, details["reason"], "is required")
}
