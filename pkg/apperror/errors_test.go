package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("STATE_001", "conflict", http.StatusConflict)
	assert.Equal(t, "[STATE_001] conflict", e.Error())

	wrapped := Wrap("SYS_001", "boom", http.StatusInternalServerError, errors.New("pg down"))
	assert.Contains(t, wrapped.Error(), "pg down")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	e := ErrStoreUnavailable(inner)
	assert.ErrorIs(t, e, inner)
}

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrAmountBelowMinimum(1000), "VAL_001", http.StatusBadRequest},
		{ErrMethodDisabled("CARD"), "VAL_002", http.StatusBadRequest},
		{Validation("bad input"), "VAL_003", http.StatusBadRequest},
		{ErrNotFound("request"), "RES_001", http.StatusNotFound},
		{ErrInvalidCredentials(), "AUTH_001", http.StatusUnauthorized},
		{ErrInvalidToken(), "AUTH_002", http.StatusUnauthorized},
		{ErrNotAssignedAdmin(), "AUTH_003", http.StatusForbidden},
		{ErrStateConflict("APPROVE", "ASSIGNED", "NEW"), "STATE_001", http.StatusConflict},
		{ErrInsufficientFunds(25000), "PAY_001", http.StatusPaymentRequired},
		{ErrDuplicatePosting(), "PAY_002", http.StatusConflict},
		{ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{InternalError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
		{ErrStoreUnavailable(errors.New("x")), "SYS_002", http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestErrStateConflict_Message(t *testing.T) {
	e := ErrStateConflict("COMPLETE", "SENT", "APPROVED")
	require.Contains(t, e.Message, "COMPLETE")
	require.Contains(t, e.Message, "SENT")
	require.Contains(t, e.Message, "APPROVED")
}
