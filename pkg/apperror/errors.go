package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

func ErrAmountBelowMinimum(minMinor int64) *AppError {
	return New("VAL_001", fmt.Sprintf("Amount below minimum (%d minor units)", minMinor), http.StatusBadRequest)
}

func ErrMethodDisabled(method string) *AppError {
	return New("VAL_002", fmt.Sprintf("Payment method is currently disabled: %s", method), http.StatusBadRequest)
}

// Validation returns a generic VAL_003 validation error.
func Validation(message string) *AppError {
	return New("VAL_003", message, http.StatusBadRequest)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication & Authorization (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNotAssignedAdmin() *AppError {
	return New("AUTH_003", "Request is not assigned to this admin", http.StatusForbidden)
}

// ErrInsufficientRole rejects a valid token whose role does not grant
// access to the resource.
func ErrInsufficientRole() *AppError {
	return New("AUTH_004", "Insufficient role for this resource", http.StatusForbidden)
}

// ---- Request Lifecycle (STATE) ----

// ErrStateConflict reports a transition whose status precondition failed,
// naming the required and actual statuses so the caller can see what raced.
func ErrStateConflict(action, required, actual string) *AppError {
	return New("STATE_001",
		fmt.Sprintf("%s requires status %s, current status is %s", action, required, actual),
		http.StatusConflict)
}

// ---- Ledger & Funds (PAY) ----

func ErrInsufficientFunds(availableMinor int64) *AppError {
	return New("PAY_001",
		fmt.Sprintf("Insufficient available balance (%d minor units available)", availableMinor),
		http.StatusPaymentRequired)
}

func ErrDuplicatePosting() *AppError {
	return New("PAY_002", "Ledger entry already posted for this request", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrStoreUnavailable marks a transient storage failure. Unlike the business
// errors above, the caller may retry the whole operation.
func ErrStoreUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Storage temporarily unavailable", http.StatusServiceUnavailable, err)
}
