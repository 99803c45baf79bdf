package apperror

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Message    string // User-friendly message
	HTTPStatus int    // HTTP status code
	Err        error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind classifies the error for the client.
func (e *AppError) Kind() string {
	switch {
	case e.HTTPStatus == http.StatusUnauthorized || e.HTTPStatus == http.StatusForbidden:
		return KindAuth
	case e.Code == CodeServiceUnavailable || e.HTTPStatus == http.StatusServiceUnavailable ||
		e.HTTPStatus == http.StatusGatewayTimeout:
		return KindNetwork
	case e.HTTPStatus >= 500:
		return KindServer
	default:
		return KindClient
	}
}

// Retryable reports whether repeating the same request may succeed.
func (e *AppError) Retryable() bool {
	switch e.Kind() {
	case KindNetwork:
		return true
	case KindServer:
		return e.HTTPStatus != http.StatusNotImplemented
	default:
		return e.HTTPStatus == http.StatusTooManyRequests
	}
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
