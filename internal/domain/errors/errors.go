package errors

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so WithDetails copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid profile data",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrMarketAlertUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"MARKET_ALERT_UNAVAILABLE",
		"Failed to get market alerts",
		"",
	)

	ErrMarketDataUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"MARKET_DATA_UNAVAILABLE",
		"Failed to fetch market data",
		"",
	)

	ErrSimulationUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"SIMULATION_UNAVAILABLE",
		"Failed to run simulation",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// PersistenceError represents a storage-layer failure, implementing the AppError interface
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a storage-related error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "profile store: "+e.details).Error()
}

// Unwrap exposes the driver error
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message, built from the failed operation
func (e *PersistenceError) Message() string {
	if e.details == "" {
		return "Profile store unavailable"
	}

	return strings.ToUpper(e.details[:1]) + e.details[1:]
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}

// FailureReason classifies why an upstream call produced no usable answer.
type FailureReason string

const (
	FailureTransport   FailureReason = "transport"
	FailureTimeout     FailureReason = "timeout"
	FailureBadStatus   FailureReason = "bad_status"
	FailureMalformed   FailureReason = "malformed_response"
	FailureCircuitOpen FailureReason = "circuit_open"
)

// UpstreamError is the UpstreamUnavailable failure of one analytics call.
type UpstreamError struct {
	Service    string
	Reason     FailureReason
	StatusCode int
	Err        error
}

// NewUpstreamError creates an upstream failure for the named service.
func NewUpstreamError(service string, reason FailureReason, err error) *UpstreamError {
	return &UpstreamError{
		Service: service,
		Reason:  reason,
		Err:     err,
	}
}

// ClassifyTransportError maps a failed round trip to timeout or transport.
func ClassifyTransportError(service string, err error) *UpstreamError {
	reason := FailureTransport
	var timeout interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &timeout) && timeout.Timeout()) {
		reason = FailureTimeout
	}

	return NewUpstreamError(service, reason, err)
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("upstream %s unavailable (%s)", e.Service, e.Reason)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes the underlying transport or decode error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "Analytics service unavailable"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return string(e.Reason)
}
