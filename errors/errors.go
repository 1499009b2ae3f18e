// Package errors provides unified error handling for the pkgbridge host.
// It implements structured error types with machine-readable error codes
// and retryable detection.
package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// MissingArgument creates a new AppError for a missing required argument.
func MissingArgument(argument string) *AppError {
	return &AppError{
		Code: ErrCodeMissingArgument, Message: fmt.Sprintf("Missing required argument: %s", argument),
		Retryable: false,
		Details:   map[string]any{"argument": argument},
	}
}

// MissingContext creates a new AppError for an operation that requires a
// request context the caller did not supply.
func MissingContext(operation string) *AppError {
	return &AppError{
		Code: ErrCodeMissingContext, Message: fmt.Sprintf("Operation %s requires a request context", operation),
		Retryable: false,
		Details:   map[string]any{"operation": operation},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// ProviderNotFound creates a new AppError for a provider that is not loaded.
func ProviderNotFound(name string) *AppError {
	return &AppError{
		Code: ErrCodeProviderNotFound, Message: fmt.Sprintf("Package provider %q is not loaded.", name),
		Retryable: false,
		Details:   map[string]any{"provider": name},
	}
}

// ProviderFailure creates a new AppError for an error reported by a provider
// while executing an operation. The provider error is kept as the cause and
// is not translated.
func ProviderFailure(provider, operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeProviderFailure, Message: fmt.Sprintf("Provider %q failed during %s.", provider, operation),
		Retryable: true,
		Details:   map[string]any{"provider": provider, "operation": operation},
		Cause:     cause,
	}
}

// SessionViolation creates a new AppError for a find-session protocol violation.
func SessionViolation(reason string) *AppError {
	return &AppError{
		Code: ErrCodeSessionViolation, Message: reason,
		Retryable: false,
	}
}

// Cancelled creates a new AppError for a caller-cancelled operation.
func Cancelled(operation string) *AppError {
	return &AppError{
		Code: ErrCodeCancelled, Message: fmt.Sprintf("Operation %s was cancelled.", operation),
		Retryable: false,
		Details:   map[string]any{"operation": operation},
	}
}

// NotInteractive creates a new AppError for an interactive decision that could
// not be made because the request context cannot prompt.
func NotInteractive(decision string) *AppError {
	return &AppError{
		Code: ErrCodeNotInteractive, Message: fmt.Sprintf("Cannot answer %q: request context is not interactive.", decision),
		Retryable: false,
		Details:   map[string]any{"decision": decision},
	}
}

// Internal creates a new AppError for an unexpected host-side error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}

// --- Inspection helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
