package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors (raised before any provider work starts)
const (
	// ErrCodeMissingArgument indicates a required argument is missing.
	ErrCodeMissingArgument ErrorCode = "MISSING_ARGUMENT"
	// ErrCodeMissingContext indicates a request context is required but absent.
	ErrCodeMissingContext ErrorCode = "MISSING_CONTEXT"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Provider errors
const (
	// ErrCodeProviderNotFound indicates the named provider is not loaded.
	ErrCodeProviderNotFound ErrorCode = "PROVIDER_NOT_FOUND"
	// ErrCodeProviderFailure indicates the provider reported an error while executing.
	ErrCodeProviderFailure ErrorCode = "PROVIDER_FAILURE"
	// ErrCodeSessionViolation indicates a find-session protocol violation.
	ErrCodeSessionViolation ErrorCode = "SESSION_VIOLATION"
)

// Flow errors
const (
	// ErrCodeCancelled indicates the caller cancelled the operation.
	ErrCodeCancelled ErrorCode = "CANCELLED"
	// ErrCodeNotInteractive indicates a required interactive decision could not be made.
	ErrCodeNotInteractive ErrorCode = "NOT_INTERACTIVE"
	// ErrCodeInternal indicates an unexpected host-side error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeProviderFailure: true,
	ErrCodeCancelled:       false,
	ErrCodeInternal:        false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
