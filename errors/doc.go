// Package errors provides unified error handling for the pkgbridge host.
// It implements structured error types with machine-readable error codes
// and retryable detection, so callers can tell argument mistakes apart
// from provider-side failures.
package errors
