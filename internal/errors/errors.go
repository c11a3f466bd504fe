package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution, including degraded runs.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the document retrieval timed out.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorIngest   = 5   // Indicates a fetch or parse failure under the abort policy.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// FetchError reports a failed document retrieval: either a non-success HTTP
// status or, when Err is set, a transport or read failure.
type FetchError struct {
	// URL is the address that was requested.
	URL string
	// StatusCode is the HTTP status code returned by the server, or 0.
	StatusCode int
	// Status is the full status line, e.g. "404 Not Found".
	Status string
	// Err is the underlying failure when no usable response was received.
	Err error
}

// Error returns a formatted message describing the failed retrieval.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %s", e.URL, e.Status)
}

// Unwrap returns the underlying failure, if any.
func (e *FetchError) Unwrap() error { return e.Err }

// ParseError wraps a failure to interpret a retrieved document.
type ParseError struct {
	// Cause is the underlying parser error.
	Cause error
}

// Error returns the parse failure message.
func (e *ParseError) Error() string { return "parse document: " + e.Cause.Error() }

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error { return e.Cause }

// TimeoutError represents an operation that exceeded its deadline. It captures
// the operation name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsIngestError reports whether err stems from retrieving or parsing the
// source document.
func IsIngestError(err error) bool {
	var fetchErr *FetchError
	var parseErr *ParseError
	return errors.As(err, &fetchErr) || errors.As(err, &parseErr)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	var configErr ConfigError
	var timeoutErr TimeoutError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case IsIngestError(err):
		return ExitErrorIngest
	default:
		return ExitErrorGeneric
	}
}
