package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// A result mismatch is reported to the user but never changes the exit status
// of a completed benchmark; ExitErrorMismatch is kept for scripted callers
// that opt into strict checking.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates a parallel/serial result mismatch.
	ExitErrorConfig   = 4   // Indicates a configuration error.
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

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports the first position at which the parallel output
// differs from the serial reference.
type MismatchError struct {
	// Index is the first differing position.
	Index int
	// Got is the parallel value at Index.
	Got int
	// Want is the serial value at Index.
	Want int
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch at i=%d: parallel=%d serial=%d", e.Index, e.Got, e.Want)
}

// RunError encapsulates a benchmark failure while preserving the original
// cause and the phase in which it happened.
type RunError struct {
	// Phase names the harness phase ("fill", "serial", "parallel", "validate").
	Phase string
	// Cause is the underlying error.
	Cause error
}

// Error returns the phase-qualified error message.
func (e RunError) Error() string { return fmt.Sprintf("%s phase: %v", e.Phase, e.Cause) }

// Unwrap returns the original wrapped error.
func (e RunError) Unwrap() error { return e.Cause }

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

// ExitCodeFor maps an error to the process exit code.
//
// Mismatches map to ExitErrorMismatch here; callers decide whether a
// mismatch is allowed to influence the exit status.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	var valErr ValidationError
	var misErr MismatchError
	switch {
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	case errors.As(err, &misErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}
