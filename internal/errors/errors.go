package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the
// application. These codes signal the outcome of the program execution
// to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between multiplication algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid
// flags or malformed operand strings on the command line.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates an arithmetic failure while preserving
// the original cause. This allows structured inspection of what went
// wrong during an operation (division by zero, parse failure, operand
// size limit) with errors.Is and errors.As.
type CalculationError struct {
	// Op is the name of the arithmetic operation that failed.
	Op string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the operation name and the message of the underlying
// cause.
func (e CalculationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents an operation timeout. It captures the
// operation name and the duration limit that was exceeded.
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

// MismatchError reports disagreement between multiplication algorithms
// run over the same operands during a verification pass.
type MismatchError struct {
	// Algorithms names the two disagreeing implementations.
	Algorithms [2]string
}

// Error returns a formatted message naming the disagreeing algorithms.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch between %s and %s", e.Algorithms[0], e.Algorithms[1])
}

// WrapError wraps an error with additional context using fmt.Errorf and
// %w. The wrapped error can be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or
// deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the application exit code it should produce.
// Context errors take precedence over wrapped typed errors so that a
// canceled run is reported as canceled even when the cancellation
// surfaced through an operation error.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	}

	var configErr ConfigError
	if errors.As(err, &configErr) {
		return ExitErrorConfig
	}
	var timeoutErr TimeoutError
	if errors.As(err, &timeoutErr) {
		return ExitErrorTimeout
	}
	var mismatchErr MismatchError
	if errors.As(err, &mismatchErr) {
		return ExitErrorMismatch
	}
	return ExitErrorGeneric
}
