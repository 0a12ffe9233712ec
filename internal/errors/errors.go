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
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between runners.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
	// Cause is the underlying failure, typically a ValidationError.
	Cause error
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// Unwrap returns the underlying failure, if any.
func (e ConfigError) Unwrap() error { return e.Cause }

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

// NewInvalidFieldError creates a ConfigError wrapping a ValidationError for
// field. The message is shared by both errors.
func NewInvalidFieldError(field, format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return ConfigError{Message: msg, Cause: ValidationError{Field: field, Message: msg}}
}

// ReductionError encapsulates a failed reduction while preserving the
// original cause and the name of the runner that produced it.
type ReductionError struct {
	// Runner is the name of the runner that failed (e.g., "parallel").
	Runner string
	// Cause is the underlying error that triggered this reduction error.
	Cause error
}

// Error returns the runner name followed by the cause message.
func (e ReductionError) Error() string {
	if e.Runner == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Runner, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e ReductionError) Unwrap() error { return e.Cause }

// WorkerStartError reports that a worker task could not be dispatched.
// The reduction is aborted as a whole rather than dropping the worker's block.
type WorkerStartError struct {
	// Worker is the index of the block whose task could not be started.
	Worker int
	// Cause is the reason reported by the dispatcher.
	Cause error
}

// Error returns a formatted message naming the worker.
func (e WorkerStartError) Error() string {
	return fmt.Sprintf("failed to start worker %d: %v", e.Worker, e.Cause)
}

// Unwrap returns the dispatcher's cause.
func (e WorkerStartError) Unwrap() error { return e.Cause }

// OverflowError is returned by checked reductions when an addition leaves the
// range of the accumulator type.
type OverflowError struct {
	// Stage is where the overflow was detected: "worker" or "join".
	Stage string
	// Worker is the block index, or -1 when Stage is "join".
	Worker int
}

// Error returns a formatted message describing where the overflow happened.
func (e OverflowError) Error() string {
	if e.Worker < 0 {
		return fmt.Sprintf("accumulator overflow during %s", e.Stage)
	}
	return fmt.Sprintf("accumulator overflow during %s %d", e.Stage, e.Worker)
}

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
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

// Unwrap reports a TimeoutError as a context.DeadlineExceeded.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

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

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
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

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
