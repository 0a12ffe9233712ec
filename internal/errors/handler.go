package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// HandleReductionError prints a human-readable description of err and maps
// it to an exit code. A nil error yields ExitSuccess and prints nothing.
//
// Parameters:
//   - err: The error returned by a runner.
//   - duration: How long the run took before failing (0 if unknown).
//   - out: The writer for the message.
//
// Returns:
//   - int: The exit code matching the error class.
func HandleReductionError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration)
	}

	var (
		startErr    WorkerStartError
		overflowErr OverflowError
		configErr   ConfigError
		timeoutErr  TimeoutError
	)
	switch {
	case errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "Status: Timeout%s. Runner %q exceeded its %s time limit.\n", suffix, timeoutErr.Operation, timeoutErr.Limit)
		return ExitErrorTimeout
	case IsContextError(err):
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(out, "Status: Canceled%s.\n", suffix)
			return ExitErrorCanceled
		}
		fmt.Fprintf(out, "Status: Timeout%s. The run exceeded its time limit.\n", suffix)
		return ExitErrorTimeout
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "Status: Configuration error: %v\n", configErr)
		return ExitErrorConfig
	case errors.As(err, &startErr):
		fmt.Fprintf(out, "Status: Failure%s. Worker %d could not be started: %v\n", suffix, startErr.Worker, startErr.Cause)
		return ExitErrorGeneric
	case errors.As(err, &overflowErr):
		fmt.Fprintf(out, "Status: Failure%s. %v (rerun without -checked to allow wraparound).\n", suffix, overflowErr)
		return ExitErrorGeneric
	default:
		fmt.Fprintf(out, "Status: Failure%s. Unexpected error: %v\n", suffix, err)
		return ExitErrorGeneric
	}
}
