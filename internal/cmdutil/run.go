package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Exit codes shared by every entry point.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// UsageError marks a bad invocation (flags, arguments).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError.
func Usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// ExitCode reports err on stderr (unless it needs no report) and maps it
// to a process exit code.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	if brokenPipe(err) {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(stderr, "Error: interrupted")
		return ExitInterrupted
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

	var ue *UsageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintln(stderr, "Run 'readstats --help' for usage.")
		return ExitUsage
	}
	return ExitFailure
}

// brokenPipe matches a report piped into a consumer (like `head`) that
// exited before reading it all. That is not a failure of the run.
func brokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
