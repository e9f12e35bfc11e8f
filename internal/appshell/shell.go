// Package appshell adapts a run function to a process: signals in, exit code out.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"readstats/internal/cmdutil"
)

// RunFunc is the shape of cli.Execute.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with os.Args and exits. SIGINT/SIGTERM cancel the context.
func Main(run RunFunc) {
	os.Exit(Run(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Run is Main without the exit, for tests.
func Run(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitInterrupted
	}
	return code
}
