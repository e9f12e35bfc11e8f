// Package cli wires the readstats command line onto internal/app.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"readstats/internal/app"
	"readstats/internal/cmdutil"
	"readstats/internal/version"
)

// NewRootCommand builds the readstats command tree writing to stdout/stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "readstats [flags] INPUT",
		Short: "Read length statistics and k-mer genome size estimation",
		Long: `readstats summarizes a FASTQ or FASTA file (plain, gzip or lz4; "-" for stdin):
read and base totals, read length N50 and, with --genome-size, a genome size
estimate from the depth peak of sampled canonical k-mers.`,
		Args:          exactlyOneInput,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			if err := validate(opts); err != nil {
				return err
			}
			return app.Run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cmdutil.UsageError{Err: err}
	})

	bindFlags(rootCmd, &opts)
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "readstats %s\n", version.Version)
			return err
		},
	}
}

// Execute runs argv and returns the process exit code.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		// cobra falls back to os.Args on a nil slice.
		argv = []string{}
	}
	rootCmd := NewRootCommand(stdout, stderr)
	rootCmd.SetArgs(argv)
	return cmdutil.ExitCode(rootCmd.ExecuteContext(ctx), stderr)
}
