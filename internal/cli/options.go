// internal/cli/options.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"readstats/internal/app"
	"readstats/internal/cmdutil"
	"readstats/internal/writers"
)

// bindFlags registers every run flag on cmd, writing into o.
func bindFlags(cmd *cobra.Command, o *app.Options) {
	fs := cmd.Flags()
	fs.SortFlags = false

	fs.BoolVarP(&o.EstimateGenome, "genome-size", "g", false, "estimate genome size from k-mer depth")
	fs.StringVarP(&o.Output, "output", "o", app.DefaultOutput, `report path, "-" for stdout`)
	fs.StringVarP(&o.Format, "format", "f", app.DefaultFormat, "report format: "+strings.Join(writers.Formats(), " | "))
	fs.StringVar(&o.MetricsFile, "metrics-file", "", "also write Prometheus textfile metrics to this path")
	fs.StringVar(&o.ConfigPath, "config", "", "config file (default: .readstats.yaml in CWD or $HOME)")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "debug logging")
	fs.StringVar(&o.LogFormat, "log-format", cmdutil.LogFormatText, "log encoding on stderr: text | json")
}

// validate checks flag combinations that cobra cannot express.
func validate(o app.Options) error {
	if o.Output == "" {
		return cmdutil.Usagef("--output must not be empty")
	}
	if !writers.Known(o.Format) {
		return cmdutil.Usagef("invalid --format %q (want one of %s)", o.Format, strings.Join(writers.Formats(), ", "))
	}
	switch o.LogFormat {
	case cmdutil.LogFormatText, cmdutil.LogFormatJSON:
	default:
		return cmdutil.Usagef("invalid --log-format %q", o.LogFormat)
	}
	if o.MetricsFile != "" && o.MetricsFile == o.Output {
		return cmdutil.Usagef("--metrics-file and --output point to the same file %q", o.Output)
	}
	return nil
}

func exactlyOneInput(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &cmdutil.UsageError{Err: fmt.Errorf("expected exactly one INPUT (path or -), got %d", len(args))}
	}
	return nil
}
