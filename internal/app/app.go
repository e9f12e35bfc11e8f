// internal/app/app.go
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"

	"readstats-core/stats"
	"readstats/internal/cmdutil"
	"readstats/internal/config"
	"readstats/internal/metrics"
	"readstats/internal/pipeline"
	"readstats/internal/writers"
)

// Defaults for the report destination.
const (
	DefaultOutput = "read_stats.yaml"
	DefaultFormat = "yaml"

	// StdStream selects stdin for the input or stdout for the report.
	StdStream = "-"
)

const progressEvery = 1_000_000

// Options is everything one invocation needs, already parsed.
type Options struct {
	Input          string
	Output         string
	Format         string
	MetricsFile    string
	ConfigPath     string
	EstimateGenome bool

	Quiet     bool
	Verbose   bool
	LogFormat string
}

// Run ingests opts.Input and writes the report. Nothing is written unless
// the whole input was consumed; an interrupted or failed run leaves no
// artifact behind.
func Run(ctx context.Context, opts Options, stdout, stderr io.Writer) error {
	log, err := cmdutil.NewLogger(stderr, cmdutil.LogLevel(opts.Quiet, opts.Verbose), opts.LogFormat)
	if err != nil {
		return cmdutil.Usagef("%v", err)
	}
	if !writers.Known(opts.Format) {
		return cmdutil.Usagef("unknown format %q (want one of %v)", opts.Format, writers.Formats())
	}

	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	eng, err := stats.New(cfg.Params(), opts.EstimateGenome)
	if err != nil {
		return err
	}
	log.Debug("engine ready",
		"k", cfg.Kmer.Length,
		"genome_size", opts.EstimateGenome,
		"sampling_interval", cfg.Kmer.SamplingInterval,
		"table_hint", humanize.Comma(int64(cfg.Kmer.InitialCapacity)),
	)

	res, err := pipeline.Run(ctx, pipeline.Config{Input: opts.Input, ProgressEvery: progressEvery}, eng, log)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writers.Write(opts.Format, &buf, res.Summary); err != nil {
		return fmt.Errorf("render %s report: %w", opts.Format, err)
	}
	if err := emit(opts.Output, buf.Bytes(), stdout); err != nil {
		return err
	}
	if opts.Output != StdStream {
		log.Info("report written", "path", opts.Output, "format", opts.Format, "size", humanize.Bytes(uint64(buf.Len())))
	}

	if opts.MetricsFile != "" {
		if err := metrics.WriteTextfile(opts.MetricsFile, res.Summary, res.Elapsed, inputLabels(opts.Input)); err != nil {
			return err
		}
		log.Debug("metrics written", "path", opts.MetricsFile)
	}
	return nil
}

func emit(output string, data []byte, stdout io.Writer) error {
	if output == StdStream {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	return writers.WriteFileAtomic(output, data)
}

func inputLabels(input string) prometheus.Labels {
	name := "stdin"
	if input != StdStream {
		name = filepath.Base(input)
	}
	return prometheus.Labels{"input": name}
}
