// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"readstats-core/seqio"
	"readstats-core/stats"
)

// Config controls a single ingestion run.
type Config struct {
	Input         string // path, or "-" for stdin
	ProgressEvery uint64 // debug-log every N reads; 0 disables
}

// Result is a finalized run.
type Result struct {
	Summary stats.Summary
	Elapsed time.Duration
	// Warning holds a recoverable estimator outcome such as
	// stats.ErrInsufficientData. The summary is complete regardless.
	Warning error
}

// Run opens cfg.Input, feeds every record to eng in order, then finalizes.
// Open, parse and I/O failures are fatal and return no result. The context
// is only checked between records.
func Run(ctx context.Context, cfg Config, eng Ingester, log *slog.Logger) (Result, error) {
	rc, err := seqio.Open(cfg.Input)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", cfg.Input, err)
	}
	defer func() { _ = rc.Close() }()

	src, err := seqio.NewSource(rc)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", cfg.Input, err)
	}

	start := time.Now()
	var reads, bases uint64
	err = seqio.ForEach(ctx, src, func(seq []byte) error {
		if err := eng.Ingest(seq); err != nil {
			return err
		}
		reads++
		bases += uint64(len(seq))
		if cfg.ProgressEvery > 0 && reads%cfg.ProgressEvery == 0 {
			log.Debug("progress", "reads", humanize.Comma(int64(reads)), "bases", humanize.Comma(int64(bases)))
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	elapsed := time.Since(start)

	summary, err := eng.Finalize()
	res := Result{Summary: summary, Elapsed: elapsed}
	switch {
	case errors.Is(err, stats.ErrInsufficientData):
		log.Warn("genome size not estimated", "reason", err.Error())
		res.Warning = err
	case err != nil:
		return Result{}, fmt.Errorf("finalize: %w", err)
	}

	log.Info("ingest complete",
		"input", cfg.Input,
		"reads", summary.TotalReads,
		"bases", summary.TotalBases,
		"elapsed", elapsed.Round(time.Millisecond).String(),
	)
	return res, nil
}
