// core/stats/params.go
package stats

import (
	"errors"
	"fmt"

	"readstats-core/kmer"
)

// Params holds the heuristic knobs of the engine.
type Params struct {
	KmerLength          int    // bases per k-mer (1..kmer.MaxK)
	MinValidDepth       uint64 // lowest depth eligible as the coverage peak
	SamplingInterval    int    // count k-mers of every Nth read (1-based ordinal)
	ErrorCountThreshold uint64 // k-mers seen this often or less are treated as errors
	InitialKmerCapacity int    // table pre-size hint, not a cap
}

// DefaultParams returns the values used for real runs.
func DefaultParams() Params {
	return Params{
		KmerLength:          kmer.DefaultK,
		MinValidDepth:       10,
		SamplingInterval:    5,
		ErrorCountThreshold: 5,
		InitialKmerCapacity: 10_000_000,
	}
}

// ErrInvalidParams is wrapped by every Validate failure.
var ErrInvalidParams = errors.New("invalid parameters")

// Validate checks that p describes a usable engine.
func (p Params) Validate() error {
	switch {
	case p.KmerLength < 1 || p.KmerLength > kmer.MaxK:
		return fmt.Errorf("%w: kmer length %d not in [1,%d]", ErrInvalidParams, p.KmerLength, kmer.MaxK)
	case p.SamplingInterval < 1:
		return fmt.Errorf("%w: sampling interval %d must be >= 1", ErrInvalidParams, p.SamplingInterval)
	case p.MinValidDepth < 1:
		return fmt.Errorf("%w: min valid depth must be >= 1", ErrInvalidParams)
	case p.InitialKmerCapacity < 0:
		return fmt.Errorf("%w: initial kmer capacity %d is negative", ErrInvalidParams, p.InitialKmerCapacity)
	}
	return nil
}
