// core/stats/engine.go
package stats

import (
	"errors"

	"readstats-core/kmer"
)

var (
	// ErrFinalized is returned by Ingest once results have been computed.
	ErrFinalized = errors.New("engine already finalized")
	// ErrEstimationDisabled is returned by GenomeSize when the engine was
	// built without genome-size estimation.
	ErrEstimationDisabled = errors.New("genome size estimation disabled")
)

// Summary is everything a report needs from a finished run.
// N50 is nil when no reads were seen. GenomeSize is nil when estimation was
// disabled or found no depth peak.
type Summary struct {
	TotalReads        uint64
	TotalBases        uint64
	N50               *int
	GenomeSize        *uint64
	UniqueKmers       int
	UniqueReadLengths int
}

// Engine accumulates read statistics one sequence at a time.
// It is not safe for concurrent use; a single goroutine owns it.
type Engine struct {
	p              Params
	estimateGenome bool

	lengths lengthHistogram
	kmers   *kmer.Counter // nil unless estimateGenome
	sampled uint64

	frozen    bool
	n50       *int
	genome    *uint64
	genomeErr error
}

// New returns an empty engine. When estimateGenome is false no k-mer table
// is allocated and reads are never hashed.
func New(p Params, estimateGenome bool) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{p: p, estimateGenome: estimateGenome, lengths: newLengthHistogram()}
	if estimateGenome {
		c, err := kmer.NewCounter(p.KmerLength, p.InitialKmerCapacity)
		if err != nil {
			return nil, err
		}
		e.kmers = c
	}
	return e, nil
}

// Ingest accounts one read. Every SamplingInterval-th read (1-based) is also
// fed to the k-mer counter when estimation is enabled.
func (e *Engine) Ingest(seq []byte) error {
	if e.frozen {
		return ErrFinalized
	}
	e.lengths.add(len(seq))
	if e.kmers != nil && e.lengths.totalReads%uint64(e.p.SamplingInterval) == 0 {
		e.kmers.Add(seq)
		e.sampled++
	}
	return nil
}

// TotalReads returns the number of ingested reads.
func (e *Engine) TotalReads() uint64 { return e.lengths.totalReads }

// TotalBases returns the summed length of all ingested reads.
func (e *Engine) TotalBases() uint64 { return e.lengths.totalBases }

// SampledReads returns how many reads went through the k-mer counter.
func (e *Engine) SampledReads() uint64 { return e.sampled }

// UniqueKmers returns the current k-mer table size (0 when disabled).
func (e *Engine) UniqueKmers() int {
	if e.kmers == nil {
		return 0
	}
	return e.kmers.Len()
}

// LengthHistogram returns a copy of the length histogram, longest first.
func (e *Engine) LengthHistogram() []LengthBucket { return e.lengths.buckets() }

// N50 computes the N50 once and caches it. It freezes the engine.
func (e *Engine) N50() int {
	e.frozen = true
	if e.n50 == nil {
		v := e.lengths.n50()
		e.n50 = &v
	}
	return *e.n50
}

// GenomeSize runs the estimator once and caches the outcome, error included.
// The estimator prunes the k-mer table, so this freezes the engine.
func (e *Engine) GenomeSize() (uint64, error) {
	if !e.estimateGenome {
		return 0, ErrEstimationDisabled
	}
	e.frozen = true
	if e.genome == nil && e.genomeErr == nil {
		v, err := estimateGenomeSize(e.kmers.Table(), e.p)
		if err != nil {
			e.genomeErr = err
		} else {
			e.genome = &v
		}
	}
	if e.genomeErr != nil {
		return 0, e.genomeErr
	}
	return *e.genome, nil
}

// Finalize computes every result and returns the summary. An insufficient
// depth peak leaves GenomeSize nil; the error is still returned alongside
// the summary so callers can report it. Calling Finalize again is cheap.
func (e *Engine) Finalize() (Summary, error) {
	n50 := e.N50()
	s := Summary{
		TotalReads:        e.lengths.totalReads,
		TotalBases:        e.lengths.totalBases,
		UniqueReadLengths: len(e.lengths.counts),
	}
	if len(e.lengths.counts) > 0 {
		s.N50 = &n50
	}
	if !e.estimateGenome {
		return s, nil
	}
	gs, err := e.GenomeSize()
	s.UniqueKmers = e.kmers.Len()
	if err != nil {
		return s, err
	}
	s.GenomeSize = &gs
	return s, nil
}
