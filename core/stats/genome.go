package stats

import (
	"errors"
	"fmt"
)

// ErrInsufficientData means no depth reached MinValidDepth, so there is no
// coverage peak to divide by.
var ErrInsufficientData = errors.New("insufficient data for peak detection")

// pruneErrors drops k-mers seen threshold times or fewer.
func pruneErrors(table map[uint64]uint64, threshold uint64) {
	for v, n := range table {
		if n <= threshold {
			delete(table, v)
		}
	}
}

// depthHistogram maps depth -> number of distinct k-mers at that depth.
// Singletons are ignored.
func depthHistogram(table map[uint64]uint64) map[uint64]uint64 {
	hist := make(map[uint64]uint64)
	for _, n := range table {
		if n > 1 {
			hist[n]++
		}
	}
	return hist
}

// peakDepth returns the most populated depth >= minDepth.
// Ties go to the smallest depth.
func peakDepth(hist map[uint64]uint64, minDepth uint64) (uint64, bool) {
	var (
		best     uint64
		bestFreq uint64
		found    bool
	)
	for depth, freq := range hist {
		if depth < minDepth {
			continue
		}
		if !found || freq > bestFreq || (freq == bestFreq && depth < best) {
			best, bestFreq, found = depth, freq, true
		}
	}
	return best, found
}

// estimateGenomeSize prunes table in place and divides the surviving k-mer
// total by the coverage peak.
func estimateGenomeSize(table map[uint64]uint64, p Params) (uint64, error) {
	pruneErrors(table, p.ErrorCountThreshold)

	peak, ok := peakDepth(depthHistogram(table), p.MinValidDepth)
	if !ok {
		return 0, fmt.Errorf("%w: no depth >= %d among %d k-mers", ErrInsufficientData, p.MinValidDepth, len(table))
	}

	var total uint64
	for _, n := range table {
		total += n
	}
	return total / peak, nil
}
