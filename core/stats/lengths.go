package stats

import "sort"

// LengthBucket is one entry of the read-length histogram.
type LengthBucket struct {
	Length int
	Count  uint64
}

// lengthHistogram accumulates read totals and a length -> count map.
// totalBases always equals the sum of Length*Count over all buckets.
type lengthHistogram struct {
	totalReads uint64
	totalBases uint64
	counts     map[int]uint64
}

func newLengthHistogram() lengthHistogram {
	return lengthHistogram{counts: make(map[int]uint64, 1<<10)}
}

func (h *lengthHistogram) add(length int) {
	h.totalReads++
	h.totalBases += uint64(length)
	h.counts[length]++
}

// buckets returns the histogram sorted by descending length.
func (h *lengthHistogram) buckets() []LengthBucket {
	out := make([]LengthBucket, 0, len(h.counts))
	for l, c := range h.counts {
		out = append(out, LengthBucket{Length: l, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Length > out[j].Length })
	return out
}

// n50 walks lengths longest first and returns the first length at which the
// cumulative bases reach half of the total. Empty histogram gives 0.
func (h *lengthHistogram) n50() int {
	half := h.totalBases / 2
	var cumulative uint64
	for _, b := range h.buckets() {
		cumulative += uint64(b.Length) * b.Count
		if cumulative >= half {
			return b.Length
		}
	}
	return 0
}
