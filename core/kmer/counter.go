package kmer

import "fmt"

// Counter tallies canonical k-mers across reads.
type Counter struct {
	k     int
	table map[uint64]uint64
}

// NewCounter returns a Counter for k-mers of length k. capacityHint pre-sizes
// the table to avoid rehashing on large inputs; it is not a limit.
func NewCounter(k, capacityHint int) (*Counter, error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("kmer length %d out of range [1,%d]", k, MaxK)
	}
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Counter{k: k, table: make(map[uint64]uint64, capacityHint)}, nil
}

// K returns the k-mer length.
func (c *Counter) K() int { return c.k }

// Add counts every canonical k-mer of seq and returns how many were counted.
// Windows never span an invalid symbol.
func (c *Counter) Add(seq []byte) int {
	w := NewWindow(c.k)
	n := 0
	for _, b := range seq {
		if v, ok := w.Push(b); ok {
			c.table[v]++
			n++
		}
	}
	return n
}

// Len returns the number of distinct canonical k-mers.
func (c *Counter) Len() int { return len(c.table) }

// Count returns the occurrences of canonical k-mer v.
func (c *Counter) Count(v uint64) uint64 { return c.table[v] }

// Table exposes the underlying counts. The map stays owned by the Counter;
// callers may prune it but must not retain it.
func (c *Counter) Table() map[uint64]uint64 { return c.table }
