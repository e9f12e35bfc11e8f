package kmer

// Window is the rolling 2-bit state for the last k valid bases of a read.
// It tracks the forward encoding and the reverse complement of the same
// bases side by side. The zero Window is unusable; build one with NewWindow.
type Window struct {
	k     int
	mask  uint64 // low 2*k bits
	top   uint   // shift that places a code in the highest base slot
	fwd   uint64
	rev   uint64
	valid int
}

// NewWindow returns an empty window for k-mers of length k (1..MaxK).
func NewWindow(k int) Window {
	return Window{
		k:    k,
		mask: (uint64(1) << (2 * uint(k))) - 1,
		top:  2 * uint(k-1),
	}
}

// K returns the window length in bases.
func (w *Window) K() int { return w.k }

// Push feeds one symbol. When the window holds k consecutive valid bases it
// returns the canonical encoding (min of forward and reverse complement) and
// true. An invalid symbol resets the window, so no k-mer spans it.
func (w *Window) Push(b byte) (uint64, bool) {
	code, ok := Code(b)
	if !ok {
		w.Reset()
		return 0, false
	}
	w.fwd = ((w.fwd << 2) | code) & w.mask
	w.rev = (w.rev >> 2) | ((code ^ 0b11) << w.top)
	w.valid++
	if w.valid < w.k {
		return 0, false
	}
	return min(w.fwd, w.rev), true
}

// Reset drops all state.
func (w *Window) Reset() {
	w.fwd, w.rev, w.valid = 0, 0, 0
}

// Forward returns the forward encoding of the current window.
func (w *Window) Forward() uint64 { return w.fwd }

// Reverse returns the reverse-complement encoding of the current window.
func (w *Window) Reverse() uint64 { return w.rev }

// Valid returns the number of valid bases seen since the last reset.
func (w *Window) Valid() int { return w.valid }
