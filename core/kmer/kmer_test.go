package kmer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSeq(r *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = letters[r.Intn(4)]
	}
	return out
}

// canonicalOf encodes a k-length slice both ways and keeps the smaller.
func canonicalOf(t *testing.T, s []byte) uint64 {
	t.Helper()
	fwd, ok := Encode(s)
	require.True(t, ok, "encode %s", s)
	rev, ok := Encode(ReverseComplement(s))
	require.True(t, ok, "encode rc %s", s)
	return min(fwd, rev)
}

func TestCode(t *testing.T) {
	for i, b := range []byte("ACGT") {
		c, ok := Code(b)
		require.True(t, ok)
		assert.Equal(t, uint64(i), c)

		lc, ok := Code(b + 'a' - 'A')
		require.True(t, ok)
		assert.Equal(t, c, lc, "lower case %c", b)
	}
	for _, b := range []byte("NnRX-. \n") {
		_, ok := Code(b)
		assert.False(t, ok, "symbol %q", b)
	}
}

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, []byte("GACT"), ReverseComplement([]byte("AGTC")))
	assert.Equal(t, []byte("tNgca"), ReverseComplement([]byte("tgcXa")))
	assert.Nil(t, ReverseComplement(nil))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v, ok := Encode([]byte("ACGTTGCA"))
	require.True(t, ok)
	assert.Equal(t, uint64(0b0001101111100100), v)
	assert.Equal(t, "ACGTTGCA", Decode(v, 8))

	_, ok = Encode([]byte("ACNT"))
	assert.False(t, ok)
}

func TestWindowTracksReverseComplement(t *testing.T) {
	const k = 5
	seq := []byte("ACGTTAGCCA")
	w := NewWindow(k)
	for i, b := range seq {
		got, ok := w.Push(b)
		if i+1 < k {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok)
		win := seq[i+1-k : i+1]
		fwd, _ := Encode(win)
		rev, _ := Encode(ReverseComplement(win))
		assert.Equal(t, fwd, w.Forward(), "forward at %d", i)
		assert.Equal(t, rev, w.Reverse(), "reverse at %d", i)
		assert.Equal(t, min(fwd, rev), got)
	}
}

func TestWindowInvalidResets(t *testing.T) {
	w := NewWindow(3)
	for _, b := range []byte("ACG") {
		w.Push(b)
	}
	require.Equal(t, 3, w.Valid())

	_, ok := w.Push('N')
	assert.False(t, ok)
	assert.Zero(t, w.Valid())
	assert.Zero(t, w.Forward())
	assert.Zero(t, w.Reverse())
}

func TestCounterCanonicalSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, k := range []int{3, 11, DefaultK, MaxK} {
		seq := randomSeq(r, 500)

		a, err := NewCounter(k, 0)
		require.NoError(t, err)
		b, err := NewCounter(k, 0)
		require.NoError(t, err)

		na := a.Add(seq)
		nb := b.Add(ReverseComplement(seq))
		assert.Equal(t, len(seq)-k+1, na)
		assert.Equal(t, na, nb)
		assert.Equal(t, a.Table(), b.Table(), "k=%d", k)
	}
}

func TestCounterAmbiguityReset(t *testing.T) {
	const k = 4
	seq := []byte("ACGTACNGTTGCA")
	p := 6

	c, err := NewCounter(k, 16)
	require.NoError(t, err)
	c.Add(seq)

	want := map[uint64]uint64{}
	for start := 0; start+k <= len(seq); start++ {
		if start <= p && p < start+k {
			continue
		}
		want[canonicalOf(t, seq[start:start+k])]++
	}
	assert.Equal(t, want, c.Table())

	// Nothing crossing the N made it in.
	for start := p - k + 1; start <= p; start++ {
		if start < 0 || start+k > len(seq) {
			continue
		}
		win := append([]byte(nil), seq[start:start+k]...)
		win[p-start] = 'A'
		assert.Zero(t, c.Count(canonicalOf(t, win)), "window at %d", start)
	}
}

func TestCounterShortAndEmpty(t *testing.T) {
	c, err := NewCounter(DefaultK, 0)
	require.NoError(t, err)
	assert.Zero(t, c.Add(nil))
	assert.Zero(t, c.Add([]byte("ACGT")))
	assert.Zero(t, c.Len())
}

func TestCounterCaseInsensitive(t *testing.T) {
	up, _ := NewCounter(5, 0)
	lo, _ := NewCounter(5, 0)
	up.Add([]byte("ACGGTCAAT"))
	lo.Add([]byte("acggtcaat"))
	assert.Equal(t, up.Table(), lo.Table())
}

func TestNewCounterRejectsBadK(t *testing.T) {
	for _, k := range []int{0, -1, MaxK + 1} {
		_, err := NewCounter(k, 0)
		assert.Error(t, err, "k=%d", k)
	}
}
