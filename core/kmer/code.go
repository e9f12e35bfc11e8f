// core/kmer/code.go
package kmer

// MaxK is the largest k whose 2-bit packing still leaves headroom in a uint64.
const MaxK = 31

// DefaultK is the k-mer length used for genome-size estimation.
const DefaultK = 21

const invalid = 0xff

var (
	codes      [256]byte
	complement [256]byte
	letters    = [4]byte{'A', 'C', 'G', 'T'}
)

func init() {
	for i := range codes {
		codes[i] = invalid
		complement[i] = 'N'
	}
	codes['A'], codes['a'] = 0, 0
	codes['C'], codes['c'] = 1, 1
	codes['G'], codes['g'] = 2, 2
	codes['T'], codes['t'] = 3, 3

	complement['A'] = 'T'; complement['C'] = 'G'; complement['G'] = 'C'; complement['T'] = 'A'
	complement['a'] = 't'; complement['c'] = 'g'; complement['g'] = 'c'; complement['t'] = 'a'
}

// Code maps a nucleotide to its 2-bit code (A=0, C=1, G=2, T=3).
// ok is false for anything that is not A/C/G/T in either case.
func Code(b byte) (code uint64, ok bool) {
	c := codes[b]
	if c == invalid {
		return 0, false
	}
	return uint64(c), true
}

// ReverseComplement returns the reverse complement of seq.
// Symbols outside ACGT (either case) become 'N'.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

// Encode packs an exact-length k-mer. ok is false if seq holds an invalid
// symbol or is longer than MaxK.
func Encode(seq []byte) (uint64, bool) {
	if len(seq) > MaxK {
		return 0, false
	}
	var v uint64
	for _, b := range seq {
		c, ok := Code(b)
		if !ok {
			return 0, false
		}
		v = v<<2 | c
	}
	return v, true
}

// Decode unpacks the low 2*k bits of v into an upper-case k-mer.
func Decode(v uint64, k int) string {
	out := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = letters[v&3]
		v >>= 2
	}
	return string(out)
}
