// core/seqio/fastq.go
package seqio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// fastqReader parses four-line FASTQ records. Multi-line FASTQ is not
// supported; a wrapped record shows up as a quality/sequence mismatch.
type fastqReader struct {
	sc     *bufio.Scanner
	line   int
	record int
	seq    []byte
}

func (r *fastqReader) scan() ([]byte, bool) {
	if !r.sc.Scan() {
		return nil, false
	}
	r.line++
	return bytes.TrimSuffix(r.sc.Bytes(), []byte{'\r'}), true
}

func (r *fastqReader) malformed(reason string, a ...any) error {
	return &MalformedRecordError{Format: "fastq", Record: r.record, Line: r.line, Reason: fmt.Sprintf(reason, a...)}
}

// ioErr wraps a scanner failure, or reports a record cut short by EOF.
func (r *fastqReader) ioErr(what string) error {
	if err := r.sc.Err(); err != nil {
		return fmt.Errorf("read fastq line %d: %w", r.line+1, err)
	}
	return r.malformed("truncated record: missing %s", what)
}

func (r *fastqReader) Next() ([]byte, error) {
	var header []byte
	for {
		l, ok := r.scan()
		if !ok {
			if err := r.sc.Err(); err != nil {
				return nil, fmt.Errorf("read fastq line %d: %w", r.line+1, err)
			}
			return nil, io.EOF
		}
		if len(l) > 0 {
			header = l
			break
		}
	}
	r.record++
	if header[0] != '@' {
		return nil, r.malformed("header must start with '@', got %q", header[0])
	}

	seq, ok := r.scan()
	if !ok {
		return nil, r.ioErr("sequence line")
	}
	r.seq = append(r.seq[:0], seq...)

	plus, ok := r.scan()
	if !ok {
		return nil, r.ioErr("'+' line")
	}
	if len(plus) == 0 || plus[0] != '+' {
		return nil, r.malformed("separator line must start with '+'")
	}

	qual, ok := r.scan()
	if !ok {
		return nil, r.ioErr("quality line")
	}
	if len(qual) != len(r.seq) {
		return nil, r.malformed("quality length %d != sequence length %d", len(qual), len(r.seq))
	}
	return r.seq, nil
}
