package seqio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// fastaReader concatenates the sequence lines of each '>' record.
type fastaReader struct {
	sc     *bufio.Scanner
	line   int
	record int
	inRec  bool // a header has been consumed and its body not yet returned
	done   bool
	seq    []byte
}

func (r *fastaReader) Next() ([]byte, error) {
	if r.done {
		return nil, io.EOF
	}
	if !r.inRec {
		// Only reached for the first record; later headers are consumed
		// while reading the previous body.
		for {
			if !r.sc.Scan() {
				r.done = true
				if err := r.sc.Err(); err != nil {
					return nil, fmt.Errorf("read fasta line %d: %w", r.line+1, err)
				}
				return nil, io.EOF
			}
			r.line++
			l := bytes.TrimSpace(r.sc.Bytes())
			if len(l) == 0 {
				continue
			}
			if l[0] != '>' {
				return nil, &MalformedRecordError{Format: "fasta", Record: 1, Line: r.line, Reason: "sequence data before first '>' header"}
			}
			r.inRec = true
			break
		}
	}

	r.record++
	r.seq = r.seq[:0]
	for r.sc.Scan() {
		r.line++
		l := bytes.TrimSpace(r.sc.Bytes())
		if len(l) > 0 && l[0] == '>' {
			return r.seq, nil
		}
		r.seq = append(r.seq, l...)
	}
	r.done = true
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("read fasta line %d: %w", r.line+1, err)
	}
	return r.seq, nil
}
