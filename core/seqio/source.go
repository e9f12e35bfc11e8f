package seqio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// Source yields one raw sequence per call and io.EOF once exhausted.
// The returned slice is only valid until the next call.
type Source interface {
	Next() ([]byte, error)
}

// MalformedRecordError reports input that cannot be parsed as a record.
// It is fatal for the run.
type MalformedRecordError struct {
	Format string // "fastq", "fasta" or "" when the format is unknown
	Record int    // 1-based record ordinal
	Line   int    // 1-based line number
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("%s record %d (line %d): %s", e.Format, e.Record, e.Line, e.Reason)
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return sc
}

// NewSource sniffs the first non-blank byte of r: '@' selects FASTQ and
// '>' selects FASTA. Empty input gives a source that is immediately
// exhausted.
func NewSource(r io.Reader) (Source, error) {
	br := bufio.NewReaderSize(r, bufSize)
	line := 1
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return emptySource{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		switch b {
		case '\n':
			line++
			continue
		case '\r', ' ', '\t':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		switch b {
		case '@':
			return &fastqReader{sc: newScanner(br), line: line - 1}, nil
		case '>':
			return &fastaReader{sc: newScanner(br), line: line - 1}, nil
		}
		return nil, &MalformedRecordError{Line: line, Reason: fmt.Sprintf("unrecognized record start %q (want '@' or '>')", b)}
	}
}

type emptySource struct{}

func (emptySource) Next() ([]byte, error) { return nil, io.EOF }

// ForEach drains src into emit. The context is checked between records;
// emit errors stop the walk and are returned as is.
func ForEach(ctx context.Context, src Source, emit func(seq []byte) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		seq, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(seq); err != nil {
			return err
		}
	}
}
