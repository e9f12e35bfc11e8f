// core/seqio/open.go
package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

const bufSize = 512 * 1024

var (
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over the decompressed contents of path ("-" is stdin).
// Gzip (multi-member) and lz4 frames are detected by magic bytes or by a
// .gz / .lz4 suffix.
func Open(path string) (io.ReadCloser, error) {
	var (
		raw     io.Reader
		closers []io.Closer
	)
	if path == "-" {
		raw = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		raw = fh
		closers = append(closers, fh)
	}

	br := bufio.NewReaderSize(raw, bufSize)
	// A short or failed peek is fine here; the next Read reports it.
	sig, _ := br.Peek(len(lz4Magic))

	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			closeAll(closers)
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		return &multiReadCloser{Reader: gr, closers: append([]io.Closer{gr}, closers...)}, nil
	case bytes.HasPrefix(sig, lz4Magic) || strings.HasSuffix(path, ".lz4"):
		return &multiReadCloser{Reader: lz4.NewReader(br), closers: closers}, nil
	}
	return &multiReadCloser{Reader: br, closers: closers}, nil
}

func closeAll(cs []io.Closer) {
	for _, c := range cs {
		_ = c.Close()
	}
}
