// internal/xopen/xopen.go

// Package xopen opens match and query files regardless of compression.
// Gzip and zstd are recognized by magic number with a file-suffix
// fallback; "-" reads stdin, sniffed the same way.
package xopen

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
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

// Open returns a reader for path, transparently decompressing gzip
// (1F 8B) and zstd (28 B5 2F FD) inputs. "-" is stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return Reader(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return wrap(fh, path)
}

// Reader wraps an already-open stream, decompressing by magic number.
// Closing the result does not close r.
func Reader(r io.Reader) (io.ReadCloser, error) {
	return wrap(io.NopCloser(r), "")
}

func wrap(rc io.ReadCloser, path string) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	sig, _ := br.Peek(4)
	switch {
	case isGzip(sig) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
	case isZstd(sig) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}
		zrc := zr.IOReadCloser()
		return &multiReadCloser{Reader: zrc, closers: []io.Closer{zrc, rc}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
}

func isGzip(sig []byte) bool {
	return len(sig) >= 2 && sig[0] == 0x1f && sig[1] == 0x8b
}

func isZstd(sig []byte) bool {
	return len(sig) >= 4 && sig[0] == 0x28 && sig[1] == 0xb5 && sig[2] == 0x2f && sig[3] == 0xfd
}
