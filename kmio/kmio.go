// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kmio opens the input and output streams of the k-mer matrix tools.
//
// The name "-" refers to standard input or standard output. Compressed input
// is recognised by its magic bytes and output is compressed according to the
// file suffix. Uncompressed input is passed through byte for byte; an empty
// stream is valid input.
package kmio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	"github.com/ulikunitz/xz"
)

// Stdio is the file name for standard input and output.
const Stdio = "-"

const bufSize = 1 << 16

// compressed lists the file suffixes handled by a decompressor.
var compressed = []string{".gz", ".xz", ".zst", ".bz2"}

// Open returns a reader for the named matrix file. If useMmap is true and
// the file is a regular, non-empty, uncompressed file it is memory-mapped
// and read from the mapping; otherwise it is read through a buffer.
// Errors opening a named file are *os.PathError values.
func Open(path string, useMmap bool) (io.ReadCloser, error) {
	if path == Stdio {
		return NewReader(io.NopCloser(os.Stdin))
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: xopen.ErrDirNotSupported}
	}
	if useMmap && fi.Mode().IsRegular() && fi.Size() != 0 && !isCompressed(path) {
		return openMapped(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewReader(f)
}

// NewReader returns a buffered reader of rc, decompressing it if it starts
// with gzip, zstd, xz or bzip2 magic bytes. Closing the returned reader
// closes rc.
func NewReader(rc io.ReadCloser) (io.ReadCloser, error) {
	b := bufio.NewReaderSize(rc, bufSize)
	s := &stream{closers: []io.Closer{rc}}
	var (
		dec io.Reader
		err error
	)
	switch {
	case is(xopen.IsGzip(b)):
		var z *gzip.Reader
		z, err = gzip.NewReader(b)
		if err == nil {
			dec = z
			s.closers = append(s.closers, z)
		}
	case is(xopen.IsZst(b)):
		var z *zstd.Decoder
		z, err = zstd.NewReader(b)
		if err == nil {
			zr := z.IOReadCloser()
			dec = zr
			s.closers = append(s.closers, zr)
		}
	case is(xopen.IsXz(b)):
		dec, err = xz.NewReader(b)
	case is(xopen.IsBzip2(b)):
		var z *bzip2.Reader
		z, err = bzip2.NewReader(b, &bzip2.ReaderConfig{})
		if err == nil {
			dec = z
			s.closers = append(s.closers, z)
		}
	default:
		s.Reader = b
		return s, nil
	}
	if err != nil {
		rc.Close()
		return nil, errors.Wrap(err, "decompress")
	}
	s.Reader = bufio.NewReaderSize(dec, bufSize)
	return s, nil
}

// is reports whether a magic byte check matched. Streams shorter than the
// magic are plain.
func is(ok bool, err error) bool { return ok && err == nil }

// stream is a buffered, possibly decompressed, reader.
type stream struct {
	*bufio.Reader
	closers []io.Closer
}

// Close closes the decompressor, then the underlying reader.
func (s *stream) Close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if cerr := s.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Create returns a buffered writer for the named file. Output is compressed
// according to the file suffix. Close must be called to flush the output.
func Create(path string) (io.WriteCloser, error) {
	w, err := xopen.Wopen(path)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// OpenError returns err annotated as a failure to open the named file.
// The path is not repeated when err already names it.
func OpenError(what, path string, err error) error {
	if pe, ok := err.(*os.PathError); ok {
		err = pe.Err
	}
	return errors.Wrapf(err, "cannot open %s %q", what, path)
}

func isCompressed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range compressed {
		if ext == s {
			return true
		}
	}
	return false
}

// mapped is a read-only memory mapping of a whole file.
type mapped struct {
	*bytes.Reader
	f *os.File
	m mmap.MMap
}

func openMapped(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	return &mapped{Reader: bytes.NewReader(m), f: f, m: m}, nil
}

func (m *mapped) Close() error {
	err := m.m.Unmap()
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}
