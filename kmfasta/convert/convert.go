// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert writes the k-mers of a k-mer abundance matrix as FASTA
// records named by their 1-based output index.
package convert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// IsNucleotide reports whether b is one of ACGTN in either case. N is
// accepted so that k-mers spanning unknown bases are still written.
func IsNucleotide(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'N', 'a', 'c', 'g', 't', 'n':
		return true
	}
	return false
}

// ValidKmer reports whether every byte of s is a nucleotide.
func ValidKmer(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsNucleotide(s[i]) {
			return false
		}
	}
	return true
}

// Converter converts matrix lines to FASTA records.
type Converter struct {
	// Width is the sequence line width of written records. If zero,
	// the length of the first written k-mer is used.
	Width int

	// Warn, if not nil, receives a warning for each line that
	// does not hold a valid k-mer.
	Warn io.Writer
}

// Run reads matrix lines from src and writes a FASTA record to dst for
// each valid k-mer, the first field of the line. Empty lines are skipped
// silently. It returns the number of records written.
func (c *Converter) Run(dst io.Writer, src io.Reader) (int, error) {
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)
	var (
		fw      *fasta.Writer
		line    int
		written int
	)
	for {
		text, err := r.ReadString('\n')
		if len(text) != 0 {
			line++
			kmer, ok := c.kmer(strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r"), line)
			if ok {
				if fw == nil {
					width := c.Width
					if width <= 0 {
						width = len(kmer)
					}
					fw = fasta.NewWriter(w, width)
				}
				written++
				s := linear.NewSeq(strconv.Itoa(written), alphabet.BytesToLetters([]byte(kmer)), alphabet.DNA)
				if _, werr := fw.Write(s); werr != nil {
					return written - 1, errors.Wrap(werr, "write k-mer")
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			// The read error takes precedence over a flush error.
			w.Flush()
			return written, errors.Wrap(err, "read matrix")
		}
	}
	if err := w.Flush(); err != nil {
		return written, errors.Wrap(err, "write k-mer")
	}
	return written, nil
}

// kmer returns the k-mer field of a line without its terminator.
func (c *Converter) kmer(text string, line int) (string, bool) {
	if len(text) == 0 {
		return "", false
	}
	f := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == '\t' })
	if len(f) == 0 {
		c.warnf("[warning] invalid k-mer at line %d\n", line)
		return "", false
	}
	if !ValidKmer(f[0]) {
		c.warnf("[warning] invalid k-mer at line %d: %s\n", line, f[0])
		return "", false
	}
	return f[0], true
}

func (c *Converter) warnf(format string, args ...interface{}) {
	if c.Warn != nil {
		fmt.Fprintf(c.Warn, format, args...)
	}
}
