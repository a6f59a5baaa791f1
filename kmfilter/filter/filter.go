// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter selects potentially differential k-mers from a k-mer
// abundance matrix.
//
// A matrix holds one k-mer per line: the k-mer followed by white space
// separated integer abundances, one per sample. A k-mer is retained when
// it is absent (abundance zero) from enough samples and present (abundance
// at or above a minimum) in enough others. Abundances between zero and the
// minimum count towards neither. Retained lines are copied to the output
// byte for byte; the matrix is read in a single pass and never held in
// memory.
package filter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ProgressInterval is the number of examined rows between progress reports.
const ProgressInterval = 1 << 20

// Verdict is the outcome of examining one matrix row.
type Verdict struct {
	Samples int // Number of abundance values on the row.
	Zeros   int // Samples with zero abundance.
	Present int // Samples with at least the minimum abundance.
	Keep    bool
}

// Stats holds the counts of a filtering run.
type Stats struct {
	// Samples is the number of abundance values on the first
	// examined row. Later rows are assumed, but not checked, to
	// have the same number.
	Samples int

	Rows     int // Examined rows.
	Retained int // Rows written to the output.
}

// Filter is a k-mer matrix row filter. A Filter keeps the statistics of
// a single run and must not be used concurrently.
type Filter struct {
	cfg   Config
	stats Stats

	// Progress, if not nil, receives a progress line every
	// ProgressInterval examined rows.
	Progress io.Writer

	// Hist, if not nil, counts the absent and present samples
	// of every examined row.
	Hist *Histogram
}

// New returns a Filter using the given configuration.
func New(cfg Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Filter{cfg: cfg}, nil
}

// Config returns the configuration of the filter.
func (f *Filter) Config() Config { return f.cfg }

// Stats returns the statistics accumulated so far.
func (f *Filter) Stats() Stats { return f.stats }

// Eval examines a single matrix line and updates the run statistics.
// It returns false for a line without fields, which is not counted.
func (f *Filter) Eval(line string) (Verdict, bool) {
	start, end := nextField(line, 0)
	if start == len(line) {
		return Verdict{}, false
	}
	f.stats.Rows++

	var v Verdict
	for {
		start, end = nextField(line, end)
		if start == len(line) {
			break
		}
		v.Samples++
		switch a := ParseAbundance(line[start:end]); {
		case a == 0:
			v.Zeros++
		case a >= f.cfg.MinAbundance:
			v.Present++
		}
	}
	if f.stats.Rows == 1 {
		f.stats.Samples = v.Samples
	}

	v.Keep = f.cfg.Absent.Met(v.Zeros, f.stats.Samples) && f.cfg.Present.Met(v.Present, f.stats.Samples)
	if v.Keep {
		f.stats.Retained++
	}
	if f.Hist != nil {
		f.Hist.Add(v)
	}
	if f.Progress != nil && f.stats.Rows%ProgressInterval == 0 {
		fmt.Fprintf(f.Progress, "%d k-mers processed, %d retrieved\n", f.stats.Rows, f.stats.Retained)
	}
	return v, true
}

// Run reads the matrix in src and writes the retained lines to dst
// unchanged and in input order. It returns the statistics of the run.
// Reading stops at the end of src or at the first read or write error;
// lines retained before an error have already been written.
func (f *Filter) Run(dst io.Writer, src io.Reader) (Stats, error) {
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)
	for {
		line, err := r.ReadString('\n')
		if len(line) != 0 {
			v, ok := f.Eval(line)
			if ok && v.Keep {
				if _, werr := w.WriteString(line); werr != nil {
					return f.stats, errors.Wrap(werr, "write retained k-mer")
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			// The read error takes precedence over a flush error.
			w.Flush()
			return f.stats, errors.Wrap(err, "read matrix")
		}
	}
	if err := w.Flush(); err != nil {
		return f.stats, errors.Wrap(err, "write retained k-mer")
	}
	return f.stats, nil
}
