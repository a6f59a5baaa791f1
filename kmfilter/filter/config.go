// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Default filter parameters.
const (
	DefaultMinAbundance = 10
	DefaultMinZeros     = 10
	DefaultMinNonZero   = 10
)

// Valid ranges of fractional thresholds.
const (
	MinAbsentFrac  = 0.01
	MaxAbsentFrac  = 0.99
	MinPresentFrac = 0.01
	MaxPresentFrac = 0.95
)

var (
	ErrAbsentFrac  = errors.New("absence fraction must be in the [0.01,0.99] interval")
	ErrPresentFrac = errors.New("presence fraction must be in the [0.01,0.95] interval")
)

// A Threshold is a minimum number of samples, given either as an
// absolute count or as a fraction of the samples in the matrix.
type Threshold struct {
	Count    int
	Fraction float64

	// IsFraction selects Fraction over Count.
	IsFraction bool
}

// Count returns an absolute threshold of n samples.
func Count(n int) Threshold { return Threshold{Count: n} }

// Fraction returns a threshold of f times the number of samples.
func Fraction(f float64) Threshold { return Threshold{Fraction: f, IsFraction: true} }

// Met reports whether n samples satisfy the threshold in a matrix with
// the given number of samples. Fractional thresholds are not rounded, so
// a fraction of 0.5 over 11 samples needs n >= 5.5.
func (t Threshold) Met(n, samples int) bool {
	if t.IsFraction {
		return float64(n) >= t.Fraction*float64(samples)
	}
	return n >= t.Count
}

func (t Threshold) String() string {
	if t.IsFraction {
		return fmt.Sprintf("%g of samples", t.Fraction)
	}
	return fmt.Sprintf("%d samples", t.Count)
}

// Config holds the parameters of a filtering run.
type Config struct {
	// MinAbundance is the abundance at or above which a sample
	// counts as holding the k-mer.
	MinAbundance int64

	// Absent is the number of samples with zero abundance a
	// k-mer needs to be retained.
	Absent Threshold

	// Present is the number of samples with at least MinAbundance
	// a k-mer needs to be retained.
	Present Threshold
}

// DefaultConfig returns the default configuration: an abundance of 10 is
// required for presence and 10 samples each must be absent and present.
func DefaultConfig() Config {
	return Config{
		MinAbundance: DefaultMinAbundance,
		Absent:       Count(DefaultMinZeros),
		Present:      Count(DefaultMinNonZero),
	}
}

// Validate checks the ranges of fractional thresholds.
func (c Config) Validate() error {
	if c.Absent.IsFraction && !inRange(c.Absent.Fraction, MinAbsentFrac, MaxAbsentFrac) {
		return errors.Wrapf(ErrAbsentFrac, "min_zero_frac %g", c.Absent.Fraction)
	}
	if c.Present.IsFraction && !inRange(c.Present.Fraction, MinPresentFrac, MaxPresentFrac) {
		return errors.Wrapf(ErrPresentFrac, "min_nz_frac %g", c.Present.Fraction)
	}
	return nil
}

func inRange(f, lo, hi float64) bool {
	return !math.IsNaN(f) && lo <= f && f <= hi
}
