// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"math"

	"github.com/pkg/errors"
	"gopkg.in/check.v1"
)

func (s *S) TestValidate(c *check.C) {
	for i, t := range []struct {
		cfg  Config
		want error
	}{
		{cfg: DefaultConfig(), want: nil},
		{cfg: config(-1, Count(-5), Count(0)), want: nil},
		{cfg: config(10, Fraction(0.01), Fraction(0.01)), want: nil},
		{cfg: config(10, Fraction(0.99), Fraction(0.95)), want: nil},
		{cfg: config(10, Fraction(0.005), Count(1)), want: ErrAbsentFrac},
		{cfg: config(10, Fraction(1), Count(1)), want: ErrAbsentFrac},
		{cfg: config(10, Fraction(math.NaN()), Count(1)), want: ErrAbsentFrac},
		{cfg: config(10, Count(1), Fraction(0.96)), want: ErrPresentFrac},
		{cfg: config(10, Count(1), Fraction(0)), want: ErrPresentFrac},
		{cfg: config(10, Count(1), Fraction(math.NaN())), want: ErrPresentFrac},
		// Absolute counts ignore an out of range fraction.
		{cfg: config(10, Threshold{Count: 2, Fraction: 7}, Count(1)), want: nil},
	} {
		err := t.cfg.Validate()
		c.Check(errors.Cause(err), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestValidateMessage(c *check.C) {
	err := config(10, Fraction(2), Count(1)).Validate()
	c.Check(err, check.ErrorMatches, `min_zero_frac 2: absence fraction must be in the \[0\.01,0\.99\] interval`)
	err = config(10, Count(1), Fraction(0.99)).Validate()
	c.Check(err, check.ErrorMatches, `min_nz_frac 0\.99: presence fraction must be in the \[0\.01,0\.95\] interval`)
}

func (s *S) TestThresholdMet(c *check.C) {
	for i, t := range []struct {
		thresh  Threshold
		n       int
		samples int
		want    bool
	}{
		{thresh: Count(3), n: 3, samples: 5, want: true},
		{thresh: Count(3), n: 2, samples: 5, want: false},
		{thresh: Count(0), n: 0, samples: 0, want: true},
		{thresh: Count(-1), n: 0, samples: 5, want: true},
		{thresh: Fraction(0.5), n: 5, samples: 11, want: false},
		{thresh: Fraction(0.5), n: 6, samples: 11, want: true},
		{thresh: Fraction(0.2), n: 1, samples: 5, want: true},
		{thresh: Fraction(0.2), n: 0, samples: 5, want: false},
		{thresh: Fraction(0.9), n: 0, samples: 0, want: true},
	} {
		c.Check(t.thresh.Met(t.n, t.samples), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestThresholdString(c *check.C) {
	c.Check(Count(10).String(), check.Equals, "10 samples")
	c.Check(Fraction(0.25).String(), check.Equals, "0.25 of samples")
}
