// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/check.v1"
)

func (s *S) TestReadParams(c *check.C) {
	for i, t := range []struct {
		doc  string
		want Config
		err  string
	}{
		{
			doc:  "",
			want: DefaultConfig(),
		},
		{
			doc:  "min_abundance: 5\nmin_zeros: 3\nmin_nonzero: 4\n",
			want: config(5, Count(3), Count(4)),
		},
		{
			doc:  "min_zero_frac: 0.5\nmin_nz_frac: 0.2\n",
			want: config(10, Fraction(0.5), Fraction(0.2)),
		},
		{
			// A fraction wins over a count for the same threshold.
			doc: "min_zeros: 3\nmin_zero_frac: 0.5\n",
			want: config(10, Fraction(0.5), Count(10)),
		},
		{
			doc: "min_abundnace: 5\n",
			err: "(?s)decode parameters: .*min_abundnace.*",
		},
		{
			doc: "min_zeros: many\n",
			err: "(?s)decode parameters: .*",
		},
	} {
		p, err := ReadParams(strings.NewReader(t.doc))
		if t.err != "" {
			c.Check(err, check.ErrorMatches, t.err, check.Commentf("Test %d", i))
			continue
		}
		c.Assert(err, check.IsNil, check.Commentf("Test %d", i))
		c.Check(p.Apply(DefaultConfig()), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestApplyReplacesCount(c *check.C) {
	zf, nf := 0.4, 0.3
	p := Params{MinZeroFrac: &zf, MinNonZeroFrac: &nf}
	got := p.Apply(config(7, Count(3), Count(4)))
	c.Check(got, check.Equals, config(7, Fraction(0.4), Fraction(0.3)))
	c.Check(got.Absent.Count, check.Equals, 0)
	c.Check(got.Present.Count, check.Equals, 0)
}

func (s *S) TestLoadParams(c *check.C) {
	path := filepath.Join(c.MkDir(), "params.yaml")
	err := os.WriteFile(path, []byte("min_abundance: 2\nmin_nz_frac: 0.1\n"), 0o644)
	c.Assert(err, check.IsNil)

	p, err := LoadParams(path)
	c.Assert(err, check.IsNil)
	c.Check(*p.MinAbundance, check.Equals, int64(2))
	c.Check(p.MinZeros, check.IsNil)
	c.Check(p.Apply(DefaultConfig()), check.Equals, config(2, Count(10), Fraction(0.1)))

	_, err = LoadParams(filepath.Join(c.MkDir(), "missing.yaml"))
	c.Check(err, check.ErrorMatches, "open parameters: .*missing.yaml.*")
}
