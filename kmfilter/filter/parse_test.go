// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"math"

	"gopkg.in/check.v1"
)

func (s *S) TestParseAbundance(c *check.C) {
	for i, t := range []struct {
		tok  string
		want int64
	}{
		{tok: "12", want: 12},
		{tok: "0", want: 0},
		{tok: "007", want: 7},
		{tok: "-3", want: -3},
		{tok: "+7", want: 7},
		{tok: "12abc", want: 12},
		{tok: "12.9", want: 12},
		{tok: "0x1F", want: 0},
		{tok: "abc", want: 0},
		{tok: "", want: 0},
		{tok: "-", want: 0},
		{tok: "+-4", want: 0},
		{tok: "12\r", want: 12},
		{tok: "\r\v12", want: 12},
		{tok: "99999999999999999999", want: math.MaxInt64},
		{tok: "-99999999999999999999", want: math.MinInt64},
	} {
		c.Check(ParseAbundance(t.tok), check.Equals, t.want, check.Commentf("Test %d: %q", i, t.tok))
	}
}

func (s *S) TestNextField(c *check.C) {
	for i, t := range []struct {
		line string
		want []string
	}{
		{line: "", want: nil},
		{line: " \t\n", want: nil},
		{line: "kmer", want: []string{"kmer"}},
		{line: "kmer 1\t2  3\n", want: []string{"kmer", "1", "2", "3"}},
		{line: "\t kmer\r 1 \n", want: []string{"kmer\r", "1"}},
	} {
		var got []string
		for start, end := nextField(t.line, 0); start < len(t.line); start, end = nextField(t.line, end) {
			got = append(got, t.line[start:end])
		}
		c.Check(got, check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}
}
