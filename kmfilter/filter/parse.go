// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "strconv"

// isSep reports whether b separates the fields of a matrix line.
func isSep(b byte) bool { return b == ' ' || b == '\t' || b == '\n' }

// nextField returns the bounds of the first field of s at or after i.
// If there is no such field, start is len(s).
func nextField(s string, i int) (start, end int) {
	for i < len(s) && isSep(s[i]) {
		i++
	}
	start = i
	for i < len(s) && !isSep(s[i]) {
		i++
	}
	return start, i
}

// ParseAbundance parses an abundance value leniently, in the manner of
// C's strtol: leading white space is skipped, then an optional sign and
// the longest run of decimal digits are read and anything following is
// ignored. A token without digits parses as zero, so malformed values
// count as absent. Values outside the int64 range saturate.
func ParseAbundance(tok string) int64 {
	i := 0
	for i < len(tok) && isSpace(tok[i]) {
		i++
	}
	start := i
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	digits := i
	for i < len(tok) && '0' <= tok[i] && tok[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}
	// Only range errors are possible here and v is then saturated.
	v, _ := strconv.ParseInt(tok[start:i], 10, 64)
	return v
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
