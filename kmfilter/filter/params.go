// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Params is a set of filter parameters read from a YAML document, for
// example
//
//	min_abundance: 5
//	min_zero_frac: 0.5
//	min_nonzero: 2
//
// Fields missing from the document are nil.
type Params struct {
	MinAbundance   *int64   `yaml:"min_abundance"`
	MinZeros       *int     `yaml:"min_zeros"`
	MinZeroFrac    *float64 `yaml:"min_zero_frac"`
	MinNonZero     *int     `yaml:"min_nonzero"`
	MinNonZeroFrac *float64 `yaml:"min_nz_frac"`
}

// ReadParams decodes parameters from r. Unknown keys are an error.
func ReadParams(r io.Reader) (Params, error) {
	var p Params
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&p)
	if err != nil && err != io.EOF {
		return Params{}, errors.Wrap(err, "decode parameters")
	}
	return p, nil
}

// LoadParams reads parameters from the named YAML file.
func LoadParams(path string) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return Params{}, errors.Wrap(err, "open parameters")
	}
	defer f.Close()
	p, err := ReadParams(f)
	if err != nil {
		return Params{}, errors.Wrap(err, path)
	}
	return p, nil
}

// Apply returns cfg updated with the parameters that are set. A fraction
// replaces its threshold with Fraction(f), so it wins over an absolute
// count given for the same threshold.
func (p Params) Apply(cfg Config) Config {
	if p.MinAbundance != nil {
		cfg.MinAbundance = *p.MinAbundance
	}
	if p.MinZeros != nil {
		cfg.Absent.Count = *p.MinZeros
	}
	if p.MinZeroFrac != nil {
		cfg.Absent = Fraction(*p.MinZeroFrac)
	}
	if p.MinNonZero != nil {
		cfg.Present.Count = *p.MinNonZero
	}
	if p.MinNonZeroFrac != nil {
		cfg.Present = Fraction(*p.MinNonZeroFrac)
	}
	return cfg
}
