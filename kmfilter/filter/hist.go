// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// A Histogram counts examined rows by their number of absent samples and
// by their number of present samples. Absent[i] is the number of rows with
// i zero-valued samples, Present[i] the number with i present samples.
// Its size depends on the number of samples, not the number of rows.
type Histogram struct {
	Absent  []int
	Present []int
}

// Add records the counts of one row.
func (h *Histogram) Add(v Verdict) {
	h.Absent = bump(h.Absent, v.Zeros)
	h.Present = bump(h.Present, v.Present)
}

func bump(c []int, i int) []int {
	for len(c) <= i {
		c = append(c, 0)
	}
	c[i]++
	return c
}

// Rows returns the number of rows recorded.
func (h *Histogram) Rows() int {
	var n int
	for _, v := range h.Absent {
		n += v
	}
	return n
}

// MeanAbsent returns the mean number of absent samples per row.
func (h *Histogram) MeanAbsent() float64 { return mean(h.Absent) }

// MeanPresent returns the mean number of present samples per row.
func (h *Histogram) MeanPresent() float64 { return mean(h.Present) }

func mean(counts []int) float64 {
	x := make([]float64, len(counts))
	w := make([]float64, len(counts))
	var n float64
	for i, c := range counts {
		x[i] = float64(i)
		w[i] = float64(c)
		n += w[i]
	}
	if n == 0 {
		return 0
	}
	return stat.Mean(x, w)
}

// Plot draws both distributions as a bar chart and saves it to path. The
// image format is taken from the file extension.
func (h *Histogram) Plot(path string) error {
	n := len(h.Absent)
	if len(h.Present) > n {
		n = len(h.Present)
	}
	if n == 0 {
		n = 1
	}

	p := plot.New()
	p.Title.Text = "k-mer sample counts"
	p.X.Label.Text = "samples"
	p.Y.Label.Text = "k-mers"

	const width = vg.Length(6)
	absent, err := plotter.NewBarChart(values(h.Absent, n), width)
	if err != nil {
		return errors.Wrap(err, "absent counts")
	}
	absent.LineStyle.Width = 0
	absent.Color = color.RGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0xff}
	absent.Offset = -width / 2

	present, err := plotter.NewBarChart(values(h.Present, n), width)
	if err != nil {
		return errors.Wrap(err, "present counts")
	}
	present.LineStyle.Width = 0
	present.Color = color.RGBA{R: 0x40, G: 0x40, B: 0xc0, A: 0xff}
	present.Offset = width / 2

	p.Add(absent, present)
	p.Legend.Add("absent", absent)
	p.Legend.Add("present", present)
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}

// values returns counts as plot values padded with zeros to length n.
func values(counts []int, n int) plotter.Values {
	v := make(plotter.Values, n)
	for i, c := range counts {
		v[i] = float64(c)
	}
	return v
}
