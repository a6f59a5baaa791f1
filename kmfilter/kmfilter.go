// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// kmfilter filters a k-mer abundance matrix by selecting k-mers that are
// potentially differential: absent from a minimum number of samples and
// present with a minimum abundance in a minimum number of others.
//
// The matrix is read from the named file, or from stdin if the name is "-",
// and retained lines are written unchanged to stdout or the -o file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/pkg/errors"

	"github.com/frankandreace/kmat-tools/kmfilter/filter"
	"github.com/frankandreace/kmat-tools/kmio"
)

var (
	minAbund    = flag.Int64("a", filter.DefaultMinAbundance, "minimum abundance for a sample to hold a k-mer")
	minZeros    = flag.Int("n", filter.DefaultMinZeros, "minimum number of samples with zero abundance")
	minZeroFrac = flag.Float64("f", 0, "minimum fraction of samples with zero abundance, in [0.01,0.99]; overrides -n")
	minPresent  = flag.Int("N", filter.DefaultMinNonZero, "minimum number of samples with abundance at least -a")
	minPresFrac = flag.Float64("F", 0, "minimum fraction of samples with abundance at least -a, in [0.01,0.95]; overrides -N")

	outf    = flag.String("o", kmio.Stdio, "output file name; a .gz suffix compresses. Defaults to stdout.")
	verbose = flag.Bool("v", false, "report progress and count summaries on stderr.")

	params     = flag.String("params", "", "YAML file of filter parameters; explicit flags take precedence.")
	histf      = flag.String("hist", "", "plot absent and present sample counts to this image file (png, svg, pdf).")
	useMmap    = flag.Bool("mmap", false, "memory-map a regular uncompressed input file.")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to this file.")

	help = flag.Bool("h", false, "print this message.")
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: kmfilter [options] <in.mat>\n\n")
	fmt.Fprintf(w, "Filter a matrix by selecting k-mers that are potentially differential.\n\n")
	fmt.Fprintf(w, "Use - to read the matrix from stdin.\n\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("[error] ")

	if *help {
		flag.CommandLine.SetOutput(os.Stdout)
		flag.Usage()
		os.Exit(0)
	}
	path, ok := input(flag.Args())
	if !ok {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config()
	if err != nil {
		log.Fatal(err)
	}

	st, err := run(path, cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "[info] %d\tsamples\n", st.Samples)
	fmt.Fprintf(os.Stderr, "[info] %d\ttotal k-mers\n", st.Rows)
	fmt.Fprintf(os.Stderr, "[info] %d\tretained k-mers\n", st.Retained)
}

// input returns the matrix path from the command line arguments, which
// must hold exactly one.
func input(args []string) (string, bool) {
	if len(args) != 1 {
		return "", false
	}
	return args[0], true
}

// config returns the filter configuration from the defaults, the -params
// file and the flags given on the command line, in increasing order of
// precedence.
func config() (filter.Config, error) {
	cfg := filter.DefaultConfig()
	if *params != "" {
		p, err := filter.LoadParams(*params)
		if err != nil {
			return cfg, err
		}
		cfg = p.Apply(cfg)
	}
	var set filter.Params
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			set.MinAbundance = minAbund
		case "n":
			set.MinZeros = minZeros
		case "f":
			set.MinZeroFrac = minZeroFrac
		case "N":
			set.MinNonZero = minPresent
		case "F":
			set.MinNonZeroFrac = minPresFrac
		}
	})
	cfg = set.Apply(cfg)
	return cfg, cfg.Validate()
}

func run(path string, cfg filter.Config) (filter.Stats, error) {
	if *cpuprofile != "" {
		profile, err := os.Create(*cpuprofile)
		if err != nil {
			return filter.Stats{}, err
		}
		defer profile.Close()
		fmt.Fprintf(os.Stderr, "Writing CPU profile data to %s\n", *cpuprofile)
		pprof.StartCPUProfile(profile)
		defer pprof.StopCPUProfile()
	}

	f, err := filter.New(cfg)
	if err != nil {
		return filter.Stats{}, err
	}
	if *verbose {
		c := f.Config()
		fmt.Fprintf(os.Stderr, "[info] abundance %d, absent from %v, present in %v\n", c.MinAbundance, c.Absent, c.Present)
		f.Progress = os.Stderr
	}
	if *verbose || *histf != "" {
		f.Hist = &filter.Histogram{}
	}

	in, err := kmio.Open(path, *useMmap)
	if err != nil {
		return filter.Stats{}, kmio.OpenError("file", path, err)
	}
	defer in.Close()

	out, err := kmio.Create(*outf)
	if err != nil {
		return filter.Stats{}, kmio.OpenError("output file", *outf, err)
	}
	st, err := f.Run(out, in)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = errors.Wrapf(cerr, "close %q", *outf)
	}
	if err != nil {
		return st, err
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "[info] %.2f\tmean absent samples\n", f.Hist.MeanAbsent())
		fmt.Fprintf(os.Stderr, "[info] %.2f\tmean present samples\n", f.Hist.MeanPresent())
	}
	if *histf != "" {
		err = f.Hist.Plot(*histf)
	}
	return st, err
}
