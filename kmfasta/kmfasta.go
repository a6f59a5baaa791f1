// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// kmfasta outputs the k-mers of a k-mer matrix, typically the output of
// kmfilter, as a FASTA file. Records are named by their 1-based index.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/frankandreace/kmat-tools/kmfasta/convert"
	"github.com/frankandreace/kmat-tools/kmio"
)

var (
	outf  = flag.String("o", kmio.Stdio, "output FASTA file name; a .gz suffix compresses. Defaults to stdout.")
	width = flag.Int("w", 0, "sequence line width; 0 uses the length of the first k-mer.")
	help  = flag.Bool("h", false, "print this message.")
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: kmfasta [options] <in.mat>\n\n")
	fmt.Fprintf(w, "Outputs k-mers of a k-mer matrix in a FASTA file.\n")
	fmt.Fprintf(w, "k-mer size is inferred from the first non-empty line.\n\nOptions:\n")
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
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)
	in, err := kmio.Open(path, false)
	if err != nil {
		log.Fatal(kmio.OpenError("file", path, err))
	}
	defer in.Close()

	out, err := kmio.Create(*outf)
	if err != nil {
		log.Fatal(kmio.OpenError("output file", *outf, err))
	}

	conv := convert.Converter{Width: *width, Warn: os.Stderr}
	n, err := conv.Run(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "[info] %d k-mers written.\n", n)
}
