// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// equiv reads two newline-separated numeric samples and tests them
// for equivalence with a TOST procedure.
//
// Usage:
//
//	equiv -ei 0.5 [-alpha 0.05] [-regime pooled|welch|yuen] [-tr 0.2] x.txt y.txt
//
// With no file arguments it reads both samples from stdin, separated
// by a blank line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/equivtest/go-equivtest/equiv"
)

func main() {
	ei := flag.Float64("ei", 0, "equivalence interval half-width (required, > 0)")
	alpha := flag.Float64("alpha", 0.05, "one-sided Type-I error rate")
	tr := flag.Float64("tr", 0.2, "trim proportion for the yuen regime")
	regime := flag.String("regime", "pooled", "test regime: pooled, welch, or yuen")
	flag.Parse()

	opt := &equiv.TOSTOptions{Alpha: *alpha, Trim: *tr, RemoveMissing: true}
	switch *regime {
	case "pooled":
		opt.Regime = equiv.EqualVariance
	case "welch":
		opt.Regime = equiv.UnequalVariance
	case "yuen":
		opt.Regime = equiv.RobustTrimmed
	default:
		fmt.Fprintf(os.Stderr, "unknown regime %q\n", *regime)
		os.Exit(2)
	}

	var x, y []float64
	switch flag.NArg() {
	case 0:
		x, y = readStdin()
	case 2:
		x = readFile(flag.Arg(0))
		y = readFile(flag.Arg(1))
	default:
		fmt.Fprintln(os.Stderr, "expected zero or two sample files")
		os.Exit(2)
	}

	describe("x", x)
	describe("y", y)
	fmt.Println()

	r, err := equiv.TOST(x, y, *ei, opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(r)
}

func describe(name string, xs []float64) {
	min, _ := stats.Min(xs)
	max, _ := stats.Max(xs)
	median, _ := stats.Median(xs)
	mean, _ := stats.Mean(xs)
	sd, _ := stats.StandardDeviationSample(xs)
	fmt.Printf("%s: n %d  min %.6g  median %.6g  max %.6g  mean %.6g  std dev %.6g\n",
		name, len(xs), min, median, max, mean, sd)
}

// readStdin reads two samples from stdin, separated by a blank line.
func readStdin() (x, y []float64) {
	scanner := bufio.NewScanner(os.Stdin)
	cur := &x
	for scanner.Scan() {
		l := scanner.Text()
		if l == "" {
			cur = &y
			continue
		}
		*cur = append(*cur, parse(l))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return
}

func readFile(path string) []float64 {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	return readSample(f)
}

func readSample(r io.Reader) (sample []float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if l := scanner.Text(); l != "" {
			sample = append(sample, parse(l))
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return
}

func parse(l string) float64 {
	value, err := strconv.ParseFloat(l, 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return value
}
