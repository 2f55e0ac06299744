// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"fmt"
	"math"
	"strings"
)

// A PairwiseContrast is the outcome of one pairwise comparison inside
// a PairwiseResult.
type PairwiseContrast struct {
	// I and J are the 0-based measure indexes compared.
	I, J int

	// MeanDiff is the difference of measure means, mean[I] -
	// mean[J].
	MeanDiff float64

	// DiffStdDev is the standard deviation of the difference,
	// derived from the sample covariance matrix.
	DiffStdDev float64

	// Bound is the per-contrast equivalence bound
	// EI - (DiffStdDev/sqrt(n)) * t(1-alpha, n-1). It can be
	// negative, in which case the contrast cannot pass.
	Bound float64

	// Equivalent reports whether |MeanDiff| <= Bound.
	Equivalent bool
}

// A PairwiseResult is the result of the pairwise repeated-measures
// equivalence test.
type PairwiseResult struct {
	// N is the number of units after row-wise missing-value
	// deletion and K the number of repeated measures.
	N, K int

	// Means is the length-K vector of measure means.
	Means []float64

	// EI and Alpha echo the equivalence interval and per-contrast
	// Type-I rate the test was run with.
	EI, Alpha float64

	// TCrit is the (1-alpha) t quantile at N-1 degrees of freedom
	// shared by every contrast bound.
	TCrit float64

	// Contrasts holds the K*(K-1)/2 pairwise outcomes in AllPairs
	// order.
	Contrasts []PairwiseContrast

	// Decision is RejectNonEquivalence iff every pairwise contrast
	// is equivalent. A single failing contrast flips the omnibus
	// decision; no multiplicity correction is applied across
	// contrasts.
	Decision Decision
}

func (r *PairwiseResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pairwise equivalence (n=%d, k=%d, EI ±%g):\n", r.N, r.K, r.EI)
	for _, c := range r.Contrasts {
		verdict := "equivalent"
		if !c.Equivalent {
			verdict = "not equivalent"
		}
		fmt.Fprintf(&b, "  %d vs %d: |diff| %g vs bound %g: %s\n",
			c.I+1, c.J+1, math.Abs(c.MeanDiff), c.Bound, verdict)
	}
	fmt.Fprintf(&b, "omnibus: %s", r.Decision)
	return b.String()
}

// PairwiseTest tests all pairwise differences among k repeated
// measures for equivalence. rows is an n×k matrix with one row per
// unit and one column per measure. Each contrast (i, j) passes iff
//
//	|mean_i - mean_j| <= ei - (sd_ij/sqrt(n)) * t(1-alpha, n-1)
//
// where sd_ij is derived from the sample covariance matrix.
// Equivalence is concluded overall iff every contrast passes.
//
// This can fail with ErrEquivalenceInterval, ErrInvalidInput for a
// ragged matrix or k < 2, ErrMissingData for NaN values when
// removeMissing is unset, or ErrSampleSize when fewer than k+1
// complete rows remain.
func PairwiseTest(rows [][]float64, ei, alpha float64, removeMissing bool) (*PairwiseResult, error) {
	if err := checkEI(ei); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	rows, err := cleanRows(rows, removeMissing)
	if err != nil {
		return nil, err
	}
	means, sigma, err := describeRows(rows)
	if err != nil {
		return nil, err
	}
	n, k := len(rows), len(means)
	cs, err := AllPairs(k)
	if err != nil {
		return nil, err
	}

	r := &PairwiseResult{
		N: n, K: k, Means: means,
		EI: ei, Alpha: alpha,
		TCrit:    tQuantile(1-alpha, float64(n-1)),
		Decision: RejectNonEquivalence,
	}
	sqrtN := math.Sqrt(float64(n))
	for _, c := range cs {
		pc := PairwiseContrast{
			I:          c.I,
			J:          c.J,
			MeanDiff:   c.MeanDiff(means),
			DiffStdDev: c.DiffStdDev(sigma),
		}
		pc.Bound = ei - pc.DiffStdDev/sqrtN*r.TCrit
		pc.Equivalent = math.Abs(pc.MeanDiff) <= pc.Bound
		if !pc.Equivalent {
			r.Decision = FailToReject
		}
		r.Contrasts = append(r.Contrasts, pc)
	}
	return r, nil
}
