// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// A CorrResult is the result of the dependent-correlation equivalence
// test.
type CorrResult struct {
	// N is the sample size the correlations were computed on (or
	// supplied with).
	N int

	// R12 and R13 are the compared correlations; variable 1 is
	// shared between the two pairs. R23 is the correlation of the
	// non-shared variables, which drives the dependence
	// adjustment.
	R12, R13, R23 float64

	// EI and Alpha echo the equivalence interval and one-sided
	// Type-I rate the test was run with.
	EI, Alpha float64

	// SE is the Williams-modified standard error of R12 - R13.
	SE float64

	// T1 and T2 are the one-sided TOST statistics, with DoF = N-3
	// degrees of freedom and one-sided p-values P1 and P2.
	T1, T2 float64
	DoF    float64
	P1, P2 float64

	// Decision is RejectNonEquivalence iff P1 <= Alpha and
	// P2 <= Alpha.
	Decision Decision
}

func (r *CorrResult) String() string {
	return fmt.Sprintf("dependent correlations: r12=%g r13=%g (r23=%g, n=%d), diff %g, EI ±%g, p1=%g p2=%g: %s",
		r.R12, r.R13, r.R23, r.N, r.R12-r.R13, r.EI, r.P1, r.P2, r.Decision)
}

// williamsSE is the standard error of r12-r13 for two dependent
// correlations sharing variable 1, using Hotelling's adjustment with
// the Williams modification. The algebra follows Steiger (1980),
// "Tests for comparing elements of a correlation matrix",
// Psychological Bulletin 87(2), eq. 12, and is reproduced rather than
// re-derived: |R| is the determinant of the implied 3×3 correlation
// matrix.
func williamsSE(r12, r13, r23 float64, n int) float64 {
	detR := 1 - r12*r12 - r13*r13 - r23*r23 + 2*r12*r13*r23
	rbar := (r12 + r13) / 2
	num := 2*(float64(n-1)/float64(n-3))*detR + rbar*rbar*math.Pow(1-r23, 3)
	return math.Sqrt(num / (float64(n-1) * (1 + r23)))
}

// DependentCorrTest tests whether two overlapping dependent
// correlations are practically equivalent. rows is an n×3 matrix
// whose columns are the three variables; column 1 is the variable
// shared between the compared pairs, so the test compares r12 against
// r13 with r23 adjusting for their dependence. The TOST statistics
// use the Williams-modified standard error with n-3 degrees of
// freedom.
//
// A single 1×3 row is taken to be a correlation triple rather than
// data and fails with ErrMissingSampleSize; use
// DependentCorrTestFromR for that form. This can also fail with
// ErrEquivalenceInterval, ErrInvalidInput for a matrix without
// exactly three columns, ErrMissingData for NaN values when
// removeMissing is unset, or ErrSampleSize when fewer than four
// complete rows remain.
func DependentCorrTest(rows [][]float64, ei, alpha float64, removeMissing bool) (*CorrResult, error) {
	if len(rows) == 1 && len(rows[0]) == 3 {
		return nil, ErrMissingSampleSize
	}
	rows, err := cleanRows(rows, removeMissing)
	if err != nil {
		return nil, err
	}
	n := len(rows)
	if n == 0 {
		return nil, ErrSampleSize
	}
	if len(rows[0]) != 3 {
		return nil, ErrInvalidInput
	}
	if n < 4 {
		return nil, ErrSampleSize
	}
	x1, x2, x3 := column(rows, 0), column(rows, 1), column(rows, 2)
	r12 := stat.Correlation(x1, x2, nil)
	r13 := stat.Correlation(x1, x3, nil)
	r23 := stat.Correlation(x2, x3, nil)
	return DependentCorrTestFromR(r12, r13, r23, n, ei, alpha)
}

// DependentCorrTestFromR is DependentCorrTest for pre-computed
// correlations: r12 and r13 are the compared correlations sharing
// variable 1, r23 the correlation of the non-shared variables, and n
// the sample size they were computed on.
//
// This can fail with ErrEquivalenceInterval, ErrInvalidInput if a
// correlation lies outside [-1, 1] or alpha is out of range, or
// ErrSampleSize if n < 4. Positive semi-definiteness of the implied
// correlation matrix is assumed, not verified.
func DependentCorrTestFromR(r12, r13, r23 float64, n int, ei, alpha float64) (*CorrResult, error) {
	if err := checkEI(ei); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	for _, rr := range []float64{r12, r13, r23} {
		if math.IsNaN(rr) || rr < -1 || rr > 1 {
			return nil, ErrInvalidInput
		}
	}
	if n < 4 {
		return nil, ErrSampleSize
	}

	r := &CorrResult{
		N:   n,
		R12: r12, R13: r13, R23: r23,
		EI: ei, Alpha: alpha,
		SE:  williamsSE(r12, r13, r23, n),
		DoF: float64(n - 3),
	}
	diff := r12 - r13
	r.T1 = (diff - ei) / r.SE
	r.T2 = (diff + ei) / r.SE
	r.P1 = tCDF(r.T1, r.DoF)
	r.P2 = 1 - tCDF(r.T2, r.DoF)
	r.Decision = tostDecision(r.P1, r.P2, r.Alpha)
	return r, nil
}
