// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"fmt"
	"math"
)

// A Regime selects the standard-error and degrees-of-freedom formulas
// used by TOST. It replaces the variance-equality/normality flag pair
// of classical presentations with a single explicit choice made at
// entry.
type Regime int

const (
	// EqualVariance assumes normality and a common variance: the
	// standard error uses the pooled variance and the degrees of
	// freedom are n1+n2-2.
	EqualVariance Regime = iota

	// UnequalVariance assumes normality only (Welch): per-sample
	// variances with Welch-Satterthwaite degrees of freedom.
	UnequalVariance

	// RobustTrimmed makes no normality assumption (Yuen): trimmed
	// means with Winsorized-variance standard errors and
	// Welch-Satterthwaite degrees of freedom on the effective
	// sample sizes.
	RobustTrimmed
)

func (r Regime) String() string {
	switch r {
	case EqualVariance:
		return "equal-variance"
	case UnequalVariance:
		return "unequal-variance"
	case RobustTrimmed:
		return "robust-trimmed"
	}
	return "unknown regime"
}

// RegimeFor maps the conventional varEqual/normality flag pair onto a
// Regime. varEqual is only meaningful when normality holds.
func RegimeFor(varEqual, normality bool) Regime {
	switch {
	case normality && varEqual:
		return EqualVariance
	case normality:
		return UnequalVariance
	}
	return RobustTrimmed
}

// TOSTOptions configures TOST. The zero value is not useful; use
// DefaultTOSTOptions or pass nil to TOST for the defaults.
type TOSTOptions struct {
	// Alpha is the Type-I error rate of each one-sided test.
	Alpha float64

	// Trim is the per-tail trim proportion, used only by the
	// RobustTrimmed regime. Zero requests classical (untrimmed)
	// behavior.
	Trim float64

	// Regime selects the standard-error and degrees-of-freedom
	// formulas.
	Regime Regime

	// RemoveMissing drops NaN values before testing. When false,
	// a NaN in either sample fails with ErrMissingData.
	RemoveMissing bool
}

// DefaultTOSTOptions returns the default configuration: alpha 0.05,
// trim proportion 0.2, equal-variance regime, missing values fatal.
func DefaultTOSTOptions() *TOSTOptions {
	return &TOSTOptions{Alpha: 0.05, Trim: 0.2, Regime: EqualVariance}
}

// A TOSTResult is the result of a two-one-sided-tests equivalence
// procedure.
type TOSTResult struct {
	// N1 and N2 are the sizes of the input samples after any
	// missing-value removal.
	N1, N2 int

	// Mean1 and Mean2 are the sample locations compared: ordinary
	// means under the normal regimes, trimmed means under
	// RobustTrimmed.
	Mean1, Mean2 float64

	// StdDev1 and StdDev2 are the per-sample scale estimates:
	// ordinary standard deviations under the normal regimes,
	// square roots of the Winsorized variances under
	// RobustTrimmed.
	StdDev1, StdDev2 float64

	// EI and Alpha echo the equivalence interval and one-sided
	// Type-I rate the test was run with.
	EI, Alpha float64

	// Regime is the assumption regime the test was run under.
	Regime Regime

	// SE is the standard error of the location difference.
	SE float64

	// T1 and T2 are the two one-sided test statistics against the
	// upper and lower equivalence bounds.
	T1, T2 float64

	// DoF is the degrees of freedom of the reference t
	// distribution. It is fractional under the Welch and Yuen
	// approximations.
	DoF float64

	// P1 = P(T <= T1) and P2 = P(T >= T2) are the one-sided
	// p-values.
	P1, P2 float64

	// Decision is RejectNonEquivalence iff P1 <= Alpha and
	// P2 <= Alpha.
	Decision Decision
}

// String renders the result. It is a formatting convenience for
// callers; no procedure in this package calls it.
func (r *TOSTResult) String() string {
	return fmt.Sprintf("TOST (%s): mean diff %g, EI ±%g, t1=%g t2=%g (df=%g), p1=%g p2=%g: %s",
		r.Regime, r.Mean1-r.Mean2, r.EI, r.T1, r.T2, r.DoF, r.P1, r.P2, r.Decision)
}

// TOST performs a two-one-sided-tests equivalence test of the null
// hypothesis that the locations of x and y differ by at least ei
// against the alternative that the difference lies inside (-ei, +ei).
//
// The two one-sided statistics are
//
//	t1 = (m1 - m2 - ei) / SE    t2 = (m1 - m2 + ei) / SE
//
// with p1 = P(T <= t1) and p2 = P(T >= t2) under a t distribution
// whose standard error and degrees of freedom depend on opt.Regime.
// Equivalence is concluded iff both p-values are at most opt.Alpha.
//
// A nil opt means DefaultTOSTOptions. This can fail with
// ErrEquivalenceInterval if ei <= 0, ErrMissingData if a sample
// contains NaN and opt.RemoveMissing is unset, ErrSampleSize if a
// sample is too small for the regime, or ErrInvalidInput for an
// out-of-range alpha or trim proportion.
//
// If either sample has zero variance and ei > 0 the statistics remain
// computable but the p-values saturate at 0 or 1; this is not guarded
// here.
func TOST(x, y []float64, ei float64, opt *TOSTOptions) (*TOSTResult, error) {
	if opt == nil {
		opt = DefaultTOSTOptions()
	}
	if err := checkEI(ei); err != nil {
		return nil, err
	}
	if err := checkAlpha(opt.Alpha); err != nil {
		return nil, err
	}
	x, err := cleanSample(x, opt.RemoveMissing)
	if err != nil {
		return nil, err
	}
	y, err = cleanSample(y, opt.RemoveMissing)
	if err != nil {
		return nil, err
	}
	n1, n2 := len(x), len(y)
	if n1 < 2 || n2 < 2 {
		return nil, ErrSampleSize
	}

	r := &TOSTResult{
		N1: n1, N2: n2,
		EI: ei, Alpha: opt.Alpha, Regime: opt.Regime,
	}
	switch opt.Regime {
	case EqualVariance:
		v1, v2 := variance(x), variance(y)
		pooled := (float64(n1-1)*v1 + float64(n2-1)*v2) / float64(n1+n2-2)
		r.Mean1, r.Mean2 = mean(x), mean(y)
		r.StdDev1, r.StdDev2 = math.Sqrt(v1), math.Sqrt(v2)
		r.SE = math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2)))
		r.DoF = float64(n1 + n2 - 2)

	case UnequalVariance:
		q1 := variance(x) / float64(n1)
		q2 := variance(y) / float64(n2)
		r.Mean1, r.Mean2 = mean(x), mean(y)
		r.StdDev1, r.StdDev2 = math.Sqrt(q1*float64(n1)), math.Sqrt(q2*float64(n2))
		r.SE = math.Sqrt(q1 + q2)
		r.DoF = welchDoF(q1, q2, float64(n1-1), float64(n2-1))

	case RobustTrimmed:
		m1, err := TrimmedMean(x, opt.Trim)
		if err != nil {
			return nil, err
		}
		m2, err := TrimmedMean(y, opt.Trim)
		if err != nil {
			return nil, err
		}
		q1, h1, err := yuenQ(x, opt.Trim)
		if err != nil {
			return nil, err
		}
		q2, h2, err := yuenQ(y, opt.Trim)
		if err != nil {
			return nil, err
		}
		r.Mean1, r.Mean2 = m1, m2
		r.StdDev1 = math.Sqrt(q1 * float64(h1*(h1-1)) / float64(n1-1))
		r.StdDev2 = math.Sqrt(q2 * float64(h2*(h2-1)) / float64(n2-1))
		r.SE = math.Sqrt(q1 + q2)
		r.DoF = welchDoF(q1, q2, float64(h1-1), float64(h2-1))

	default:
		return nil, ErrInvalidInput
	}

	diff := r.Mean1 - r.Mean2
	r.T1 = (diff - ei) / r.SE
	r.T2 = (diff + ei) / r.SE
	r.P1 = tCDF(r.T1, r.DoF)
	r.P2 = 1 - tCDF(r.T2, r.DoF)
	r.Decision = tostDecision(r.P1, r.P2, opt.Alpha)
	return r, nil
}

// welchDoF is the Welch-Satterthwaite effective degrees of freedom
// for the sum of two squared standard errors q1 and q2 with df1 and
// df2 component degrees of freedom.
func welchDoF(q1, q2, df1, df2 float64) float64 {
	s := q1 + q2
	return s * s / (q1*q1/df1 + q2*q2/df2)
}
