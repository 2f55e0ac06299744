// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"fmt"
	"math"
)

// A CIResult is the result of the confidence-interval formulation of
// the equivalence test.
type CIResult struct {
	// N1 and N2 are the sizes of the input samples after any
	// missing-value removal.
	N1, N2 int

	// Mean1, Mean2, StdDev1 and StdDev2 are the per-sample
	// descriptive statistics.
	Mean1, Mean2     float64
	StdDev1, StdDev2 float64

	// EI and Alpha echo the equivalence interval and one-sided
	// Type-I rate the test was run with.
	EI, Alpha float64

	// SE is the pooled standard error of the mean difference.
	SE float64

	// T1, T2, P1 and P2 are the one-sided TOST statistics and
	// p-values, reported for reference. The decision below is
	// made from the interval, not from these.
	T1, T2 float64
	P1, P2 float64

	// DoF is n1+n2-2.
	DoF float64

	// Lo and Hi bound the (1 - 2*alpha) two-sided confidence
	// interval for the mean difference.
	Lo, Hi float64

	// Decision is RejectNonEquivalence iff (Lo, Hi) lies strictly
	// inside (-EI, +EI).
	Decision Decision
}

func (r *CIResult) String() string {
	return fmt.Sprintf("CI inclusion: mean diff %g, %g%% CI [%g, %g], EI ±%g: %s",
		r.Mean1-r.Mean2, 100*(1-2*r.Alpha), r.Lo, r.Hi, r.EI, r.Decision)
}

// CIInclusionTest performs the confidence-interval form of the
// equivalence test: it computes a (1 - 2*alpha) two-sided confidence
// interval for the mean difference of x and y using the pooled
// equal-variance standard error and concludes equivalence iff the
// interval lies strictly inside (-ei, +ei).
//
// The decision is mathematically the same as the equal-variance TOST
// decision at the same alpha whenever the interval does not land
// exactly on a bound; only the reporting shape differs. This variant
// offers no Welch or robust regime.
//
// This can fail with ErrEquivalenceInterval, ErrMissingData,
// ErrSampleSize, or ErrInvalidInput, as TOST does.
func CIInclusionTest(x, y []float64, ei, alpha float64, removeMissing bool) (*CIResult, error) {
	if err := checkEI(ei); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	x, err := cleanSample(x, removeMissing)
	if err != nil {
		return nil, err
	}
	y, err = cleanSample(y, removeMissing)
	if err != nil {
		return nil, err
	}
	n1, n2 := len(x), len(y)
	if n1 < 2 || n2 < 2 {
		return nil, ErrSampleSize
	}

	v1, v2 := variance(x), variance(y)
	pooled := (float64(n1-1)*v1 + float64(n2-1)*v2) / float64(n1+n2-2)
	r := &CIResult{
		N1: n1, N2: n2,
		Mean1: mean(x), Mean2: mean(y),
		StdDev1: math.Sqrt(v1), StdDev2: math.Sqrt(v2),
		EI: ei, Alpha: alpha,
		SE:  math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2))),
		DoF: float64(n1 + n2 - 2),
	}
	diff := r.Mean1 - r.Mean2
	r.T1 = (diff - ei) / r.SE
	r.T2 = (diff + ei) / r.SE
	r.P1 = tCDF(r.T1, r.DoF)
	r.P2 = 1 - tCDF(r.T2, r.DoF)

	tcrit := tQuantile(1-alpha, r.DoF)
	r.Lo = diff - tcrit*r.SE
	r.Hi = diff + tcrit*r.SE
	if r.Lo > -ei && r.Hi < ei {
		r.Decision = RejectNonEquivalence
	} else {
		r.Decision = FailToReject
	}
	return r, nil
}
