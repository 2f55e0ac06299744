// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"math"
	"sort"
)

// trimCount returns the number of observations trimmed from each tail
// of a sample of size n at trim proportion tr.
func trimCount(n int, tr float64) int {
	return int(math.Floor(tr * float64(n)))
}

// effectiveSize returns h = n - 2*floor(tr*n), the number of
// observations that survive trimming.
func effectiveSize(n int, tr float64) int {
	return n - 2*trimCount(n, tr)
}

func checkTrim(n int, tr float64) error {
	if tr < 0 || tr >= 0.5 || math.IsNaN(tr) {
		return ErrInvalidInput
	}
	if effectiveSize(n, tr) < 2 {
		return ErrSampleSize
	}
	return nil
}

// TrimmedMean returns the tr-trimmed mean of xs: the mean of xs after
// discarding the floor(tr*len(xs)) smallest and largest values. With
// tr = 0 this is the ordinary mean.
//
// This can fail with ErrInvalidInput if tr is not in [0, 0.5) or
// ErrSampleSize if fewer than two observations survive trimming.
func TrimmedMean(xs []float64, tr float64) (float64, error) {
	if err := checkTrim(len(xs), tr); err != nil {
		return 0, err
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	g := trimCount(len(s), tr)
	return mean(s[g : len(s)-g]), nil
}

// WinsorizedVariance returns the tr-Winsorized sample variance of xs:
// the ordinary sample variance after replacing the floor(tr*len(xs))
// smallest values with the value at the lower trim boundary and the
// same number of largest values with the value at the upper boundary.
// Unlike trimming, Winsorizing keeps the sample length. With tr = 0
// this is the ordinary sample variance.
//
// This can fail with ErrInvalidInput if tr is not in [0, 0.5) or
// ErrSampleSize if fewer than two observations survive trimming.
func WinsorizedVariance(xs []float64, tr float64) (float64, error) {
	if err := checkTrim(len(xs), tr); err != nil {
		return 0, err
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	n := len(s)
	g := trimCount(n, tr)
	lo, hi := s[g], s[n-g-1]
	for i := 0; i < g; i++ {
		s[i] = lo
		s[n-i-1] = hi
	}
	return variance(s), nil
}

// yuenQ returns the squared standard-error contribution of one sample
// in Yuen's trimmed t procedure: q = (n-1)*winvar / (h*(h-1)), where
// h is the effective (post-trim) sample size.
func yuenQ(xs []float64, tr float64) (q float64, h int, err error) {
	wv, err := WinsorizedVariance(xs, tr)
	if err != nil {
		return 0, 0, err
	}
	n := len(xs)
	h = effectiveSize(n, tr)
	q = float64(n-1) * wv / float64(h*(h-1))
	return q, h, nil
}
