// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import "math"

// cleanSample validates xs for missing values and returns the sample
// to compute on. NaN is the missing-value marker. If removeMissing is
// false and xs contains NaN, it fails with ErrMissingData before any
// statistic is computed. The returned slice is a copy only when
// values had to be dropped.
func cleanSample(xs []float64, removeMissing bool) ([]float64, error) {
	n := 0
	for _, x := range xs {
		if !math.IsNaN(x) {
			n++
		}
	}
	if n == len(xs) {
		return xs, nil
	}
	if !removeMissing {
		return nil, ErrMissingData
	}
	out := make([]float64, 0, n)
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out, nil
}

// cleanRows validates an n×k matrix given as rows: it must be
// rectangular with k >= 2 columns. Rows containing NaN are deleted
// row-wise when removeMissing is set, otherwise their presence fails
// with ErrMissingData.
func cleanRows(rows [][]float64, removeMissing bool) ([][]float64, error) {
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, ErrInvalidInput
	}
	k := len(rows[0])
	out := rows
	copied := false
	for i, row := range rows {
		if len(row) != k {
			return nil, ErrInvalidInput
		}
		miss := false
		for _, v := range row {
			if math.IsNaN(v) {
				miss = true
				break
			}
		}
		if !miss {
			if copied {
				out = append(out, row)
			}
			continue
		}
		if !removeMissing {
			return nil, ErrMissingData
		}
		if !copied {
			// First missing row: keep the complete rows seen
			// so far and start filtering.
			out = append([][]float64(nil), rows[:i]...)
			copied = true
		}
	}
	return out, nil
}

// column extracts column j of a row-major matrix.
func column(rows [][]float64, j int) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = row[j]
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variance is the unbiased sample variance (n-1 denominator).
func variance(xs []float64) float64 {
	if len(xs) < 2 {
		return nan
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}

func stdDev(xs []float64) float64 {
	return math.Sqrt(variance(xs))
}
