// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// A Contrast is a linear combination of k measures. The pairwise
// contrasts produced by AllPairs have +1 at measure I, -1 at measure
// J and 0 elsewhere, so the contrast value is the I-vs-J difference.
// Richer contrast types would reuse the same coefficient form.
type Contrast struct {
	// I and J are the 0-based measure indexes compared, I < J.
	I, J int

	// Coef is the length-k coefficient vector.
	Coef []float64
}

// AllPairs returns the k*(k-1)/2 pairwise contrasts among k measures,
// ordered (0,1), (0,2), ..., (k-2,k-1). It fails with ErrInvalidInput
// if k < 2.
func AllPairs(k int) ([]Contrast, error) {
	if k < 2 {
		return nil, ErrInvalidInput
	}
	cs := make([]Contrast, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			c := make([]float64, k)
			c[i], c[j] = 1, -1
			cs = append(cs, Contrast{I: i, J: j, Coef: c})
		}
	}
	return cs, nil
}

// MeanDiff returns the contrast applied to a mean vector: the dot
// product of the coefficients with means.
func (c Contrast) MeanDiff(means []float64) float64 {
	d := 0.0
	for i, coef := range c.Coef {
		d += coef * means[i]
	}
	return d
}

// DiffStdDev returns the standard deviation of the contrast value
// under the covariance matrix sigma: sqrt(c' sigma c). For a pairwise
// contrast this is sqrt(s_ii + s_jj - 2*s_ij).
func (c Contrast) DiffStdDev(sigma *mat.SymDense) float64 {
	v := mat.NewVecDense(len(c.Coef), c.Coef)
	return math.Sqrt(mat.Inner(v, sigma, v))
}

// describeRows computes the column mean vector and the k×k sample
// covariance matrix of a complete (already cleaned) n×k row-major
// matrix. It fails with ErrSampleSize when n < k+1, below which the
// covariance matrix is not well-conditioned.
func describeRows(rows [][]float64) (means []float64, sigma *mat.SymDense, err error) {
	if len(rows) == 0 {
		return nil, nil, ErrSampleSize
	}
	n, k := len(rows), len(rows[0])
	if n < k+1 {
		return nil, nil, ErrSampleSize
	}
	flat := make([]float64, 0, n*k)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	x := mat.NewDense(n, k, flat)
	sigma = &mat.SymDense{}
	stat.CovarianceMatrix(sigma, x, nil)

	means = make([]float64, k)
	for j := range means {
		means[j] = mean(column(rows, j))
	}
	return means, sigma, nil
}
