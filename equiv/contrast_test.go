// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPairs(t *testing.T) {
	for _, k := range []int{2, 3, 4, 7} {
		cs, err := AllPairs(k)
		require.NoError(t, err)
		if want := k * (k - 1) / 2; len(cs) != want {
			t.Fatalf("k=%d: want %d contrasts, got %d", k, want, len(cs))
		}
		seen := make(map[[2]int]bool)
		for _, c := range cs {
			if c.I >= c.J || c.I < 0 || c.J >= k {
				t.Errorf("k=%d: bad pair (%d, %d)", k, c.I, c.J)
			}
			if seen[[2]int{c.I, c.J}] {
				t.Errorf("k=%d: duplicate pair (%d, %d)", k, c.I, c.J)
			}
			seen[[2]int{c.I, c.J}] = true

			// Each coefficient vector is +1 at I, -1 at J,
			// 0 elsewhere, and sums to 0.
			sum := 0.0
			for i, coef := range c.Coef {
				sum += coef
				switch i {
				case c.I:
					assert.Equal(t, 1.0, coef)
				case c.J:
					assert.Equal(t, -1.0, coef)
				default:
					assert.Equal(t, 0.0, coef)
				}
			}
			assert.Equal(t, 0.0, sum)
		}
	}

	_, err := AllPairs(1)
	assert.Equal(t, ErrInvalidInput, err)
}

func TestContrastStats(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3.5},
		{2, 2.5, 4},
		{3, 3.5, 4.5},
		{4, 4, 6},
		{5, 5.5, 6.5},
	}
	means, sigma, err := describeRows(rows)
	require.NoError(t, err)

	if !aeq(3, means[0]) || !aeq(3.5, means[1]) || !aeq(4.9, means[2]) {
		t.Errorf("want means [3, 3.5, 4.9], got %v", means)
	}

	cs, err := AllPairs(3)
	require.NoError(t, err)

	// Differences and difference standard deviations computed by
	// hand from the sample covariance matrix.
	wantDiff := []float64{-0.5, -1.9, -1.4}
	wantSD := []float64{0.35355339059327379, 0.41833001326703756, 0.41833001326703756}
	for i, c := range cs {
		if got := c.MeanDiff(means); !aeq(wantDiff[i], got) {
			t.Errorf("contrast (%d,%d): want diff %v, got %v", c.I, c.J, wantDiff[i], got)
		}
		if got := c.DiffStdDev(sigma); !aeq(wantSD[i], got) {
			t.Errorf("contrast (%d,%d): want sd %v, got %v", c.I, c.J, wantSD[i], got)
		}
	}
}

func TestDescribeRowsErrors(t *testing.T) {
	// n must be at least k+1 for the covariance matrix.
	rows := [][]float64{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
	}
	_, _, err := describeRows(rows)
	assert.Equal(t, ErrSampleSize, err)
}

func TestCleanRows(t *testing.T) {
	rows := [][]float64{
		{1, 2},
		{nan, 3},
		{4, 5},
	}

	_, err := cleanRows(rows, false)
	assert.Equal(t, ErrMissingData, err)

	out, err := cleanRows(rows, true)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {4, 5}}, out)

	// Ragged input is rejected outright.
	_, err = cleanRows([][]float64{{1, 2}, {3}}, true)
	assert.Equal(t, ErrInvalidInput, err)

	// A single column is not a multivariate sample.
	_, err = cleanRows([][]float64{{1}, {2}}, true)
	assert.Equal(t, ErrInvalidInput, err)
}
