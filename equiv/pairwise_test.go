// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairwiseRows builds a 10×3 repeated-measures matrix around the
// given per-measure intercepts with small, correlated noise.
func pairwiseRows(c1, c2, c3 float64) [][]float64 {
	base := []float64{-1.5, -1.0, -0.5, -0.25, 0.0, 0.25, 0.5, 0.75, 1.0, 0.75}
	rows := make([][]float64, len(base))
	for i, b := range base {
		rows[i] = []float64{c1 + b, c2 + 0.9*b + 0.05, c3 + 1.1*b - 0.05}
	}
	return rows
}

func TestPairwiseOmnibusFails(t *testing.T) {
	// Measure means are approximately [5, 5.05, 7.95]: the two
	// contrasts against the third measure have a gap of nearly 3
	// units and must fail their bounds, flipping the omnibus
	// decision regardless of the passing first contrast.
	rows := pairwiseRows(5, 5, 8)
	r, err := PairwiseTest(rows, 1.0, 0.05, false)
	require.NoError(t, err)

	assert.Equal(t, 10, r.N)
	assert.Equal(t, 3, r.K)
	require.Len(t, r.Contrasts, 3)
	if !aeq(1.8331129326562343, r.TCrit) {
		t.Errorf("want t crit 1.833113, got %v", r.TCrit)
	}

	c12 := r.Contrasts[0]
	if !aeq(-0.05, c12.MeanDiff) || !aeq(0.95266922760070083, c12.Bound) {
		t.Errorf("contrast (0,1): want diff -0.05, bound 0.952669, got %v, %v",
			c12.MeanDiff, c12.Bound)
	}
	assert.True(t, c12.Equivalent)
	assert.False(t, r.Contrasts[1].Equivalent)
	assert.False(t, r.Contrasts[2].Equivalent)
	if r.Decision != FailToReject {
		t.Errorf("want %v, got %v", FailToReject, r.Decision)
	}
}

func TestPairwiseOmnibusPasses(t *testing.T) {
	// All three measure means within 0.1 of each other: every
	// contrast satisfies its bound.
	rows := pairwiseRows(5, 5, 5)
	r, err := PairwiseTest(rows, 1.0, 0.05, false)
	require.NoError(t, err)

	for _, c := range r.Contrasts {
		if !c.Equivalent {
			t.Errorf("contrast (%d,%d): |%v| exceeds bound %v",
				c.I, c.J, c.MeanDiff, c.Bound)
		}
	}
	if r.Decision != RejectNonEquivalence {
		t.Errorf("want %v, got %v", RejectNonEquivalence, r.Decision)
	}
}

func TestPairwiseRowDeletion(t *testing.T) {
	rows := pairwiseRows(5, 5, 5)
	rows = append(rows, []float64{5, nan, 5})

	_, err := PairwiseTest(rows, 1.0, 0.05, false)
	assert.Equal(t, ErrMissingData, err)

	r, err := PairwiseTest(rows, 1.0, 0.05, true)
	require.NoError(t, err)
	assert.Equal(t, 10, r.N)
}

func TestPairwiseErrors(t *testing.T) {
	tt := []struct {
		name string
		rows [][]float64
		ei   float64
		err  error
	}{
		{
			name: "zero equivalence interval",
			rows: pairwiseRows(5, 5, 5),
			ei:   0,
			err:  ErrEquivalenceInterval,
		},
		{
			name: "single measure",
			rows: [][]float64{{1}, {2}, {3}},
			ei:   1,
			err:  ErrInvalidInput,
		},
		{
			name: "ragged matrix",
			rows: [][]float64{{1, 2, 3}, {4, 5}},
			ei:   1,
			err:  ErrInvalidInput,
		},
		{
			name: "too few units",
			rows: [][]float64{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}},
			ei:   1,
			err:  ErrSampleSize,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			r, err := PairwiseTest(tc.rows, tc.ei, 0.05, false)
			assert.Equal(t, tc.err, err)
			assert.Nil(t, r)
		})
	}
}
