// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equiv implements equivalence tests: hypothesis-test
// procedures that ask whether an observed difference is small enough
// to be declared practically equivalent to zero, rather than merely
// "not significantly different".
//
// Every procedure follows the two one-sided tests (TOST) logic: given
// an equivalence interval [-ei, +ei], equivalence is concluded only
// when both one-sided null hypotheses (difference >= +ei and
// difference <= -ei) are rejected.
//
// The procedures are pure functions over in-memory data. Each returns
// an immutable result record; rendering is a separate, optional step
// via the result's String method. Missing values are represented as
// NaN and are either removed on request or cause ErrMissingData.
//
//   - TOST: two independent samples, with pooled, Welch, and robust
//     trimmed (Yuen) regimes.
//   - CIInclusionTest: the confidence-interval formulation of the
//     pooled TOST.
//   - DependentCorrTest: difference of two overlapping dependent
//     correlations, Williams-modified standard error.
//   - PairwiseTest: all pairwise contrasts among k repeated measures
//     with an all-or-nothing omnibus decision.
package equiv // import "github.com/equivtest/go-equivtest/equiv"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
