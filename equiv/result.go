// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

// A Decision is the outcome of an equivalence test. The null
// hypothesis of every procedure in this package is non-equivalence,
// so rejecting it concludes that the observed difference lies within
// the equivalence interval.
type Decision int

const (
	// FailToReject means there is no evidence for equivalence.
	FailToReject Decision = iota

	// RejectNonEquivalence means equivalence was concluded: the
	// difference can be treated as practically zero.
	RejectNonEquivalence
)

func (d Decision) String() string {
	switch d {
	case FailToReject:
		return "no evidence for equivalence"
	case RejectNonEquivalence:
		return "reject non-equivalence"
	}
	return "unknown decision"
}

// tostDecision applies the TOST rule: equivalence is concluded only
// when both one-sided p-values fall at or below alpha.
func tostDecision(p1, p2, alpha float64) Decision {
	if p1 <= alpha && p2 <= alpha {
		return RejectNonEquivalence
	}
	return FailToReject
}

func checkAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 0.5) {
		return ErrInvalidInput
	}
	return nil
}

func checkEI(ei float64) error {
	if !(ei > 0) {
		return ErrEquivalenceInterval
	}
	return nil
}
