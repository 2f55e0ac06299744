// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import "errors"

var (
	// ErrMissingData is returned when a sample contains NaN values
	// and their removal was not requested. No partial result is
	// computed.
	ErrMissingData = errors.New("sample contains missing values and removal was not requested")

	// ErrSampleSize is returned when a sample is too small for the
	// requested computation, for example when trimming leaves fewer
	// than two effective observations.
	ErrSampleSize = errors.New("sample is too small")

	// ErrMissingSampleSize is returned when a correlation triple is
	// supplied without an explicit sample size.
	ErrMissingSampleSize = errors.New("correlation input requires an explicit sample size")

	// ErrInvalidInput is returned for malformed input: a ragged
	// matrix, fewer than two measures, or an out-of-range option
	// such as a trim proportion not in [0, 0.5) or an alpha not in
	// (0, 0.5).
	ErrInvalidInput = errors.New("invalid input shape or option")

	// ErrEquivalenceInterval is returned when the equivalence
	// interval is not strictly positive. An interval of zero
	// degenerates to a point-null test and is rejected rather than
	// silently accepted.
	ErrEquivalenceInterval = errors.New("equivalence interval must be positive")
)
