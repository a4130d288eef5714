// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned, wrapped, for malformed inputs:
	// empty samples, non-finite scores, out-of-range p-values, and
	// nonsensical option values.
	ErrInvalidInput = errors.New("sigstat: invalid input")

	// ErrConfidenceLevel is returned, wrapped, when a confidence
	// level is outside the open interval (0, 1).
	ErrConfidenceLevel = errors.New("sigstat: confidence level must be in (0, 1)")
)

// Tests that receive fewer scores or iterations than these thresholds
// still run, but attach a warning to their results. They may be
// adjusted before running a test.
var (
	// LowSampleThreshold is the minimum per-sample score count for
	// a stable estimate.
	LowSampleThreshold = 5

	// LowIterationThreshold is the minimum number of resampling
	// iterations for a stable estimate.
	LowIterationThreshold = 100
)

// Options configures the resampling engines and tests.
//
// Options should be initialized from DefaultOptions. All test
// functions accept nil Options, which means DefaultOptions.
type Options struct {
	// ConfidenceLevel is the significance level α in (0, 1). ASO
	// uses it for the bootstrap confidence correction; the
	// bootstrap and permutation tests do not consume it.
	ConfidenceLevel float64

	// Iterations is the number of bootstrap or permutation
	// replicates to draw. It must be positive.
	Iterations int

	// ResampleSize overrides the size of each bootstrap draw. If
	// zero, every draw from a sample has that sample's own size.
	// The permutation engine does not consume it.
	ResampleSize int

	// Seed is the base seed for the random stream. Replicate i
	// derives its own stream from Seed+1+i, so a run's results do
	// not depend on Workers. If Seed is zero, a random nonzero
	// base is drawn and recorded in the result.
	Seed uint64

	// Workers is the number of goroutines that compute replicates.
	// Values below 1 mean single-threaded.
	Workers int

	// Progress, if non-nil, is invoked by MultiASO after each
	// completed pair with the number of finished and total pairs.
	Progress func(done, total int)
}

// DefaultOptions is the configuration used when a test receives nil
// Options.
var DefaultOptions = Options{
	ConfidenceLevel: 0.05,
	Iterations:      1000,
	Workers:         1,
}

// options dereferences o, substituting DefaultOptions for nil.
func options(o *Options) Options {
	if o == nil {
		return DefaultOptions
	}
	return *o
}

// workers returns the effective worker count.
func (o *Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

// validateEngine checks the fields consumed by the resampling engines.
func (o *Options) validateEngine() error {
	if o.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive; have %d", ErrInvalidInput, o.Iterations)
	}
	if o.ResampleSize < 0 {
		return fmt.Errorf("%w: resample size must be >= 0; have %d", ErrInvalidInput, o.ResampleSize)
	}
	return nil
}

// validateAlpha checks the confidence level where it is consumed.
func (o *Options) validateAlpha() error {
	return checkAlpha(o.ConfidenceLevel)
}

func checkAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("%w: have %v", ErrConfidenceLevel, alpha)
	}
	return nil
}

// commonWarnings returns the warnings shared by all tests: too few
// scores on either side, or too few resampling iterations. Warnings
// are surfaced in results, not returned as errors.
func commonWarnings(n1, n2, iterations int) []error {
	var warnings []error
	if n1 < LowSampleThreshold || n2 < LowSampleThreshold {
		warnings = append(warnings, fmt.Errorf("need >= %d scores per sample for a stable estimate; have %d and %d", LowSampleThreshold, n1, n2))
	}
	if iterations < LowIterationThreshold {
		warnings = append(warnings, fmt.Errorf("need >= %d iterations for a stable estimate; have %d", LowIterationThreshold, iterations))
	}
	return warnings
}
