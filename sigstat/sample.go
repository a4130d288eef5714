// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sigstat provides distribution-free significance tests for
// comparing score distributions of stochastically trained models.
//
// Training a model several times with different random seeds yields a
// distribution of scores rather than a single number, and deciding
// whether model A is really better than model B means comparing those
// distributions without assuming anything about their shape. The
// centerpiece of this package is the Almost Stochastic Order test
// (Dror et al., "Deep Dominance", 2019; del Barrio et al., 2018): ASO
// estimates how badly A's score distribution violates stochastic
// dominance over B's and corrects the estimate with a bootstrap
// confidence bound. The package also provides the two generic
// resampling engines ASO is built on, classic two-sample bootstrap and
// permutation-randomization tests over a pluggable test statistic, and
// Bonferroni and Fisher corrections for families of p-values.
//
// Throughout the package, higher scores are better, and all tests are
// one-sided: they quantify the evidence that the first sample's model
// is superior to the second's.
package sigstat

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// A Sample is an immutable collection of scores from repeated runs of
// a single model.
type Sample struct {
	// xs holds the scores, sorted ascending. It is never mutated
	// after construction, so a Sample is safe for concurrent use.
	xs []float64
}

// NewSample returns a Sample holding a copy of scores, sorted for fast
// order statistics. It returns an error wrapping ErrInvalidInput if
// scores is empty or contains a NaN or infinite value.
func NewSample(scores []float64) (*Sample, error) {
	xs := make([]float64, len(scores))
	copy(xs, scores)
	return newSample(xs)
}

// SampleOf is like NewSample for any numeric element type. It is the
// adapter boundary between raw score slices and the statistics in this
// package: integer scores are coerced to float64 exactly once, here.
func SampleOf[T constraints.Integer | constraints.Float](scores []T) (*Sample, error) {
	xs := make([]float64, len(scores))
	for i, v := range scores {
		xs[i] = float64(v)
	}
	return newSample(xs)
}

// newSample validates and takes ownership of xs.
func newSample(xs []float64) (*Sample, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: sample must contain at least one score", ErrInvalidInput)
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: score %d is %v", ErrInvalidInput, i, x)
		}
	}
	sort.Float64s(xs)
	return &Sample{xs: xs}, nil
}

// N returns the number of scores in the sample.
func (s *Sample) N() int { return len(s.xs) }

// Values returns a copy of the scores in ascending order.
func (s *Sample) Values() []float64 {
	return append([]float64(nil), s.xs...)
}

// Min returns the smallest score in the sample.
func (s *Sample) Min() float64 { return s.xs[0] }

// Max returns the largest score in the sample.
func (s *Sample) Max() float64 { return s.xs[len(s.xs)-1] }

// Mean returns the arithmetic mean of the sample.
func (s *Sample) Mean() float64 { return stat.Mean(s.xs, nil) }

// CDF evaluates the sample's empirical cumulative distribution
// function at x: the fraction of scores that are <= x. It is a
// right-continuous step function that is 0 below Min and 1 at and
// above Max, evaluated in O(log n) by binary search.
func (s *Sample) CDF(x float64) float64 {
	i := sort.Search(len(s.xs), func(i int) bool { return s.xs[i] > x })
	return float64(i) / float64(len(s.xs))
}

// Quantile returns the p-th quantile of the sample, interpolating
// between scores as necessary. Quantile(0) is Min and Quantile(1) is
// Max.
func (s *Sample) Quantile(p float64) float64 {
	return s.sample().Quantile(p)
}

// sample bridges to moremath's sample type for order statistics.
func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.xs, Sorted: true}
}
