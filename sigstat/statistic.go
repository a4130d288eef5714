// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// A Statistic reduces two score slices to a scalar test statistic.
// Larger values must indicate stronger evidence that the first model
// is superior.
//
// The resampling engines hand Apply scratch buffers that are
// overwritten between replicates, so Apply may reorder x and y in
// place but must not retain them.
type Statistic interface {
	// Name identifies the statistic in results and output.
	Name() string

	// Apply computes the statistic for scores x versus scores y.
	Apply(x, y []float64) float64
}

// MeanDiff is the difference of sample means, mean(x) - mean(y). It is
// the default statistic for the bootstrap and permutation tests.
var MeanDiff = meanDiff{}

type meanDiff struct{}

var _ Statistic = meanDiff{}

func (meanDiff) Name() string { return "mean" }

func (meanDiff) Apply(x, y []float64) float64 {
	return stat.Mean(x, nil) - stat.Mean(y, nil)
}

// MedianDiff is the difference of sample medians, computed as
// empirical 0.5-quantiles (the lower median for even sizes). It is
// less sensitive to outlier scores than MeanDiff.
var MedianDiff = medianDiff{}

type medianDiff struct{}

var _ Statistic = medianDiff{}

func (medianDiff) Name() string { return "median" }

func (medianDiff) Apply(x, y []float64) float64 {
	sort.Float64s(x)
	sort.Float64s(y)
	return stat.Quantile(0.5, stat.Empirical, x, nil) - stat.Quantile(0.5, stat.Empirical, y, nil)
}
