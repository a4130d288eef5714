// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import "github.com/aclements/go-moremath/stats"

// replicateDist summarizes a bootstrap replicate distribution. It
// sorts the replicates once so repeated order statistics are cheap.
type replicateDist struct {
	samp stats.Sample
}

func newReplicateDist(replicates []float64) replicateDist {
	samp := stats.Sample{Xs: replicates}
	samp.Sort()
	return replicateDist{samp}
}

// quantile returns the p-th quantile of the replicates.
func (d replicateDist) quantile(p float64) float64 {
	return d.samp.Quantile(p)
}

// stdDev returns the sample standard deviation of the replicates.
func (d replicateDist) stdDev() float64 {
	return d.samp.StdDev()
}
