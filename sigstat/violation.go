// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import "sort"

// ViolationRatio returns the stochastic dominance violation ratio
//
//	w(A, B) = sup over x of max(0, CDF_A(x) - CDF_B(x)),
//
// the largest amount by which A's empirical CDF rises above B's.
// Since higher scores are better, a model whose CDF stays below
// another's is the better one: w is 0 when a stochastically dominates
// b, 1 when every score in b exceeds every score in a, and in between
// when the CDFs cross.
//
// The supremum is evaluated exactly by scanning the union of both
// samples' jump points; no discretization grid is involved.
func ViolationRatio(a, b *Sample) float64 {
	return violationSorted(a.xs, b.xs)
}

// violationSorted computes the violation ratio over two ascending
// score slices. Both CDFs are step functions, so the supremum of their
// difference is attained at a jump point of one of them.
func violationSorted(xs, ys []float64) float64 {
	na, nb := len(xs), len(ys)
	var sup float64
	i, j := 0, 0
	for i < na || j < nb {
		// Next jump point.
		var x float64
		switch {
		case i >= na:
			x = ys[j]
		case j >= nb:
			x = xs[i]
		case xs[i] <= ys[j]:
			x = xs[i]
		default:
			x = ys[j]
		}
		// Consume every score equal to x so both CDFs are
		// evaluated at x itself, respecting right-continuity.
		for i < na && xs[i] == x {
			i++
		}
		for j < nb && ys[j] == x {
			j++
		}
		d := float64(i)/float64(na) - float64(j)/float64(nb)
		if d > sup {
			sup = d
		}
	}
	return sup
}

// violationStat adapts the violation ratio to the Statistic interface
// so the bootstrap engine can replicate it. ASO is the only consumer.
type violationStat struct{}

var _ Statistic = violationStat{}

func (violationStat) Name() string { return "violation" }

func (violationStat) Apply(x, y []float64) float64 {
	sort.Float64s(x)
	sort.Float64s(y)
	return violationSorted(x, y)
}
