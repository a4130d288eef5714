// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

// PermutationReplicates draws opts.Iterations permutation replicates
// of stat under the null hypothesis that a and b come from the same
// distribution: the scores are pooled, and each replicate shuffles a
// pristine copy of the pool and splits it back into groups of the
// original sizes. It returns the replicate distribution and the
// observed statistic on the unpermuted groups.
//
// Replicates are Monte Carlo draws, not an exhaustive enumeration of
// permutations. The engine ignores opts.ResampleSize: group sizes are
// fixed by the inputs. A nil stat means MeanDiff.
func PermutationReplicates(a, b *Sample, stat Statistic, opts *Options) (dist []float64, observed float64, err error) {
	o := options(opts)
	if err := o.validateEngine(); err != nil {
		return nil, 0, err
	}
	if stat == nil {
		stat = MeanDiff
	}
	base := o.Seed
	if base == 0 {
		base = randomSeed()
	}

	na := a.N()
	pool := make([]float64, 0, na+b.N())
	pool = append(pool, a.xs...)
	pool = append(pool, b.xs...)

	// stat may reorder its arguments, so the observed value is
	// computed on copies.
	observed = stat.Apply(a.Values(), b.Values())

	dist = make([]float64, o.Iterations)
	parallelFor(o.Iterations, o.workers(), func(lo, hi int) {
		scratch := make([]float64, len(pool))
		for i := lo; i < hi; i++ {
			rng := replicateRNG(base, i)
			// Reshuffle from the pristine pool each time so
			// replicate i is a function of the seed alone.
			copy(scratch, pool)
			rng.Shuffle(len(scratch), func(p, q int) {
				scratch[p], scratch[q] = scratch[q], scratch[p]
			})
			dist[i] = stat.Apply(scratch[:na], scratch[na:])
		}
	})
	return dist, observed, nil
}
