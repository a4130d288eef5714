// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import (
	"math/rand"
	"sort"
	"sync"

	exprand "golang.org/x/exp/rand"
)

// randomSeed draws a nonzero base seed from the process-global source.
func randomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// replicateRNG returns the random stream for replicate i under base.
// Every replicate derives its own stream from its index, so results
// never depend on how replicates are spread across workers.
func replicateRNG(base uint64, i int) *exprand.Rand {
	return exprand.New(exprand.NewSource(base + 1 + uint64(i)))
}

// resampleInto fills dst with a with-replacement draw from src.
func resampleInto(dst, src []float64, rng *exprand.Rand) {
	for i := range dst {
		dst[i] = src[rng.Intn(len(src))]
	}
}

// parallelFor runs body over contiguous chunks of [0, n) on up to
// workers goroutines and waits for them to finish.
func parallelFor(n, workers int, body func(lo, hi int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		body(0, n)
		return
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := w*n/workers, (w+1)*n/workers
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			body(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// Resample returns a single with-replacement bootstrap draw of the
// given size from s. A size of zero or less means s.N(). A seed of
// zero draws a random seed; otherwise equal seeds yield equal draws.
func Resample(s *Sample, size int, seed uint64) *Sample {
	if size <= 0 {
		size = s.N()
	}
	if seed == 0 {
		seed = randomSeed()
	}
	xs := make([]float64, size)
	resampleInto(xs, s.xs, exprand.New(exprand.NewSource(seed)))
	sort.Float64s(xs)
	return &Sample{xs: xs}
}

// BootstrapReplicates draws opts.Iterations paired bootstrap
// replicates of stat: each replicate resamples a and b independently
// with replacement and applies stat to the resampled pair. The
// returned slice is indexed by replicate and is deterministic in
// opts.Seed; a zero seed draws a random base. A nil stat means
// MeanDiff.
func BootstrapReplicates(a, b *Sample, stat Statistic, opts *Options) ([]float64, error) {
	o := options(opts)
	if err := o.validateEngine(); err != nil {
		return nil, err
	}
	if stat == nil {
		stat = MeanDiff
	}
	base := o.Seed
	if base == 0 {
		base = randomSeed()
	}

	sizeA, sizeB := a.N(), b.N()
	if o.ResampleSize > 0 {
		sizeA, sizeB = o.ResampleSize, o.ResampleSize
	}

	dist := make([]float64, o.Iterations)
	parallelFor(o.Iterations, o.workers(), func(lo, hi int) {
		x := make([]float64, sizeA)
		y := make([]float64, sizeB)
		for i := lo; i < hi; i++ {
			rng := replicateRNG(base, i)
			resampleInto(x, a.xs, rng)
			resampleInto(y, b.xs, rng)
			dist[i] = stat.Apply(x, y)
		}
	})
	return dist, nil
}
