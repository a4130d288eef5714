// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import (
	"fmt"
	"math"
)

// Result is the output of an ASO comparison.
type Result struct {
	// EpsMin is the corrected upper bound on the violation ratio.
	// Values below 0.5 support the claim that the first model
	// almost stochastically dominates the second; values near 0
	// indicate clear superiority; values at or above 0.5 indicate
	// no evidence of dominance.
	EpsMin float64

	// ViolationRatio is the uncorrected violation ratio w observed
	// on the input samples.
	ViolationRatio float64

	// Sigma is the standard deviation of the bootstrap replicates
	// of w. It is a spread diagnostic and does not enter EpsMin.
	Sigma float64

	// N1 and N2 are the input sample sizes.
	N1, N2 int

	// Iterations is the number of bootstrap replicates drawn.
	Iterations int

	// ConfidenceLevel is the significance level α used for the
	// bootstrap quantile correction.
	ConfidenceLevel float64

	// Seed is the base seed actually used, recorded so a run with
	// a random seed can be reproduced afterwards.
	Seed uint64

	// Warnings is a list of warnings attached to this result, such
	// as too few scores for a stable estimate.
	Warnings []error
}

func (r *Result) String() string {
	return fmt.Sprintf("eps=%.3f w=%.3f n=%d+%d", r.EpsMin, r.ViolationRatio, r.N1, r.N2)
}

// ASO runs the Almost Stochastic Order test: does model a's score
// distribution almost stochastically dominate model b's?
//
// It computes the violation ratio w(a, b), bootstraps w over
// opts.Iterations paired resamples, and returns
//
//	ε_min = min(1, Q(1-α))
//
// where Q is the quantile function of the bootstrap replicates and α
// is opts.ConfidenceLevel. ε_min is a (1-α)-confidence upper bound on
// the true violation ratio; see Result.EpsMin for interpretation.
//
// ASO returns an error wrapping ErrConfidenceLevel if α is outside
// (0, 1) and wrapping ErrInvalidInput for bad engine options.
func ASO(a, b *Sample, opts *Options) (*Result, error) {
	o := options(opts)
	if err := o.validateAlpha(); err != nil {
		return nil, err
	}
	if err := o.validateEngine(); err != nil {
		return nil, err
	}
	if o.Seed == 0 {
		o.Seed = randomSeed()
	}

	w := ViolationRatio(a, b)
	replicates, err := BootstrapReplicates(a, b, violationStat{}, &o)
	if err != nil {
		return nil, err
	}
	d := newReplicateDist(replicates)
	eps := math.Min(1, d.quantile(1-o.ConfidenceLevel))

	return &Result{
		EpsMin:          eps,
		ViolationRatio:  w,
		Sigma:           d.stdDev(),
		N1:              a.N(),
		N2:              b.N(),
		Iterations:      o.Iterations,
		ConfidenceLevel: o.ConfidenceLevel,
		Seed:            o.Seed,
		Warnings:        commonWarnings(a.N(), b.N(), o.Iterations),
	}, nil
}

// A Model pairs a name with its score sample for multi-model
// comparison. Order matters: MultiASO reports models in input order.
type Model struct {
	Name   string
	Sample *Sample
}

// Matrix is the output of MultiASO.
type Matrix struct {
	// Models lists the model names in input order. Row and column
	// i of Eps refer to Models[i].
	Models []string

	// Eps[i][j] is ε_min for "model i almost stochastically
	// dominates model j". The diagonal is NaN: dominance over
	// oneself is undefined.
	Eps [][]float64

	// Alpha is the Bonferroni-adjusted per-pair significance level
	// actually used: the requested α divided by the number of
	// ordered pairs.
	Alpha float64

	// Iterations is the number of bootstrap replicates per pair.
	Iterations int

	// Seed is the base seed actually used for the whole matrix.
	Seed uint64

	// Warnings aggregates the distinct warnings from all pairs.
	Warnings []error
}

// At returns ε_min for "Models[i] almost stochastically dominates
// Models[j]". It is NaN when i == j.
func (m *Matrix) At(i, j int) float64 { return m.Eps[i][j] }

// MultiASO runs ASO for every ordered pair of models and collects the
// ε_min values in a k×k matrix. Each direction of each pair is
// computed independently; no symmetry between Eps[i][j] and Eps[j][i]
// is assumed.
//
// Because k(k-1) hypotheses are tested, the significance level is
// Bonferroni-adjusted to α/(k(k-1)) before the per-pair correction.
// Pair p derives its seed as Seed + p·(Iterations+1) so the pair
// streams are disjoint and the entire matrix is reproducible from the
// recorded base seed.
func MultiASO(models []Model, opts *Options) (*Matrix, error) {
	if len(models) < 2 {
		return nil, fmt.Errorf("%w: need at least two models; have %d", ErrInvalidInput, len(models))
	}
	for _, m := range models {
		if m.Sample == nil {
			return nil, fmt.Errorf("%w: model %q has no sample", ErrInvalidInput, m.Name)
		}
	}
	o := options(opts)
	if err := o.validateAlpha(); err != nil {
		return nil, err
	}
	if err := o.validateEngine(); err != nil {
		return nil, err
	}
	if o.Seed == 0 {
		o.Seed = randomSeed()
	}

	k := len(models)
	pairs := k * (k - 1)
	mat := &Matrix{
		Models:     make([]string, k),
		Eps:        make([][]float64, k),
		Alpha:      o.ConfidenceLevel / float64(pairs),
		Iterations: o.Iterations,
		Seed:       o.Seed,
	}
	for i, m := range models {
		mat.Models[i] = m.Name
		mat.Eps[i] = make([]float64, k)
	}

	seen := make(map[string]bool)
	done := 0
	for i := range models {
		for j := range models {
			if i == j {
				mat.Eps[i][j] = math.NaN()
				continue
			}
			po := o
			po.ConfidenceLevel = mat.Alpha
			po.Seed = o.Seed + uint64(done)*uint64(o.Iterations+1)
			r, err := ASO(models[i].Sample, models[j].Sample, &po)
			if err != nil {
				return nil, err
			}
			mat.Eps[i][j] = r.EpsMin
			for _, w := range r.Warnings {
				if !seen[w.Error()] {
					seen[w.Error()] = true
					mat.Warnings = append(mat.Warnings, w)
				}
			}
			done++
			if o.Progress != nil {
				o.Progress(done, pairs)
			}
		}
	}
	return mat, nil
}
