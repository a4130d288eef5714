// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import "fmt"

// TestResult is the output of a bootstrap or permutation test.
type TestResult struct {
	// P is the one-sided Monte Carlo p-value for the hypothesis
	// that the first model is superior. Ties between replicates
	// and the reference value count toward P, so the estimate is
	// conservative.
	P float64

	// Statistic names the test statistic used.
	Statistic string

	// Value is the observed statistic on the input samples.
	Value float64

	// N1 and N2 are the input sample sizes.
	N1, N2 int

	// Iterations is the number of replicates drawn.
	Iterations int

	// Seed is the base seed actually used.
	Seed uint64

	// Warnings is a list of warnings attached to this result.
	Warnings []error
}

func (r *TestResult) String() string {
	return fmt.Sprintf("p=%.3f %s=%.3f n=%d+%d", r.P, r.Statistic, r.Value, r.N1, r.N2)
}

// BootstrapTest runs a one-sided paired bootstrap test of whether the
// first model is superior under stat (nil means MeanDiff).
//
// With observed statistic δ = stat(a, b), it draws opts.Iterations
// bootstrap replicates δ* and estimates
//
//	p = #{δ* >= 2δ} / Iterations,
//
// the bootstrap probability that the recentered replicate δ* - δ
// reaches the observed effect, following Efron & Tibshirani (1994).
// The confidence level in opts is not consumed; judging p is the
// caller's concern (see Bonferroni).
func BootstrapTest(a, b *Sample, stat Statistic, opts *Options) (*TestResult, error) {
	o := options(opts)
	if err := o.validateEngine(); err != nil {
		return nil, err
	}
	if stat == nil {
		stat = MeanDiff
	}
	if o.Seed == 0 {
		o.Seed = randomSeed()
	}

	observed := stat.Apply(a.Values(), b.Values())
	dist, err := BootstrapReplicates(a, b, stat, &o)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, d := range dist {
		if d >= 2*observed {
			count++
		}
	}
	return &TestResult{
		P:          float64(count) / float64(len(dist)),
		Statistic:  stat.Name(),
		Value:      observed,
		N1:         a.N(),
		N2:         b.N(),
		Iterations: o.Iterations,
		Seed:       o.Seed,
		Warnings:   commonWarnings(a.N(), b.N(), o.Iterations),
	}, nil
}

// PermutationTest runs a one-sided Monte Carlo permutation test of
// whether the first model is superior under stat (nil means MeanDiff):
//
//	p = #{stat(permuted) >= stat(observed)} / Iterations
//
// over random relabelings of the pooled scores. The confidence level
// in opts is not consumed.
func PermutationTest(a, b *Sample, stat Statistic, opts *Options) (*TestResult, error) {
	o := options(opts)
	if err := o.validateEngine(); err != nil {
		return nil, err
	}
	if stat == nil {
		stat = MeanDiff
	}
	if o.Seed == 0 {
		o.Seed = randomSeed()
	}

	dist, observed, err := PermutationReplicates(a, b, stat, &o)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, d := range dist {
		if d >= observed {
			count++
		}
	}
	return &TestResult{
		P:          float64(count) / float64(len(dist)),
		Statistic:  stat.Name(),
		Value:      observed,
		N1:         a.N(),
		N2:         b.N(),
		Iterations: o.Iterations,
		Seed:       o.Seed,
		Warnings:   commonWarnings(a.N(), b.N(), o.Iterations),
	}, nil
}
