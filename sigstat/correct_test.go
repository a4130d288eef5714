// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonferroni(t *testing.T) {
	for _, test := range []struct {
		name    string
		pvalues []float64
		alpha   float64
		want    []bool
	}{
		{"two hypotheses", []float64{0.01, 0.04}, 0.05, []bool{true, false}},
		{"single", []float64{0.04}, 0.05, []bool{true}},
		{"threshold is strict", []float64{0.025, 0.01}, 0.05, []bool{false, true}},
		{"none reject", []float64{0.5, 0.6, 0.7}, 0.05, []bool{false, false, false}},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Bonferroni(test.pvalues, test.alpha)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestBonferroniErrors(t *testing.T) {
	_, err := Bonferroni(nil, 0.05)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Bonferroni([]float64{0.5, 1.5}, 0.05)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Bonferroni([]float64{math.NaN()}, 0.05)
	require.ErrorIs(t, err, ErrInvalidInput)

	for _, alpha := range []float64{0, 1, -0.5, 2} {
		_, err := Bonferroni([]float64{0.5}, alpha)
		require.ErrorIs(t, err, ErrConfidenceLevel, "alpha=%v", alpha)
	}
}

func TestBonferroniAdjust(t *testing.T) {
	got, err := BonferroniAdjust([]float64{0.01, 0.04})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.02, 0.08}, got)

	// Adjusted values are clamped to 1.
	got, err = BonferroniAdjust([]float64{0.7, 0.9})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, got)

	// A single hypothesis is unchanged.
	got, err = BonferroniAdjust([]float64{0.3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3}, got)

	_, err = BonferroniAdjust([]float64{-0.1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestFisher(t *testing.T) {
	// One p-value combines to itself: the χ²(2) survival function
	// is exp(-x/2), which inverts the -2·ln(p) transform.
	p, err := Fisher([]float64{0.3})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, p, 1e-12)

	// Two p-values of 0.5: X = -2·ln(0.25) = 2·ln(4), and the
	// χ²(4) survival is e^(-X/2)·(1+X/2) = 0.25·(1+ln 4).
	p, err = Fisher([]float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.25*(1+math.Log(4)), p, 1e-9)

	// All-ones agreement carries no evidence.
	p, err = Fisher([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-12)

	// A certain rejection anywhere forces the combination to 0.
	p, err = Fisher([]float64{0, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	// Stronger evidence combines to a smaller p-value.
	strong, err := Fisher([]float64{0.01, 0.02})
	require.NoError(t, err)
	weak, err := Fisher([]float64{0.5, 0.6})
	require.NoError(t, err)
	assert.Less(t, strong, weak)
}

func TestFisherErrors(t *testing.T) {
	_, err := Fisher(nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Fisher([]float64{0.5, -0.01})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Fisher([]float64{1.01})
	require.ErrorIs(t, err, ErrInvalidInput)
}
