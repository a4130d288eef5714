// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// checkPValues validates a family of p-values.
func checkPValues(pvalues []float64) error {
	if len(pvalues) == 0 {
		return fmt.Errorf("%w: need at least one p-value", ErrInvalidInput)
	}
	for i, p := range pvalues {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: p-value %d is %v, want [0, 1]", ErrInvalidInput, i, p)
		}
	}
	return nil
}

// Bonferroni reports, for each p-value in a family of m hypotheses,
// whether it is significant at family-wise level alpha: p < alpha/m.
// It controls the family-wise error rate at alpha regardless of
// dependence between the hypotheses.
func Bonferroni(pvalues []float64, alpha float64) ([]bool, error) {
	if err := checkPValues(pvalues); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	threshold := alpha / float64(len(pvalues))
	reject := make([]bool, len(pvalues))
	for i, p := range pvalues {
		reject[i] = p < threshold
	}
	return reject, nil
}

// BonferroniAdjust returns the Bonferroni-adjusted p-values
// min(1, p·m). An adjusted value can be compared against the
// unadjusted significance level directly.
func BonferroniAdjust(pvalues []float64) ([]float64, error) {
	if err := checkPValues(pvalues); err != nil {
		return nil, err
	}
	m := float64(len(pvalues))
	adjusted := make([]float64, len(pvalues))
	for i, p := range pvalues {
		adjusted[i] = math.Min(1, p*m)
	}
	return adjusted, nil
}

// Fisher combines a family of independent p-values into one by
// Fisher's method: X = -2·Σ ln(p_i) follows a χ² distribution with 2m
// degrees of freedom under the joint null, and the combined p-value is
// that distribution's survival function at X.
//
// A zero p-value in the family forces the combined p-value to zero.
func Fisher(pvalues []float64) (float64, error) {
	if err := checkPValues(pvalues); err != nil {
		return 0, err
	}
	x := 0.0
	for _, p := range pvalues {
		if p == 0 {
			return 0, nil
		}
		x += math.Log(p)
	}
	x *= -2
	chi := distuv.ChiSquared{K: 2 * float64(len(pvalues))}
	return chi.Survival(x), nil
}
