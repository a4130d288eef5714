// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolationRatio(t *testing.T) {
	check := func(name string, a, b *Sample, want float64) {
		t.Helper()
		got := ViolationRatio(a, b)
		assert.InDelta(t, want, got, 1e-12, "%s: w(a, b)", name)
	}

	low := mustSample(t, 1, 2, 3)
	high := mustSample(t, 5, 6, 7)

	// Complete separation: the better sample's CDF never rises
	// above the worse one's.
	check("high beats low", high, low, 0)
	check("low loses to high", low, high, 1)

	// A sample never violates dominance over itself.
	check("self", low, low, 0)

	// Partial overlap, hand-computed: the CDFs differ by at most
	// 1/2, attained on [2, 5).
	a := mustSample(t, 1, 2, 3, 4)
	b := mustSample(t, 3, 4, 5, 6)
	check("worse overlapping", a, b, 0.5)
	check("better overlapping", b, a, 0)

	// Duplicate scores jump the CDFs by more than 1/n at once.
	c := mustSample(t, 1, 1, 2)
	d := mustSample(t, 1, 2, 2)
	check("duplicates", c, d, 1.0/3)
	check("duplicates reversed", d, c, 0)
}

func TestViolationRatioCrossing(t *testing.T) {
	// Crossing CDFs violate dominance in both directions.
	a := mustSample(t, 0, 10)
	b := mustSample(t, 4, 6)
	wab := ViolationRatio(a, b)
	wba := ViolationRatio(b, a)
	assert.InDelta(t, 0.5, wab, 1e-12)
	assert.InDelta(t, 0.5, wba, 1e-12)
}

func TestViolationStatMatchesSamples(t *testing.T) {
	// The engine-facing statistic must agree with the public
	// function, including on unsorted scratch input.
	a := mustSample(t, 0.3, 0.1, 0.9, 0.4)
	b := mustSample(t, 0.2, 0.8, 0.5)
	want := ViolationRatio(a, b)

	got := violationStat{}.Apply([]float64{0.3, 0.1, 0.9, 0.4}, []float64{0.2, 0.8, 0.5})
	assert.Equal(t, want, got)
}
