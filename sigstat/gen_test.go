// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigstat

import (
	"testing"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// mustSample builds a Sample from literal scores.
func mustSample(t *testing.T, scores ...float64) *Sample {
	t.Helper()
	s, err := NewSample(scores)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// normalScores draws a fixed pseudo-random sample of n scores from
// N(mu, sigma) for use as a test fixture.
func normalScores(t *testing.T, n int, mu, sigma float64, seed uint64) *Sample {
	t.Helper()
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: exprand.NewSource(seed)}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = dist.Rand()
	}
	s, err := NewSample(xs)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
