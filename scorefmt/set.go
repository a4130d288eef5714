// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scorefmt

// A Set groups scores by model, retaining models in the order they
// first appear. Ordering matters because comparisons downstream are
// directional, so callers present models in input order.
type Set struct {
	models []string
	pos    map[string]int
	scores [][]float64
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{pos: make(map[string]int)}
}

// Add records one score, creating the model on first sight.
func (s *Set) Add(score Score) {
	i, ok := s.pos[score.Model]
	if !ok {
		i = len(s.models)
		s.pos[score.Model] = i
		s.models = append(s.models, score.Model)
		s.scores = append(s.scores, nil)
	}
	s.scores[i] = append(s.scores[i], score.Value)
}

// Len returns the number of distinct models in the Set.
func (s *Set) Len() int {
	return len(s.models)
}

// Models returns the model names in first-seen order. The caller owns
// the returned slice.
func (s *Set) Models() []string {
	out := make([]string, len(s.models))
	copy(out, s.models)
	return out
}

// Scores returns the scores recorded for model in input order, or nil
// if the model is unknown. The caller owns the returned slice.
func (s *Set) Scores(model string) []float64 {
	i, ok := s.pos[model]
	if !ok {
		return nil
	}
	out := make([]float64, len(s.scores[i]))
	copy(out, s.scores[i])
	return out
}
