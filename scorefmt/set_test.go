// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scorefmt

import (
	"reflect"
	"testing"
)

func TestSet(t *testing.T) {
	s := NewSet()
	if s.Len() != 0 {
		t.Fatalf("empty set has Len %d", s.Len())
	}
	s.Add(Score{"b", 1})
	s.Add(Score{"a", 2})
	s.Add(Score{"b", 3})

	if s.Len() != 2 {
		t.Errorf("got Len %d, want 2", s.Len())
	}
	if got, want := s.Models(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got models %v, want %v", got, want)
	}
	if got, want := s.Scores("b"), []float64{1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("got b=%v, want %v", got, want)
	}
	if got, want := s.Scores("a"), []float64{2}; !reflect.DeepEqual(got, want) {
		t.Errorf("got a=%v, want %v", got, want)
	}
	if got := s.Scores("zzz"); got != nil {
		t.Errorf("got %v for unknown model, want nil", got)
	}
}

func TestSetCopies(t *testing.T) {
	s := NewSet()
	s.Add(Score{"b", 1})
	s.Add(Score{"a", 2})

	// Mutating returned slices must not reach into the Set.
	s.Models()[0] = "x"
	if got := s.Models()[0]; got != "b" {
		t.Errorf("model order changed through returned slice: got %q", got)
	}
	s.Scores("b")[0] = 99
	if got := s.Scores("b")[0]; got != 1 {
		t.Errorf("scores changed through returned slice: got %v", got)
	}
}
