// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scorefmt

import (
	"bytes"
	"math"
	"reflect"
	"testing"
)

func TestWriterRoundTrip(t *testing.T) {
	scores := []Score{
		{"a", 1.5},
		{"b", -0.25},
		{"a", 1e-9},
		{"c", 12345.6789},
		{"c", 0},
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, s := range scores {
		if err := w.Write(s); err != nil {
			t.Fatalf("Write(%v) failed: %v", s, err)
		}
	}

	r := NewReader(&buf, "buf", "")
	var got []Score
	for r.Scan() {
		score, err := r.Score()
		if err != nil {
			t.Fatal("Score() failed: ", err)
		}
		got = append(got, score)
	}
	if err := r.Err(); err != nil {
		t.Fatal("Err() failed: ", err)
	}
	if !reflect.DeepEqual(got, scores) {
		t.Errorf("got %v, want %v", got, scores)
	}
}

func TestWriterInvalid(t *testing.T) {
	tests := []struct {
		name  string
		score Score
	}{
		{"emptyModel", Score{"", 1}},
		{"spaceInModel", Score{"a b", 1}},
		{"tabInModel", Score{"a\tb", 1}},
		{"hashInModel", Score{"a#1", 1}},
		{"nan", Score{"a", math.NaN()}},
		{"inf", Score{"a", math.Inf(1)}},
		{"negInf", Score{"a", math.Inf(-1)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := NewWriter(&buf).Write(test.score)
			if err == nil {
				t.Fatalf("Write(%v) succeeded, want error", test.score)
			}
			if buf.Len() != 0 {
				t.Errorf("Write(%v) emitted %q before failing", test.score, buf.String())
			}
		})
	}
}
