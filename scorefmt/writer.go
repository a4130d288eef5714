// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scorefmt

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Writer writes the score file format.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a Writer that writes scores to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes one score line to w. Values written by Write parse back
// to the same Score.
func (w *Writer) Write(score Score) error {
	if score.Model == "" {
		return fmt.Errorf("empty model name")
	}
	if strings.ContainsAny(score.Model, " \t#") {
		return fmt.Errorf("model name %q contains space or '#'", score.Model)
	}
	if math.IsNaN(score.Value) || math.IsInf(score.Value, 0) {
		return fmt.Errorf("score for model %q must be finite", score.Model)
	}

	w.buf.Reset()
	w.buf.WriteString(score.Model)
	w.buf.WriteByte(' ')
	w.buf.WriteString(strconv.FormatFloat(score.Value, 'g', -1, 64))
	w.buf.WriteByte('\n')
	_, err := w.w.Write(w.buf.Bytes())
	return err
}
