// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scorefmt provides a streaming reader and writer for a
// line-oriented model score format.
//
// A score file records one score per line, optionally prefixed with a
// model name:
//
//	# accuracy on the dev set
//	baseline 0.712
//	tuned 0.731
//	0.724
//
// A model name is a single non-space token. A line holding only a
// score belongs to the reader's default model, which Files derives
// from the input file name. '#' starts a comment running to the end of
// the line, and blank lines are skipped.
//
// The reader is structured as a streaming operation so consumers can
// aggregate scores however suits them; Set provides the common ordered
// model-to-scores grouping.
package scorefmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Score is a single parsed score line.
type Score struct {
	// Model is the name of the model this score belongs to.
	Model string

	// Value is the score itself. Higher is better.
	Value float64
}

// A SyntaxError is a malformed line in a score file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads the score file format.
//
// Use NewReader or Reset to prepare it, then alternate Scan and Score
// until Scan returns false, and check Err for stream errors.
type Reader struct {
	s            *bufio.Scanner
	fileName     string
	defaultModel string
	line         int

	score    Score
	scoreErr error

	// interns maps each model name seen to its first allocation so
	// a large file carries one string per model, not per line.
	interns map[string]string
}

// maxInterns caps the intern table to bound memory on inputs with
// unbounded distinct model names.
const maxInterns = 1024

// NewReader returns a Reader that reads scores from r. fileName is
// used in error messages, and defaultModel names the model for lines
// that hold only a score.
func NewReader(r io.Reader, fileName, defaultModel string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName, defaultModel)
	return reader
}

// Reset resets the reader to begin reading from a new input. It
// retains the intern table, so scores for one model scattered across
// inputs share one name allocation.
func (r *Reader) Reset(ior io.Reader, fileName, defaultModel string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "?"
	}
	r.fileName = fileName
	r.defaultModel = defaultModel
	r.line = 0
	r.score = Score{}
	r.scoreErr = nil
	if r.interns == nil {
		r.interns = make(map[string]string)
	}
}

// Scan advances the reader to the next score line and reports whether
// there is one. After Scan returns false, Err returns the error that
// ended the stream, if any.
func (r *Reader) Scan() bool {
	for r.s.Scan() {
		r.line++
		line := r.s.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		r.score, r.scoreErr = r.parse(fields)
		return true
	}
	return false
}

// parse interprets one non-blank line's fields as a score.
func (r *Reader) parse(fields []string) (Score, error) {
	var model, value string
	switch len(fields) {
	case 1:
		model, value = r.defaultModel, fields[0]
	case 2:
		model, value = r.intern(fields[0]), fields[1]
	default:
		return Score{}, r.syntaxError("want 'model score' or 'score'")
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		msg := err.Error()
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			msg = ne.Err.Error()
		}
		return Score{}, r.syntaxError("parsing score: " + msg)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Score{}, r.syntaxError("score must be finite")
	}
	return Score{Model: model, Value: v}, nil
}

// Score returns the last score line read, or an error if the line was
// malformed.
//
// Parse errors are non-fatal and are reported per line, so the caller
// can continue to call Scan.
func (r *Reader) Score() (Score, error) {
	if r.scoreErr != nil {
		return Score{}, r.scoreErr
	}
	return r.score, nil
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.s.Err()
}

func (r *Reader) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}

func (r *Reader) intern(s string) string {
	if v, ok := r.interns[s]; ok {
		return v
	}
	if len(r.interns) >= maxInterns {
		r.interns = make(map[string]string)
	}
	r.interns[s] = s
	return s
}
