// Copyright 2025 The deep-significance Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scorefmt

import (
	"os"
	"path/filepath"
)

// Files reads scores from a sequence of input files.
//
// Each file carries its own default model for bare-value lines,
// derived from the file name, so a file per model is the simplest
// layout.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowStdin bool

	// pos is the position of the next file to read from in Paths
	// when the current file is exhausted.
	pos int

	reader  Reader
	file    *os.File
	isStdin bool
	err     error
}

// defaultModel derives a model name from a file path: the base name
// with any extension trimmed, or "stdin" for standard input.
func defaultModel(path string, isStdin bool) string {
	if isStdin {
		return "stdin"
	}
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = base[:len(base)-len(ext)]
	}
	return base
}

// Scan advances the reader to the next score in the sequence of files
// and returns true if a score was read. The caller should use the
// Score method to get the score. If an I/O error occurs, or this
// reaches the end of the file sequence, it returns false and the
// caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	for {
		if f.file == nil {
			// Open the next file.
			var path string
			if f.AllowStdin && len(f.Paths) == 0 && f.pos == 0 {
				path = "-"
			} else if f.pos < len(f.Paths) {
				path = f.Paths[f.pos]
			} else {
				// We're out of files.
				return false
			}
			f.pos++
			if f.AllowStdin && path == "-" {
				f.isStdin, f.file = true, os.Stdin
				f.reader.Reset(f.file, "stdin", defaultModel(path, true))
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
				f.reader.Reset(f.file, path, defaultModel(path, false))
			}
		}

		// Try to get the next score.
		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		if err != nil {
			f.err = err
			break
		}
		// Just an EOF. Close this file and open the next.
		if !f.isStdin {
			f.file.Close()
		}
		f.file = nil
	}
	// We're out of files.
	return false
}

// Score returns the last score read, or an error if the line was
// malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
func (f *Files) Score() (Score, error) {
	return f.reader.Score()
}

// Err returns the first non-EOF I/O error that was encountered by the
// Files.
func (f *Files) Err() error {
	return f.err
}

// ReadAll reads every score from the sequence of files into a Set.
// Per-line syntax errors are collected and returned after the whole
// input is consumed; an I/O error stops the read.
func (f *Files) ReadAll() (*Set, []error, error) {
	set := NewSet()
	var syntaxErrs []error
	for f.Scan() {
		score, err := f.Score()
		if err != nil {
			syntaxErrs = append(syntaxErrs, err)
			continue
		}
		set.Add(score)
	}
	if err := f.Err(); err != nil {
		return nil, syntaxErrs, err
	}
	return set, syntaxErrs, nil
}
