// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package alnparam implements reading and writing
// of the scoring parameters
// used for pairwise sequence alignments.
package alnparam

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/evotree/align"
)

// Param is a keyword to identify
// the type of parameter in an alignment parameters file.
type Param string

// Valid parameters
const (
	// Match is the score of two identical residues.
	Match Param = "match"

	// Mismatch is the score of two different residues.
	Mismatch Param = "mismatch"

	// Gap is the score of a residue
	// aligned with a gap.
	Gap Param = "gap"
)

// AP represents a collection of alignment parameters.
type AP struct {
	name string // file name

	match    float64
	mismatch float64
	gap      float64
}

// New creates a new parameter collection
// with the identity scoring scheme
// (match one, mismatch zero, gap minus one).
func New(name string) *AP {
	return &AP{
		name:  name,
		match: 1,
		gap:   -1,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads an alignment parameters file
// from a TSV file.
//
// The TSV must contain the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# evotree alignment parameters
//	parameter	value
//	match	1
//	mismatch	0
//	gap	-1
func Read(name string) (*AP, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	ap := New(name)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "parameter"
		p := Param(strings.ToLower(row[fields[f]]))

		f = "value"
		v, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
		}
		switch p {
		case Match:
			if err := ap.SetMatch(v); err != nil {
				return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
			}
		case Mismatch:
			ap.mismatch = v
		case Gap:
			ap.gap = v
		}
	}
	return ap, nil
}

// Gap returns the score of a residue
// aligned with a gap.
func (ap *AP) Gap() float64 {
	return ap.gap
}

// Match returns the score of two identical residues.
func (ap *AP) Match() float64 {
	return ap.match
}

// Mismatch returns the score of two different residues.
func (ap *AP) Mismatch() float64 {
	return ap.mismatch
}

// Name returns the file name
// of a parameter collection.
func (ap *AP) Name() string {
	return ap.name
}

// Scoring returns the scoring scheme
// defined by a parameter collection.
func (ap *AP) Scoring() align.Scoring {
	return align.Scoring{
		Match:    ap.match,
		Mismatch: ap.mismatch,
		Gap:      ap.gap,
	}
}

// SetGap sets the score of a residue
// aligned with a gap.
func (ap *AP) SetGap(v float64) {
	ap.gap = v
}

// SetMatch sets the score of two identical residues.
// The match score must be positive.
func (ap *AP) SetMatch(v float64) error {
	if v <= 0 {
		return fmt.Errorf("invalid match score: %.6f", v)
	}
	ap.match = v
	return nil
}

// SetMismatch sets the score of two different residues.
func (ap *AP) SetMismatch(v float64) {
	ap.mismatch = v
}

// SetName sets the file name of a parameter collection.
func (ap *AP) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	ap.name = name
}

// Write writes a parameter collection into a file.
func (ap *AP) Write() (err error) {
	f, err := os.Create(ap.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# evotree alignment parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", ap.name, err)
	}

	rows := [][]string{
		{string(Match), strconv.FormatFloat(ap.match, 'g', -1, 64)},
		{string(Mismatch), strconv.FormatFloat(ap.mismatch, 'g', -1, 64)},
		{string(Gap), strconv.FormatFloat(ap.gap, 'g', -1, 64)},
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", ap.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", ap.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", ap.name, err)
	}
	return nil
}
