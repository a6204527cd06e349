// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dmatrix implements a symmetric matrix
// of pairwise evolutionary distances
// between a set of named taxa.
package dmatrix

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

// ErrDuplicate is returned when creating a matrix
// with a repeated taxon name.
var ErrDuplicate = errors.New("duplicate taxon name")

// ErrInsufficientInput is returned when creating a matrix
// with fewer than two taxa.
var ErrInsufficientInput = errors.New("at least two taxa required")

// A Matrix is a symmetric pairwise distance matrix
// over a fixed ordered set of taxon names.
// The diagonal is always zero.
// A matrix is read-only after construction.
type Matrix struct {
	names  []string
	nameID map[string]int
	d      *mat.SymDense
}

// New creates a distance matrix
// for the given taxon names,
// with all distances set to zero.
func New(names []string) (*Matrix, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientInput, len(names))
	}

	m := &Matrix{
		names:  make([]string, len(names)),
		nameID: make(map[string]int, len(names)),
		d:      mat.NewSymDense(len(names), nil),
	}
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, fmt.Errorf("taxon %d: empty name", i)
		}
		if _, ok := m.nameID[n]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, n)
		}
		m.names[i] = n
		m.nameID[n] = i
	}
	return m, nil
}

// Len returns the number of taxa in a matrix.
func (m *Matrix) Len() int {
	return len(m.names)
}

// Names returns the taxon names of a matrix,
// in the order used to build it.
func (m *Matrix) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Distance returns the distance
// between two named taxa.
// It panics if a taxon is not in the matrix.
func (m *Matrix) Distance(a, b string) float64 {
	i, ok := m.nameID[a]
	if !ok {
		panic(fmt.Sprintf("dmatrix: unknown taxon %q", a))
	}
	j, ok := m.nameID[b]
	if !ok {
		panic(fmt.Sprintf("dmatrix: unknown taxon %q", b))
	}
	return m.d.At(i, j)
}

// At returns the distance between two taxa
// by their position in the matrix.
func (m *Matrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Max returns the largest distance in a matrix.
func (m *Matrix) Max() float64 {
	var max float64
	for i := range m.names {
		for j := i + 1; j < len(m.names); j++ {
			if d := m.d.At(i, j); d > max {
				max = d
			}
		}
	}
	return max
}

// set sets the distance between taxa i and j.
// The matrix is symmetric,
// so the distance j to i is also set.
func (m *Matrix) set(i, j int, d float64) {
	if i == j {
		return
	}
	m.d.SetSym(i, j, d)
}

var header = []string{
	"taxon_a",
	"taxon_b",
	"distance",
}

// ReadTSV reads a distance matrix from a TSV file.
//
// The TSV must contain the following fields:
//
//   - taxon_a, the name of the first taxon of a pair
//   - taxon_b, the name of the second taxon of a pair
//   - distance, the distance between the two taxa
//
// Taxa are added in the order of their first appearance.
// Every unordered pair of taxa must appear exactly once.
//
// Here is an example file:
//
//	# evotree distance matrix
//	taxon_a	taxon_b	distance
//	Homo_sapiens	Pan_troglodytes	0.25
//	Homo_sapiens	Gorilla_gorilla	0.5
//	Pan_troglodytes	Gorilla_gorilla	0.5
func ReadTSV(r io.Reader) (*Matrix, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	type pair struct {
		a, b string
		d    float64
	}
	var pairs []pair
	var names []string
	seen := make(map[string]bool)
	seenPair := make(map[[2]string]bool)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxon_a"
		a := strings.TrimSpace(row[fields[f]])

		f = "taxon_b"
		b := strings.TrimSpace(row[fields[f]])

		f = "distance"
		d, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d, field %q: %v", ln, f, err)
		}
		if a == b {
			return nil, fmt.Errorf("on row %d: taxon %q paired with itself", ln, a)
		}
		key := [2]string{a, b}
		if b < a {
			key = [2]string{b, a}
		}
		if seenPair[key] {
			return nil, fmt.Errorf("on row %d: repeated pair %q-%q", ln, a, b)
		}
		seenPair[key] = true

		if !seen[a] {
			seen[a] = true
			names = append(names, a)
		}
		if !seen[b] {
			seen[b] = true
			names = append(names, b)
		}
		pairs = append(pairs, pair{a: a, b: b, d: d})
	}

	m, err := New(names)
	if err != nil {
		return nil, err
	}
	if want := len(names) * (len(names) - 1) / 2; len(pairs) != want {
		return nil, fmt.Errorf("got %d pairs, want %d", len(pairs), want)
	}
	for _, p := range pairs {
		m.set(m.nameID[p.a], m.nameID[p.b], p.d)
	}
	return m, nil
}

// TSV writes a distance matrix to a TSV file.
func (m *Matrix) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# evotree distance matrix\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for i, a := range m.names {
		for j := i + 1; j < len(m.names); j++ {
			row := []string{
				a,
				m.names[j],
				strconv.FormatFloat(m.d.At(i, j), 'g', -1, 64),
			}
			if err := tsv.Write(row); err != nil {
				return fmt.Errorf("pair %q-%q: %v", a, m.names[j], err)
			}
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
