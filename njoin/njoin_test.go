// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package njoin_test

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/js-arias/evotree/dmatrix"
	"github.com/js-arias/evotree/njoin"
)

func newMatrix(t testing.TB, names []string, dist map[[2]string]float64) *dmatrix.Matrix {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("taxon_a\ttaxon_b\tdistance\n")
	for i, a := range names {
		for _, b := range names[i+1:] {
			d, ok := dist[[2]string{a, b}]
			if !ok {
				d = dist[[2]string{b, a}]
			}
			buf.WriteString(a + "\t" + b + "\t" + strconv.FormatFloat(d, 'g', -1, 64) + "\n")
		}
	}
	m, err := dmatrix.ReadTSV(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func newick(t testing.TB, m *dmatrix.Matrix) string {
	t.Helper()

	tr, err := njoin.Build(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := tr.Newick(&buf); err != nil {
		t.Fatalf("error when writing tree: %v", err)
	}
	return strings.TrimSpace(buf.String())
}

func TestBuild(t *testing.T) {
	m := newMatrix(t, []string{"A", "B", "C"}, map[[2]string]float64{
		{"A", "B"}: 0.25,
		{"A", "C"}: 1,
		{"B", "C"}: 1,
	})

	want := "(A:0.125,B:0.125,C:0.875);"
	if nwk := newick(t, m); nwk != want {
		t.Errorf("tree: got %q, want %q", nwk, want)
	}
}

// A classical five taxon example
// with a single additive tree.
func TestBuildFiveTaxa(t *testing.T) {
	m := newMatrix(t, []string{"a", "b", "c", "d", "e"}, map[[2]string]float64{
		{"a", "b"}: 5,
		{"a", "c"}: 9,
		{"a", "d"}: 9,
		{"a", "e"}: 8,
		{"b", "c"}: 10,
		{"b", "d"}: 10,
		{"b", "e"}: 9,
		{"c", "d"}: 8,
		{"c", "e"}: 7,
		{"d", "e"}: 3,
	})

	want := "(((a:2,b:3):3,c:4):2,d:2,e:1);"
	if nwk := newick(t, m); nwk != want {
		t.Errorf("tree: got %q, want %q", nwk, want)
	}
}

// Distances violating the triangle inequality
// can drive a branch length negative;
// negative lengths are clamped at zero.
func TestBuildClampedLengths(t *testing.T) {
	m := newMatrix(t, []string{"A", "B", "C"}, map[[2]string]float64{
		{"A", "B"}: 0.25,
		{"A", "C"}: 2,
		{"B", "C"}: 0.5,
	})

	want := "(A:0.875,B:0,C:1.125);"
	if nwk := newick(t, m); nwk != want {
		t.Errorf("tree: got %q, want %q", nwk, want)
	}
}

func TestBuildTwoTaxa(t *testing.T) {
	m := newMatrix(t, []string{"A", "B"}, map[[2]string]float64{
		{"A", "B"}: 0.5,
	})

	want := "(A:0.5,B:0);"
	if nwk := newick(t, m); nwk != want {
		t.Errorf("tree: got %q, want %q", nwk, want)
	}
}

func TestBuildNodes(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	dist := map[[2]string]float64{
		{"a", "b"}: 5,
		{"a", "c"}: 4,
		{"a", "d"}: 7,
		{"a", "e"}: 6,
		{"a", "f"}: 8,
		{"b", "c"}: 7,
		{"b", "d"}: 10,
		{"b", "e"}: 9,
		{"b", "f"}: 11,
		{"c", "d"}: 7,
		{"c", "e"}: 6,
		{"c", "f"}: 8,
		{"d", "e"}: 5,
		{"d", "f"}: 9,
		{"e", "f"}: 8,
	}
	m := newMatrix(t, names, dist)

	tr, err := njoin.Build(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	terms := tr.Terms()
	if len(terms) != len(names) {
		t.Errorf("got %d terminals, want %d", len(terms), len(names))
	}

	// an unrooted tree of n terminals
	// has n-2 internal nodes
	internal := tr.Len() - len(terms)
	if internal != len(names)-2 {
		t.Errorf("got %d internal nodes, want %d", internal, len(names)-2)
	}

	// the root must have three children
	if ln := len(tr.Root().Children); ln != 3 {
		t.Errorf("root: got %d children, want %d", ln, 3)
	}
}

// Running the same matrix twice
// must produce the same tree.
func TestBuildDeterministic(t *testing.T) {
	m := newMatrix(t, []string{"a", "b", "c", "d", "e"}, map[[2]string]float64{
		{"a", "b"}: 5,
		{"a", "c"}: 9,
		{"a", "d"}: 9,
		{"a", "e"}: 8,
		{"b", "c"}: 10,
		{"b", "d"}: 10,
		{"b", "e"}: 9,
		{"c", "d"}: 8,
		{"c", "e"}: 7,
		{"d", "e"}: 3,
	})

	first := newick(t, m)
	second := newick(t, m)
	if first != second {
		t.Errorf("non deterministic build: %q != %q", first, second)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := njoin.Build(nil); !errors.Is(err, njoin.ErrInsufficientTaxa) {
		t.Errorf("nil matrix: got error %v, want %v", err, njoin.ErrInsufficientTaxa)
	}
}
