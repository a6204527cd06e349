// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phytree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/js-arias/evotree/phytree"
)

func TestNewick(t *testing.T) {
	tests := map[string]string{
		"three taxa":  "(A:0.125,B:0.125,C:0.875);",
		"nested":      "(((a:2,b:3):3,c:4):2,d:2,e:1);",
		"two taxa":    "(A:0.5,B:0);",
		"small edges": "(a:1e-05,b:0.0001);",
	}
	for name, nwk := range tests {
		tr := readTree(t, nwk)

		var buf bytes.Buffer
		if err := tr.Newick(&buf); err != nil {
			t.Fatalf("%s: error when writing tree: %v", name, err)
		}
		if got := strings.TrimSpace(buf.String()); got != nwk {
			t.Errorf("%s: got %q, want %q", name, got, nwk)
		}
	}
}

func TestReadNewick(t *testing.T) {
	blob := `
(a:1,(b:2,c:3):4);
(d:1,e:2);
`
	trees, err := phytree.ReadNewick(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("got %d trees, want 2", len(trees))
	}
	if terms := trees[1].Terms(); len(terms) != 2 {
		t.Errorf("second tree: got %d terminals, want 2", len(terms))
	}
}

// Internal node labels,
// as written by several phylogenetic programs,
// are accepted and ignored.
func TestReadNewickInternalLabels(t *testing.T) {
	tr := readTree(t, "(a:1,(b:2,c:3)Inner1:4)Inner2;")

	terms := []string{"a", "b", "c"}
	if ls := tr.Terms(); len(ls) != len(terms) {
		t.Errorf("terminals: got %v, want %v", ls, terms)
	}
	for _, n := range tr.Nodes() {
		if !n.IsTerm() && n.Name != "" {
			t.Errorf("internal node: unexpected name %q", n.Name)
		}
	}
}

func TestReadNewickErrors(t *testing.T) {
	tests := map[string]string{
		"empty input":        "",
		"missing semicolon":  "(a:1,b:2)",
		"unbalanced":         "(a:1,(b:2,c:3):4;",
		"bad length":         "(a:one,b:2);",
		"unnamed terminal":   "(a:1,:2);",
		"duplicate terminal": "(a:1,a:2);",
	}
	for name, blob := range tests {
		if _, err := phytree.ReadNewick(strings.NewReader(blob)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
