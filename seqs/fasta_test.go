// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package seqs_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/evotree/seqs"
)

var fastaBlob = `; example sequences
>Homo_sapiens human
ACGTACGTACGT
ACGTACGT
>Pan_troglodytes
ACGTACGAACGT

>Gorilla_gorilla
acgttcgaacga
`

func TestRead(t *testing.T) {
	c, err := seqs.Read(strings.NewReader(fastaBlob))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Homo_sapiens",
		"Pan_troglodytes",
		"Gorilla_gorilla",
	}
	if ls := c.Names(); !reflect.DeepEqual(ls, want) {
		t.Errorf("names: got %v, want %v", ls, want)
	}

	// sequence lines are concatenated
	if s := c.Sequence("Homo_sapiens"); s != "ACGTACGTACGTACGTACGT" {
		t.Errorf("sequence: got %q", s)
	}
	if s := c.Sequence("Gorilla_gorilla"); s != "acgttcgaacga" {
		t.Errorf("sequence: got %q", s)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"residues without header": "ACGTACGT\n",
		"empty record":            ">Homo_sapiens\n>Pan_troglodytes\nACGT\n",
		"duplicate name":          ">Homo_sapiens\nACGT\n>Homo_sapiens\nACGA\n",
		"header without name":     ">\nACGT\n",
	}
	for name, blob := range tests {
		if _, err := seqs.Read(strings.NewReader(blob)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestFASTA(t *testing.T) {
	c, err := seqs.Read(strings.NewReader(fastaBlob))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := c.FASTA(&buf); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	nc, err := seqs.Read(&buf)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}

	if !reflect.DeepEqual(nc.Names(), c.Names()) {
		t.Errorf("names: got %v, want %v", nc.Names(), c.Names())
	}
	for _, n := range c.Names() {
		if nc.Sequence(n) != c.Sequence(n) {
			t.Errorf("sequence %q: got %q, want %q", n, nc.Sequence(n), c.Sequence(n))
		}
	}
}
