// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package alnparam_test

import (
	"math"
	"os"
	"testing"

	"github.com/js-arias/evotree/alnparam"
)

func TestAP(t *testing.T) {
	ap := alnparam.New("scores.tab")

	// the default scheme is identity scoring
	testAP(t, ap, 1, 0, -1)

	if err := ap.SetMatch(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ap.SetMismatch(-1)
	ap.SetGap(-2)
	testAP(t, ap, 2, -1, -2)

	s := ap.Scoring()
	if s.Match != 2 || s.Mismatch != -1 || s.Gap != -2 {
		t.Errorf("scoring: got %+v", s)
	}

	if err := ap.SetMatch(0); err == nil {
		t.Errorf("zero match score: expecting error")
	}
	if err := ap.SetMatch(-1); err == nil {
		t.Errorf("negative match score: expecting error")
	}
}

func testAP(t testing.TB, ap *alnparam.AP, match, mismatch, gap float64) {
	t.Helper()

	if v := ap.Match(); math.Abs(v-match) > 1e-9 {
		t.Errorf("match: got %.6f, want %.6f", v, match)
	}
	if v := ap.Mismatch(); math.Abs(v-mismatch) > 1e-9 {
		t.Errorf("mismatch: got %.6f, want %.6f", v, mismatch)
	}
	if v := ap.Gap(); math.Abs(v-gap) > 1e-9 {
		t.Errorf("gap: got %.6f, want %.6f", v, gap)
	}
}

func TestWrite(t *testing.T) {
	name := "tmp-alnparam-for-test.tab"
	defer os.Remove(name)

	ap := alnparam.New(name)
	if err := ap.SetMatch(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ap.SetMismatch(-4)
	ap.SetGap(-10)

	if err := ap.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := alnparam.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testAP(t, np, 5, -4, -10)
	if np.Name() != name {
		t.Errorf("name: got %q, want %q", np.Name(), name)
	}
}
