// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package distmap_test

import (
	"strings"
	"testing"

	"github.com/js-arias/blind"
	"github.com/js-arias/evotree/distmap"
	"github.com/js-arias/evotree/dmatrix"
)

var matrixBlob = `taxon_a	taxon_b	distance
A	B	0.25
A	C	1
B	C	1
`

func newImage(t testing.TB) *distmap.Image {
	t.Helper()

	m, err := dmatrix.ReadTSV(strings.NewReader(matrixBlob))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &distmap.Image{Matrix: m}
}

func TestImage(t *testing.T) {
	img := newImage(t)
	img.Format()

	bounds := img.Bounds()
	if bounds.Dx() != 48 || bounds.Dy() != 48 {
		t.Errorf("bounds: got %dx%d, want 48x48", bounds.Dx(), bounds.Dy())
	}

	// with the default gradient
	// a diagonal cell is the gradient start
	// and the largest distance the gradient end
	want := blind.Sequential(blind.Iridescent, 0)
	if c := img.At(0, 0); c != want {
		t.Errorf("diagonal pixel: got %v, want %v", c, want)
	}
	want = blind.Sequential(blind.Iridescent, 1)
	if c := img.At(40, 0); c != want {
		t.Errorf("largest distance pixel: got %v, want %v", c, want)
	}
}

func TestImageGray(t *testing.T) {
	img := newImage(t)
	img.Gray = true
	img.Box = 10
	img.Format()

	bounds := img.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("bounds: got %dx%d, want 30x30", bounds.Dx(), bounds.Dy())
	}

	// zero distance is white
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("diagonal pixel: got %d %d %d, want white", r>>8, g>>8, b>>8)
	}

	// the largest distance is black
	r, g, b, _ = img.At(25, 5).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("largest distance pixel: got %d %d %d, want black", r>>8, g>>8, b>>8)
	}
}
