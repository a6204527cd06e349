// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package distmap implements a heat map image
// of a pairwise distance matrix.
package distmap

import (
	"image"
	"image/color"

	"github.com/js-arias/blind"
	"github.com/js-arias/evotree/dmatrix"
)

// An Image is a heat map of a distance matrix,
// one square cell per taxon pair,
// with cell colors scaled by the largest distance
// in the matrix.
// It implements the image.Image interface.
type Image struct {
	// The distance matrix
	Matrix *dmatrix.Matrix

	// Size of a matrix cell in pixels
	Box int

	// If gray is true,
	// it will use a gray scale.
	Gray bool

	// A gradient color scheme
	Gradient Gradienter

	max float64
}

// Format prepares an image for rendering,
// setting the defaults
// for any undefined field.
func (i *Image) Format() {
	if i.Box <= 0 {
		i.Box = 16
	}
	if i.Gradient == nil {
		i.Gradient = Iridescent{}
	}
	i.max = i.Matrix.Max()
}

func (i *Image) ColorModel() color.Model { return color.RGBAModel }
func (i *Image) Bounds() image.Rectangle {
	sz := i.Matrix.Len() * i.Box
	return image.Rect(0, 0, sz, sz)
}

func (i *Image) At(x, y int) color.Color {
	cx := x / i.Box
	cy := y / i.Box
	if cx >= i.Matrix.Len() || cy >= i.Matrix.Len() {
		return color.RGBA{A: 255}
	}

	v := 0.0
	if i.max > 0 {
		v = i.Matrix.At(cy, cx) / i.max
	}
	if i.Gray {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		c := 255 - uint8(v*255)
		return color.RGBA{c, c, c, 255}
	}
	return i.Gradient.Gradient(v)
}

// Gradienter is an interface for types
// that return a color gradient
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	return blind.Sequential(blind.Incandescent, v)
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	return blind.Sequential(blind.Iridescent, v)
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	return blind.Sequential(blind.RainbowPurpleToRed, v)
}
