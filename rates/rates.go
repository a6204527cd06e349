// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rates implements discrete categories
// of mutation rate multipliers
// drawn from a continuous probability distribution,
// for relaxed clock simulations.
// Each category has the same probability.
package rates

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Discrete is a discrete set of rate multipliers.
type Discrete interface {
	// Cats returns the multiplier values
	// of the different categories.
	Cats() []float64

	// String output for the function name and parameters.
	String() string
}

// Gamma is a discretized Gamma distribution
// with a unit mean
// (the beta parameter equal to alpha).
type Gamma struct {
	param  distuv.Gamma
	numCat int
}

// NewGamma creates a set of rate categories
// from a Gamma distribution
// with the given shape parameter.
func NewGamma(alpha float64, numCat int) (Gamma, error) {
	if alpha <= 0 {
		return Gamma{}, fmt.Errorf("rates: invalid alpha value: %.6f", alpha)
	}
	if numCat < 1 {
		return Gamma{}, fmt.Errorf("rates: invalid number of categories: %d", numCat)
	}
	return Gamma{
		param: distuv.Gamma{
			Alpha: alpha,
			Beta:  alpha,
		},
		numCat: numCat,
	}, nil
}

// Cats returns the rate multipliers for a Gamma distribution
// discretized in equal probability categories.
func (g Gamma) Cats() []float64 {
	return getCats(g.param, g.numCat)
}

// String output for the function name and parameters.
func (g Gamma) String() string {
	return fmt.Sprintf("gamma=%.6f", g.param.Alpha)
}

// LogNormal is a discretized LogNormal distribution
// with a zero location parameter.
type LogNormal struct {
	param  distuv.LogNormal
	numCat int
}

// NewLogNormal creates a set of rate categories
// from a LogNormal distribution
// with the given sigma parameter.
func NewLogNormal(sigma float64, numCat int) (LogNormal, error) {
	if sigma <= 0 {
		return LogNormal{}, fmt.Errorf("rates: invalid sigma value: %.6f", sigma)
	}
	if numCat < 1 {
		return LogNormal{}, fmt.Errorf("rates: invalid number of categories: %d", numCat)
	}
	return LogNormal{
		param: distuv.LogNormal{
			Mu:    0,
			Sigma: sigma,
		},
		numCat: numCat,
	}, nil
}

// Cats returns the rate multipliers for a LogNormal distribution
// discretized in equal probability categories.
func (ln LogNormal) Cats() []float64 {
	return getCats(ln.param, ln.numCat)
}

// String output for the function name and parameters.
func (ln LogNormal) String() string {
	return fmt.Sprintf("logNormal=%.6f", ln.param.Sigma)
}

// Strict is a strict clock:
// a single category with a unit multiplier.
type Strict struct{}

// Cats returns a single unit rate multiplier.
func (s Strict) Cats() []float64 {
	return []float64{1}
}

// String output for the function name.
func (s Strict) String() string {
	return "strict"
}

// quantiler is an interface for distributions
// with a quantile function
// (the inverse of the CDF function).
type quantiler interface {
	Quantile(p float64) float64
}

func getCats(q quantiler, n int) []float64 {
	cats := make([]float64, n)
	for i := range cats {
		p := (float64(i) + 0.5) / float64(n)
		cats[i] = q.Quantile(p)
	}
	return cats
}
