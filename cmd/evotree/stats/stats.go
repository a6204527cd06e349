// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// divergence statistics of an EvoTree project.
package stats

import (
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/dmatrix"
	"github.com/js-arias/evotree/project"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: "stats <project-file>",
	Short: "print divergence statistics of a project",
	Long: `
Command stats reads the distance matrix of an EvoTree project and prints a
summary of the pairwise divergences in the standard output: the number of
taxa, the mean, median, and standard deviation of the pairwise distances, the
closest and most distant pair of taxa, and the most divergent taxon (the taxon
with the largest mean distance to every other taxon).

The argument of the command is the name of the project file. If the project
does not define a distance matrix, the matrix will be built from the project
sequences (see command 'matrix'), but it will not be stored.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := readMatrix(p)
	if err != nil {
		return err
	}

	names := m.Names()
	var dist []float64
	minA, minB := 0, 1
	maxA, maxB := 0, 1
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			d := m.At(i, j)
			dist = append(dist, d)
			if d < m.At(minA, minB) {
				minA, minB = i, j
			}
			if d > m.At(maxA, maxB) {
				maxA, maxB = i, j
			}
		}
	}

	mean, std := stat.MeanStdDev(dist, nil)
	sorted := make([]float64, len(dist))
	copy(sorted, dist)
	slices.Sort(sorted)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	// the most divergent taxon
	// has the largest mean distance
	// to every other taxon
	div := 0
	divMean := rowMean(m, 0)
	for i := 1; i < len(names); i++ {
		if rm := rowMean(m, i); rm > divMean {
			div = i
			divMean = rm
		}
	}

	fmt.Fprintf(c.Stdout(), "taxa:\t%d\n", len(names))
	fmt.Fprintf(c.Stdout(), "pairs:\t%d\n", len(dist))
	fmt.Fprintf(c.Stdout(), "mean:\t%.6f\n", mean)
	fmt.Fprintf(c.Stdout(), "median:\t%.6f\n", median)
	fmt.Fprintf(c.Stdout(), "stdDev:\t%.6f\n", std)
	fmt.Fprintf(c.Stdout(), "closest pair:\t%s, %s [%.6f]\n", names[minA], names[minB], m.At(minA, minB))
	fmt.Fprintf(c.Stdout(), "most distant pair:\t%s, %s [%.6f]\n", names[maxA], names[maxB], m.At(maxA, maxB))
	fmt.Fprintf(c.Stdout(), "most divergent taxon:\t%s [mean %.6f]\n", names[div], divMean)

	return nil
}

func readMatrix(p *project.Project) (*dmatrix.Matrix, error) {
	if p.Path(project.DistMatrix) != "" {
		return p.Matrix()
	}

	coll, err := p.Sequences()
	if err != nil {
		return nil, err
	}
	ap, err := p.Scores()
	if err != nil {
		return nil, err
	}
	return dmatrix.Build(coll, ap.Scoring())
}

func rowMean(m *dmatrix.Matrix, i int) float64 {
	var sum float64
	for j := 0; j < m.Len(); j++ {
		sum += m.At(i, j)
	}
	return sum / float64(m.Len()-1)
}
