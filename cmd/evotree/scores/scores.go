// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package scores implements a command to view and set
// the alignment scoring parameters of an EvoTree project.
package scores

import (
	"fmt"
	"math"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/project"
)

var Command = &command.Command{
	Usage: `scores [--match <value>] [--mismatch <value>] [--gap <value>]
	<project-file>`,
	Short: "view and set alignment scoring parameters",
	Long: `
Command scores prints the scoring parameters used for the pairwise alignments
of an EvoTree project. If one or more parameter flags are given, it sets the
parameters and stores them in the project.

The argument of the command is the name of the project file.

The flag --match sets the score of two identical residues; it must be a
positive value. The flag --mismatch sets the score of two different residues.
The flag --gap sets the score of a residue aligned with a gap. By default, an
identity scheme is used: a match scores one, a mismatch scores zero, and a
gap scores minus one.

If the project does not define a parameter file, a new one will be created
with the name 'scores.tab'.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var match float64
var mismatch float64
var gap float64

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&match, "match", math.NaN(), "")
	c.Flags().Float64Var(&mismatch, "mismatch", math.NaN(), "")
	c.Flags().Float64Var(&gap, "gap", math.NaN(), "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	ap, err := p.Scores()
	if err != nil {
		return err
	}

	set := false
	if !math.IsNaN(match) {
		if err := ap.SetMatch(match); err != nil {
			return err
		}
		set = true
	}
	if !math.IsNaN(mismatch) {
		ap.SetMismatch(mismatch)
		set = true
	}
	if !math.IsNaN(gap) {
		ap.SetGap(gap)
		set = true
	}

	if !set {
		fmt.Fprintf(c.Stdout(), "match\t%.6f\n", ap.Match())
		fmt.Fprintf(c.Stdout(), "mismatch\t%.6f\n", ap.Mismatch())
		fmt.Fprintf(c.Stdout(), "gap\t%.6f\n", ap.Gap())
		return nil
	}

	if ap.Name() == "" {
		ap.SetName("scores.tab")
	}
	if err := ap.Write(); err != nil {
		return err
	}
	p.Add(project.Scores, ap.Name())
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}
