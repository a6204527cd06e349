// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix implements a command to build
// the pairwise distance matrix of an EvoTree project.
package matrix

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/dmatrix"
	"github.com/js-arias/evotree/project"
)

var Command = &command.Command{
	Usage: "matrix [-f|--file <matrix-file>] <project-file>",
	Short: "build the pairwise distance matrix of a project",
	Long: `
Command matrix reads the sequences of an EvoTree project, aligns every pair of
sequences, and stores the resulting pairwise distance matrix in the project.

The argument of the command is the name of the project file. The project must
define a sequence file with at least two sequences.

For each pair of sequences the distance is defined as 1 - score/max-length,
in which score is the best global alignment score of the pair under the
scoring parameters of the project (see command 'scores'), and max-length is
the length of the largest sequence of the pair.

By default the matrix will be stored in the matrix file currently defined for
the project. If the project does not have a matrix file, a new one will be
created with the name 'matrix.tab'. A different file name can be defined using
the flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var matFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&matFile, "file", "", "")
	c.Flags().StringVar(&matFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	coll, err := p.Sequences()
	if err != nil {
		return err
	}
	ap, err := p.Scores()
	if err != nil {
		return err
	}

	m, err := dmatrix.Build(coll, ap.Scoring())
	if err != nil {
		return err
	}

	if matFile == "" {
		matFile = p.Path(project.DistMatrix)
		if matFile == "" {
			matFile = "matrix.tab"
		}
	}

	if err := writeMatrix(m); err != nil {
		return err
	}
	p.Add(project.DistMatrix, matFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

func writeMatrix(m *dmatrix.Matrix) (err error) {
	f, err := os.Create(matFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", matFile, err)
	}
	return nil
}
