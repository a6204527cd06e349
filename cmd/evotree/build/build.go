// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package build implements a command to build
// a neighbor-joining tree in an EvoTree project.
package build

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/dmatrix"
	"github.com/js-arias/evotree/njoin"
	"github.com/js-arias/evotree/phytree"
	"github.com/js-arias/evotree/project"
)

var Command = &command.Command{
	Usage: "build [-f|--file <tree-file>] [--print] <project-file>",
	Short: "build a neighbor-joining tree",
	Long: `
Command build reads the distance matrix of an EvoTree project, builds an
unrooted phylogenetic tree with the neighbor-joining algorithm, and adds the
tree, in Newick format, to the tree file of the project.

The argument of the command is the name of the project file. If the project
does not define a distance matrix, the matrix will be built from the project
sequences (see command 'matrix'), but it will not be stored.

Neighbor joining is deterministic for a given matrix: ties between joinable
pairs are always broken by the first pair found, scanning the pairs of the
matrix in ascending order.

By default the tree will be added to the tree file currently defined for the
project. If the project does not have a tree file, a new one will be created
with the name 'trees.nwk'. A different file name can be defined using the flag
--file, or -f.

If the flag --print is set, the tree will also be printed in the standard
output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var doPrint bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().BoolVar(&doPrint, "print", false, "")
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

	t, err := njoin.Build(m)
	if err != nil {
		return err
	}

	var trees []*phytree.Tree
	if tf := p.Path(project.Trees); tf != "" {
		trees, err = p.Trees()
		if err != nil {
			return err
		}
	}
	trees = append(trees, t)

	if treeFile == "" {
		treeFile = p.Path(project.Trees)
		if treeFile == "" {
			treeFile = "trees.nwk"
		}
	}

	if err := writeTrees(trees); err != nil {
		return err
	}
	p.Add(project.Trees, treeFile)
	if err := p.Write(); err != nil {
		return err
	}

	if doPrint {
		if err := t.Newick(c.Stdout()); err != nil {
			return err
		}
	}
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

func writeTrees(trees []*phytree.Tree) (err error) {
	f, err := os.Create(treeFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	for _, t := range trees {
		if err := t.Newick(f); err != nil {
			return fmt.Errorf("while writing to %q: %v", treeFile, err)
		}
	}
	return nil
}
