// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nodes implements a command to print
// the node and edge list of the trees
// of an EvoTree project.
package nodes

import (
	"encoding/csv"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/project"
)

var Command = &command.Command{
	Usage: "nodes [--tree <number>] <project-file>",
	Short: "print the node-edge list of the project trees",
	Long: `
Command nodes reads the trees of an EvoTree project and prints a tab-delimited
node and edge list in the standard output, one row per edge. The list is
intended for external tools that render trees as a node-link graph.

The argument of the command is the name of the project file.

The output fields are:

	tree	the tree number, starting at 1
	parent	the ID of the parent node of the edge
	node	the ID of the child node of the edge
	label	the taxon name of the child node, empty for internal nodes
	length	the branch length of the edge

Node IDs are given in pre-order, with the root as node 0.

By default all the trees of the project will be listed. If the flag --tree is
set, only the tree with the given number will be listed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeNum int

func setFlags(c *command.Command) {
	c.Flags().IntVar(&treeNum, "tree", 0, "")
}

var header = []string{
	"tree",
	"parent",
	"node",
	"label",
	"length",
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if p.Path(project.Trees) == "" {
		return nil
	}
	trees, err := p.Trees()
	if err != nil {
		return err
	}

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	if err := tsv.Write(header); err != nil {
		return err
	}
	for i, t := range trees {
		if treeNum > 0 && i+1 != treeNum {
			continue
		}
		for _, e := range t.Edges() {
			row := []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(e.Parent),
				strconv.Itoa(e.Child),
				e.Label,
				strconv.FormatFloat(e.Length, 'g', -1, 64),
			}
			if err := tsv.Write(row); err != nil {
				return err
			}
		}
	}
	tsv.Flush()
	return tsv.Error()
}
