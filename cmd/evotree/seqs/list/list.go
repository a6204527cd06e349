// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of sequences in an EvoTree project.
package list

import (
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/project"
)

var Command = &command.Command{
	Usage: "list [--len] <project-file>",
	Short: "print a list of the project sequences",
	Long: `
Command list reads the sequences from an EvoTree project and prints the
sequence names in the standard output, in alphabetical order.

The argument of the command is the name of the project file.

If the flag --len is set, the length of each sequence, in residues, will be
printed after its name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var withLen bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&withLen, "len", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if p.Path(project.Sequences) == "" {
		return nil
	}
	coll, err := p.Sequences()
	if err != nil {
		return err
	}

	names := coll.Names()
	slices.Sort(names)
	for _, n := range names {
		if withLen {
			fmt.Fprintf(c.Stdout(), "%s\t%d\n", n, len(coll.Sequence(n)))
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\n", n)
	}

	return nil
}
