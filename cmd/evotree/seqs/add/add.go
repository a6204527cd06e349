// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add sequences
// to an EvoTree project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/evotree/project"
	"github.com/js-arias/evotree/seqs"
)

var Command = &command.Command{
	Usage: `add [-f|--file <sequence-file>]
	<project-file> [<fasta-file>...]`,
	Short: "add sequences to an EvoTree project",
	Long: `
Command add reads one or more FASTA files and adds the sequences to an EvoTree
project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more FASTA files can be given as arguments. If no file is given the
sequences will be read from the standard input. Sequence names must be unique
in the project: a repeated name is an error.

By default the sequences will be stored in the sequence file currently defined
for the project. If the project does not have a sequence file, a new one will
be created with the name 'seqs.fasta'. A different sequence file name can be
defined using the flag --file, or -f. If this flag is used, and there is a
sequence file already defined, then a new file with that name will be created,
and used as the sequence file for the project (previously defined sequences
will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var seqFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&seqFile, "file", "", "")
	c.Flags().StringVar(&seqFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	coll := seqs.NewCollection()
	if sf := p.Path(project.Sequences); sf != "" {
		if err := readSeqFile(coll, nil, sf); err != nil {
			return fmt.Errorf("on project %q: %v", sf, err)
		}
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		if err := readSeqFile(coll, c.Stdin(), fn); err != nil {
			return fmt.Errorf("when adding sequences from %q: %v", a, err)
		}
	}

	if seqFile == "" {
		seqFile = p.Path(project.Sequences)
		if seqFile == "" {
			seqFile = "seqs.fasta"
		}
	}

	if err := writeSeqs(coll); err != nil {
		return err
	}
	p.Add(project.Sequences, seqFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readSeqFile(coll *seqs.Collection, r io.Reader, name string) error {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	if err := coll.Read(r); err != nil {
		return fmt.Errorf("while reading file %q: %v", name, err)
	}
	return nil
}

func writeSeqs(coll *seqs.Collection) (err error) {
	f, err := os.Create(seqFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := coll.FASTA(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", seqFile, err)
	}
	return nil
}
