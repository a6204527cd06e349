// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package seqs

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Read reads a collection of sequences
// in FASTA format.
//
// In a FASTA file each sequence starts with a header line
// prefixed by the '>' character;
// the sequence name is the first space-delimited field
// of the header.
// All lines up to the next header
// are the residues of the sequence.
// Lines starting with ';' are comments
// and will be ignored.
//
// Here is an example file:
//
//	>Homo_sapiens
//	ACGTACGTACGT
//	ACGTACGT
//	>Pan_troglodytes
//	ACGTACGAACGT
func Read(r io.Reader) (*Collection, error) {
	c := NewCollection()
	if err := c.Read(r); err != nil {
		return nil, err
	}
	return c, nil
}

// Read adds the sequences
// of a FASTA-formatted input
// to a collection.
func (c *Collection) Read(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	var name string
	var b strings.Builder
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if name != "" {
				if err := c.Add(name, b.String()); err != nil {
					return fmt.Errorf("sequence %q: %v", name, err)
				}
			}
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return fmt.Errorf("on line %d: header without name", ln)
			}
			name = fields[0]
			b.Reset()
			continue
		}
		if name == "" {
			return fmt.Errorf("on line %d: residues without sequence header", ln)
		}
		b.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if name != "" {
		if err := c.Add(name, b.String()); err != nil {
			return fmt.Errorf("sequence %q: %v", name, err)
		}
	}
	return nil
}

// residues per line on output
const lineWidth = 60

// FASTA writes a collection of sequences
// in FASTA format.
func (c *Collection) FASTA(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, name := range c.names {
		fmt.Fprintf(bw, ">%s\n", name)
		seq := c.seq[name]
		for len(seq) > lineWidth {
			fmt.Fprintf(bw, "%s\n", seq[:lineWidth])
			seq = seq[lineWidth:]
		}
		fmt.Fprintf(bw, "%s\n", seq)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return nil
}
