// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package seqs implements a collection
// of named molecular sequences.
package seqs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicate is returned when adding a sequence
// with a name already present in a collection.
var ErrDuplicate = errors.New("duplicate sequence name")

// ErrEmptySequence is returned when adding a sequence
// without residues.
var ErrEmptySequence = errors.New("empty sequence")

// A Collection is a set of named sequences.
// Sequence names are unique,
// and the collection keeps the order
// in which the sequences were added.
type Collection struct {
	names []string
	seq   map[string]string
}

// NewCollection creates a new empty sequence collection.
func NewCollection() *Collection {
	return &Collection{
		seq: make(map[string]string),
	}
}

// Add adds a named sequence to a collection.
// The name must be unique,
// non-empty,
// and free of characters with meaning
// in the Newick tree format
// ('(', ')', ',', ':', ';', and quotation marks);
// spaces are replaced by underscores.
// The sequence must have at least one residue.
func (c *Collection) Add(name, sequence string) error {
	name = Canon(name)
	if name == "" {
		return errors.New("sequence without name")
	}
	if strings.ContainsAny(name, "(),:;'\"") {
		return fmt.Errorf("invalid sequence name %q", name)
	}
	if _, ok := c.seq[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}

	sequence = strings.Join(strings.Fields(sequence), "")
	if sequence == "" {
		return fmt.Errorf("%w: sequence %q", ErrEmptySequence, name)
	}

	c.names = append(c.names, name)
	c.seq[name] = sequence
	return nil
}

// Len returns the number of sequences in a collection.
func (c *Collection) Len() int {
	return len(c.names)
}

// Names returns the names of the sequences in a collection,
// in the order in which they were added.
func (c *Collection) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Sequence returns the residues of the sequence
// with a given name.
// It returns an empty string
// if the sequence is not in the collection.
func (c *Collection) Sequence(name string) string {
	return c.seq[Canon(name)]
}

// Canon returns a canonical form of a sequence name:
// no leading or trailing space,
// and any internal spaces replaced by underscores.
func Canon(name string) string {
	name = strings.Join(strings.Fields(name), "_")
	return name
}
