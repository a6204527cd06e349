// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/evotree/alnparam"
	"github.com/js-arias/evotree/dmatrix"
	"github.com/js-arias/evotree/phytree"
	"github.com/js-arias/evotree/seqs"
)

// Matrix reads a distance matrix file
// as defined in a project.
func (p *Project) Matrix() (*dmatrix.Matrix, error) {
	name := p.Path(DistMatrix)
	if name == "" {
		return nil, fmt.Errorf("distance matrix not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := dmatrix.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return m, nil
}

// Scores reads an alignment parameters file
// as defined in a project.
// If the project does not define the dataset,
// the default identity scoring is returned.
func (p *Project) Scores() (*alnparam.AP, error) {
	name := p.Path(Scores)
	if name == "" {
		return alnparam.New(""), nil
	}

	ap, err := alnparam.Read(name)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return ap, nil
}

// Sequences reads a sequence collection file
// as defined in a project.
func (p *Project) Sequences() (*seqs.Collection, error) {
	name := p.Path(Sequences)
	if name == "" {
		return nil, fmt.Errorf("sequences not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := seqs.Read(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return c, nil
}

// Trees reads a tree file
// as defined in a project.
func (p *Project) Trees() ([]*phytree.Tree, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := phytree.ReadNewick(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return ts, nil
}
