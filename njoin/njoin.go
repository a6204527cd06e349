// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package njoin implements the neighbor-joining algorithm
// to build an unrooted phylogenetic tree
// from a matrix of pairwise distances.
package njoin

import (
	"errors"
	"fmt"
	"math"

	"github.com/js-arias/evotree/dmatrix"
	"github.com/js-arias/evotree/phytree"
)

// ErrInsufficientTaxa is returned when building a tree
// from a matrix with fewer than two taxa.
var ErrInsufficientTaxa = errors.New("at least two taxa required")

// Build builds an unrooted tree
// from a distance matrix
// by neighbor joining.
//
// On each iteration,
// the pair of nodes i, j minimizing
//
//	Q(i,j) = (n-2)*d(i,j) - r(i) - r(j)
//
// is joined under a new internal node,
// in which r is the sum of the distances
// of a node to every other active node.
// Ties are broken by the first pair found,
// scanning pairs in ascending index order,
// so the result is reproducible
// for a given matrix.
// Branch lengths to the new node are
// d(i,u) = d(i,j)/2 + (r(i)-r(j))/(2*(n-2))
// and d(j,u) = d(i,j) - d(i,u),
// both clamped at zero.
//
// When two nodes remain,
// they are joined directly by an edge
// with a length equal to their distance.
// The most recently created internal node
// becomes the root of the returned tree,
// so for three or more taxa
// the root has three children.
// For a two taxa matrix
// the root joins both terminals,
// with the whole distance on the first edge.
func Build(m *dmatrix.Matrix) (*phytree.Tree, error) {
	var names []string
	if m != nil {
		names = m.Names()
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientTaxa, len(names))
	}

	// active nodes,
	// ordered as in the matrix,
	// with a working copy of the distances
	nodes := make([]*phytree.Node, len(names))
	age := make([]int, len(names))
	for i, nm := range names {
		nodes[i] = &phytree.Node{Name: nm}
	}
	d := make([][]float64, len(names))
	for i := range d {
		d[i] = make([]float64, len(names))
		for j := range d[i] {
			d[i][j] = m.At(i, j)
		}
	}

	step := 0
	for len(nodes) > 2 {
		n := len(nodes)

		r := make([]float64, n)
		for i := range r {
			for j := range d[i] {
				r[i] += d[i][j]
			}
		}

		// pick the pair minimizing Q
		bi, bj := 0, 1
		minQ := math.Inf(1)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				q := float64(n-2)*d[i][j] - r[i] - r[j]
				if q < minQ {
					minQ = q
					bi, bj = i, j
				}
			}
		}

		du := d[bi][bj]/2 + (r[bi]-r[bj])/(2*float64(n-2))
		dv := d[bi][bj] - du
		if du < 0 {
			du = 0
		}
		if dv < 0 {
			dv = 0
		}
		u := &phytree.Node{
			Children: []phytree.Child{
				{Node: nodes[bi], Length: du},
				{Node: nodes[bj], Length: dv},
			},
		}
		step++

		// distances from the new node
		// to every remaining node
		row := make([]float64, 0, n-1)
		row = append(row, 0)
		for k := 0; k < n; k++ {
			if k == bi || k == bj {
				continue
			}
			row = append(row, (d[bi][k]+d[bj][k]-d[bi][bj])/2)
		}

		nd := make([][]float64, 0, n-1)
		nd = append(nd, row)
		nn := make([]*phytree.Node, 0, n-1)
		nn = append(nn, u)
		na := make([]int, 0, n-1)
		na = append(na, step)
		for k := 0; k < n; k++ {
			if k == bi || k == bj {
				continue
			}
			kr := make([]float64, 0, n-1)
			kr = append(kr, row[len(nn)])
			for l := 0; l < n; l++ {
				if l == bi || l == bj {
					continue
				}
				kr = append(kr, d[k][l])
			}
			nd = append(nd, kr)
			nn = append(nn, nodes[k])
			na = append(na, age[k])
		}
		nodes, d, age = nn, nd, na
	}

	// the terminal merge:
	// attach the older node to the newer one
	// with the remaining distance
	a, b := 0, 1
	if age[b] > age[a] {
		a, b = b, a
	}
	root := nodes[a]
	if root.IsTerm() {
		// only possible with a two taxa matrix
		root = &phytree.Node{
			Children: []phytree.Child{
				{Node: nodes[a], Length: d[0][1]},
				{Node: nodes[b], Length: 0},
			},
		}
	} else {
		root.Children = append(root.Children, phytree.Child{
			Node:   nodes[b],
			Length: d[0][1],
		})
	}

	t, err := phytree.New(root)
	if err != nil {
		return nil, fmt.Errorf("njoin: %v", err)
	}
	return t, nil
}
