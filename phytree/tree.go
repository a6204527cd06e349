// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phytree implements an unrooted phylogenetic tree
// with branch lengths,
// conventionally stored from an artificial root node.
//
// A node is either a terminal,
// with a taxon name and no descendants,
// or an internal node,
// without a name,
// joining an ordered list of children,
// each child edge with a branch length.
package phytree

import (
	"errors"
	"fmt"
)

// A Node is a node of a phylogenetic tree.
// Terminal nodes have a name and no children.
// Internal nodes have children and no name.
type Node struct {
	// Taxon name of a terminal node.
	Name string

	// Children of an internal node,
	// in order.
	Children []Child
}

// A Child is an edge from a node
// to one of its descendants.
type Child struct {
	// The descendant node.
	Node *Node

	// Length of the edge,
	// as an evolutionary distance.
	Length float64
}

// IsTerm returns true for a terminal node.
func (n *Node) IsTerm() bool {
	return len(n.Children) == 0
}

// A Tree is a phylogenetic tree
// reachable from its root node.
type Tree struct {
	root *Node
}

// New creates a tree from a root node.
// All terminal nodes must be named,
// terminal names must be unique,
// and all branch lengths must be defined.
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, errors.New("phytree: undefined root node")
	}
	terms := make(map[string]bool)
	if err := validate(root, terms); err != nil {
		return nil, fmt.Errorf("phytree: %v", err)
	}
	return &Tree{root: root}, nil
}

func validate(n *Node, terms map[string]bool) error {
	if n.IsTerm() {
		if n.Name == "" {
			return errors.New("unnamed terminal node")
		}
		if terms[n.Name] {
			return fmt.Errorf("duplicate terminal %q", n.Name)
		}
		terms[n.Name] = true
		return nil
	}
	for _, c := range n.Children {
		if c.Node == nil {
			return errors.New("undefined child node")
		}
		if err := validate(c.Node, terms); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the root node of a tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of nodes in a tree.
func (t *Tree) Len() int {
	n := 0
	for range t.Nodes() {
		n++
	}
	return n
}

// Terms returns the taxon names
// of the terminals of a tree,
// in traversal order.
func (t *Tree) Terms() []string {
	var terms []string
	for _, n := range t.Nodes() {
		if n.IsTerm() {
			terms = append(terms, n.Name)
		}
	}
	return terms
}

// Nodes returns all the nodes of a tree
// in pre-order.
func (t *Tree) Nodes() []*Node {
	var nodes []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		nodes = append(nodes, n)
		for _, c := range n.Children {
			walk(c.Node)
		}
	}
	walk(t.root)
	return nodes
}

// An Edge is a parent-child connection in a tree.
// Nodes are identified by their pre-order position,
// with the root as node 0.
type Edge struct {
	// IDs of the connected nodes.
	Parent int
	Child  int

	// Taxon name of the child node,
	// empty for an internal node.
	Label string

	// Branch length of the edge.
	Length float64
}

// Edges returns the edge list of a tree,
// in pre-order.
// The list is intended for external renderers
// that consume a node-edge representation of the tree.
func (t *Tree) Edges() []Edge {
	var edges []Edge
	id := 0
	var walk func(n *Node, parent int)
	walk = func(n *Node, parent int) {
		nID := id
		id++
		for _, c := range n.Children {
			edges = append(edges, Edge{
				Parent: nID,
				Child:  id,
				Label:  c.Node.Name,
				Length: c.Length,
			})
			walk(c.Node, nID)
		}
	}
	walk(t.root, -1)
	return edges
}
