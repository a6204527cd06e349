// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phytree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Newick writes a tree in Newick
// (parenthetical) format,
// terminated by a semicolon and a new line.
// Terminals are written as "name:length",
// internal nodes as "(child,...):length",
// and the root carries no length.
func (t *Tree) Newick(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, t.root)
	bw.WriteString(";\n")
	if err := bw.Flush(); err != nil {
		return err
	}
	return nil
}

func writeNode(w *bufio.Writer, n *Node) {
	if n.IsTerm() {
		w.WriteString(n.Name)
		return
	}
	w.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			w.WriteByte(',')
		}
		writeNode(w, c.Node)
		w.WriteByte(':')
		w.WriteString(strconv.FormatFloat(c.Length, 'g', -1, 64))
	}
	w.WriteByte(')')
}

// ReadNewick reads all the trees
// of a Newick-formatted input.
func ReadNewick(r io.Reader) ([]*Tree, error) {
	br := bufio.NewReader(r)

	var trees []*Tree
	for {
		if err := skipSpaces(br); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		n, err := readNode(br)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %v", len(trees)+1, err)
		}
		if err := expect(br, ';'); err != nil {
			return nil, fmt.Errorf("tree %d: %v", len(trees)+1, err)
		}
		t, err := New(n)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %v", len(trees)+1, err)
		}
		trees = append(trees, t)
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("no trees in input")
	}
	return trees, nil
}

func skipSpaces(r *bufio.Reader) error {
	for {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		return r.UnreadByte()
	}
}

func expect(r *bufio.Reader, want byte) error {
	if err := skipSpaces(r); err != nil {
		return fmt.Errorf("expecting %q: %v", want, err)
	}
	c, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("expecting %q: %v", want, err)
	}
	if c != want {
		return fmt.Errorf("expecting %q, got %q", want, c)
	}
	return nil
}

func readNode(r *bufio.Reader) (*Node, error) {
	if err := skipSpaces(r); err != nil {
		return nil, err
	}
	c, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if c != '(' {
		r.UnreadByte()
		name, err := readLabel(r)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("unexpected character %q", c)
		}
		return &Node{Name: name}, nil
	}

	// a descendant list
	n := &Node{}
	for {
		child, err := readNode(r)
		if err != nil {
			return nil, err
		}
		ln, err := readLength(r)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, Child{Node: child, Length: ln})

		if err := skipSpaces(r); err != nil {
			return nil, err
		}
		c, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if c == ',' {
			continue
		}
		if c == ')' {
			break
		}
		return nil, fmt.Errorf("expecting ',' or ')', got %q", c)
	}

	// an optional internal node label,
	// read and then ignored
	if _, err := readLabel(r); err != nil {
		return nil, err
	}
	return n, nil
}

// readLength reads an optional ":length" suffix
// after a node.
func readLength(r *bufio.Reader) (float64, error) {
	if err := skipSpaces(r); err != nil {
		return 0, err
	}
	c, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if c != ':' {
		r.UnreadByte()
		return 0, nil
	}

	var b strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		if strings.IndexByte("+-.0123456789eE", c) < 0 {
			r.UnreadByte()
			break
		}
		b.WriteByte(c)
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid branch length %q: %v", b.String(), err)
	}
	return v, nil
}

// readLabel reads a node name.
// A name ends at any character
// with meaning in the Newick format
// or at a space.
func readLabel(r *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if strings.IndexByte("(),:; \t\n\r", c) >= 0 {
			r.UnreadByte()
			break
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
