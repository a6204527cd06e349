// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dmatrix

import (
	"fmt"

	"github.com/js-arias/evotree/align"
	"github.com/js-arias/evotree/seqs"
)

// Build creates a distance matrix
// from a collection of sequences.
// For each unordered pair of sequences
// the distance is defined as
//
//	d = 1 - score/max(len_a, len_b)
//
// in which score is the best global alignment score
// of the pair
// under the given scoring scheme.
// The distance is not clamped at zero:
// a scoring scheme in which a match scores
// more than one
// can produce negative distances.
//
// The collection must have at least two sequences.
// Sequence names in the collection are unique,
// so a repeated taxon is rejected
// before any alignment is made.
func Build(c *seqs.Collection, s align.Scoring) (*Matrix, error) {
	if c.Len() < 2 {
		return nil, fmt.Errorf("%w: got %d sequences", ErrInsufficientInput, c.Len())
	}

	names := c.Names()
	m, err := New(names)
	if err != nil {
		return nil, err
	}

	for i, a := range names {
		sa := c.Sequence(a)
		for j := i + 1; j < len(names); j++ {
			b := names[j]
			sb := c.Sequence(b)
			score, err := align.Global(sa, sb, s)
			if err != nil {
				return nil, fmt.Errorf("taxa %q-%q: %w", a, b, err)
			}
			max := len(sa)
			if len(sb) > max {
				max = len(sb)
			}
			m.set(i, j, 1-score/float64(max))
		}
	}
	return m, nil
}
