// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package align implements scoring
// of global pairwise sequence alignments.
package align

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned when aligning
// a sequence without residues.
var ErrEmptySequence = errors.New("empty sequence")

// Scoring is a scoring scheme
// for a global pairwise alignment.
type Scoring struct {
	// Score of two identical residues.
	Match float64

	// Score of two different residues.
	Mismatch float64

	// Score of a residue aligned with a gap.
	Gap float64
}

// DefaultScoring returns the identity scoring scheme:
// a match scores one,
// a mismatch scores zero,
// and a gap scores minus one,
// so insertions and deletions
// count against the similarity of a pair.
func DefaultScoring() Scoring {
	return Scoring{Match: 1, Gap: -1}
}

// Global returns the score
// of the best scoring global alignment
// of two sequences
// under a given scoring scheme,
// using the Needleman-Wunsch algorithm.
// Any residue character is accepted;
// two residues match if their characters are equal.
func Global(a, b string, s Scoring) (float64, error) {
	if a == "" {
		return 0, fmt.Errorf("%w: first sequence", ErrEmptySequence)
	}
	if b == "" {
		return 0, fmt.Errorf("%w: second sequence", ErrEmptySequence)
	}

	// Dynamic programming over two rows:
	// prev[j] is the best score of a[:i] vs b[:j].
	prev := make([]float64, len(b)+1)
	curr := make([]float64, len(b)+1)
	for j := range prev {
		prev[j] = float64(j) * s.Gap
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = float64(i) * s.Gap
		for j := 1; j <= len(b); j++ {
			m := s.Mismatch
			if a[i-1] == b[j-1] {
				m = s.Match
			}
			best := prev[j-1] + m
			if up := prev[j] + s.Gap; up > best {
				best = up
			}
			if left := curr[j-1] + s.Gap; left > best {
				best = left
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return prev[len(b)], nil
}
