// SPDX-License-Identifier: MIT

package braid

// Trace is the outcome of tracking a braid.
//
// Bottom[i] is the label entering position i at the bottom (always i+1),
// Top[i] the label leaving at position i on top, and Under[j] the label
// of the strand passing under at the j-th generator of the word.
type Trace struct {
	Bottom []int
	Top    []int
	Under  []int
}

// Track replays the word from the bottom of the braid to the top, swapping
// adjacent positions at every generator and recording the label of the
// understrand: for σ_i^-1 the strand at position i+1, for σ_i the strand at
// position i (1-based positions).
//
// Stage 1: positions start as the identity 1..n.
// Stage 2: generators are applied last to first; each records then swaps.
// Stage 3: recorded labels are reversed back to word order.
//
// Complexity: O(n + len(word)).
func Track(s *Spec) *Trace {
	n := s.strands
	pos := make([]int, n)
	bottom := make([]int, n)
	for i := 0; i < n; i++ {
		pos[i] = i + 1
		bottom[i] = i + 1
	}

	under := make([]int, len(s.word))
	for j := len(s.word) - 1; j >= 0; j-- {
		g := s.word[j]
		idx := g.Index() - 1
		if g.Under() {
			under[j] = pos[idx+1]
		} else {
			under[j] = pos[idx]
		}
		pos[idx], pos[idx+1] = pos[idx+1], pos[idx]
	}

	return &Trace{Bottom: bottom, Top: pos, Under: under}
}
