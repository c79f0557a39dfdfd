// SPDX-License-Identifier: MIT

package braid

import (
	"fmt"
	"sort"
)

// Member is one position of an equivalence class: the 1-based Strand and the
// orientation Sign (+1 or -1) with which the closure walk visits it.
type Member struct {
	Strand int
	Sign   int
}

// Class is an ordered set of members identified by the closure; the first
// member is the representative.
type Class []Member

// Representative returns the strand of the first member.
func (c Class) Representative() int { return c[0].Strand }

// Contains reports whether strand belongs to the class.
func (c Class) Contains(strand int) bool {
	for _, m := range c {
		if m.Strand == strand {
			return true
		}
	}

	return false
}

// Closure is the outcome of resolving a closure strategy.
//
// Classes is nil for an open braid. Labels are the undercrossing labels,
// rewritten to class representatives when classes exist.
type Closure struct {
	Classes []Class
	Labels  []int
}

// ClassOf returns the index of the class containing strand.
func (c *Closure) ClassOf(strand int) (int, bool) {
	for i, cl := range c.Classes {
		if cl.Contains(strand) {
			return i, true
		}
	}

	return -1, false
}

// Strategy resolves a trace into a closure.
type Strategy interface {
	Resolve(tr *Trace) (*Closure, error)
}

// Open leaves the braid unclosed: labels pass through unchanged.
type Open struct{}

// Resolve copies the undercrossing labels.
func (Open) Resolve(tr *Trace) (*Closure, error) {
	labels := make([]int, len(tr.Under))
	copy(labels, tr.Under)

	return &Closure{Labels: labels}, nil
}

// Capped closes the lower Strands-2*Caps positions with loops and pairs the
// remaining positions with caps.
type Capped struct {
	Strands int
	Caps    int
}

// Resolve runs the kernel closure walk over tr.
func (c Capped) Resolve(tr *Trace) (*Closure, error) {
	return Resolve(c.Strands, c.Caps, tr.Top, tr.Under)
}

// Closable is anything that carries a braid and its closure strategy.
// *Spec and *Kernel satisfy it.
type Closable interface {
	Braid() *Spec
	Strategy() Strategy
}

// Analyze tracks s and resolves it with its own strategy.
func Analyze(s Closable) (*Trace, *Closure, error) {
	tr := Track(s.Braid())
	cl, err := s.Strategy().Resolve(tr)
	if err != nil {
		return nil, nil, fmt.Errorf("Analyze: %w", err)
	}

	return tr, cl, nil
}

// Resolve groups the positions of a kernel with k caps into equivalence
// classes and relabels under to class representatives.
//
// The walk alternates between the bottom and the top of the braid. A loop
// (positions below r = n-2k) flips sides in place; a cap joins a top
// position with its adjacent partner and reverses orientation; crossing the
// braid moves a top position to the bottom position whose top label it is
// (or back). Every bottom visit of an unseen position joins the class.
//
// Stage 1: validate n, k and that top is a permutation of 1..n.
// Stage 2: walk from every unseen position; each walk is bounded by 4n+4 steps.
// Stage 3: rewrite each label to the representative of its class.
//
// Complexity: O(n) for the walk, O(len(under)) for relabelling.
func Resolve(n, k int, top, under []int) (*Closure, error) {
	if n < MinStrands {
		return nil, fmt.Errorf("Resolve: n=%d: %w", n, ErrTooFewStrands)
	}
	if k < 0 || 2*k > n {
		return nil, fmt.Errorf("Resolve: k=%d on %d strands: %w", k, n, ErrInvalidCapCount)
	}
	if len(top) != n {
		return nil, fmt.Errorf("Resolve: %d top labels for %d strands: %w", len(top), n, ErrLabelMismatch)
	}

	// bottomOf[p] is the position whose top label is p+1.
	bottomOf := make([]int, n)
	seen := make([]bool, n)
	for i, label := range top {
		if label < 1 || label > n || seen[label-1] {
			return nil, fmt.Errorf("Resolve: top labels %v: %w", top, ErrLabelMismatch)
		}
		seen[label-1] = true
		bottomOf[label-1] = i
	}
	for _, label := range under {
		if label < 1 || label > n {
			return nil, fmt.Errorf("Resolve: label %d on %d strands: %w", label, n, ErrLabelMismatch)
		}
	}

	open := n - 2*k
	limit := 4*n + 4
	visited := make([]bool, n)
	var classes []Class

	for start := 0; start < n; start++ {
		var (
			class    Class
			i        = start
			sign     = 1
			onBottom = true
			looped   = false
		)
		for steps := 0; !visited[i] || !onBottom; steps++ {
			if steps > limit {
				return nil, fmt.Errorf("Resolve: walk from strand %d: %w", start+1, ErrDegenerateClosure)
			}
			if onBottom {
				class = append(class, Member{Strand: i + 1, Sign: sign})
				visited[i] = true
			}
			if !looped {
				switch {
				case i < open:
					onBottom = !onBottom
				case n%2 == i%2:
					i++
					sign = -sign
				default:
					i--
					sign = -sign
				}
				looped = true
				continue
			}
			if onBottom {
				i = bottomOf[i]
			} else {
				i = top[i] - 1
			}
			onBottom = !onBottom
			looped = false
		}
		if len(class) > 0 {
			classes = append(classes, class)
		}
	}

	rep := make(map[int]int, n)
	for _, cl := range classes {
		r := cl.Representative()
		for _, m := range cl {
			rep[m.Strand] = r
		}
	}
	labels := make([]int, len(under))
	for j, label := range under {
		if r, ok := rep[label]; ok {
			labels[j] = r
		} else {
			labels[j] = label
		}
	}

	return &Closure{Classes: classes, Labels: labels}, nil
}

// Representatives returns the sorted distinct class representatives.
func (c *Closure) Representatives() []int {
	out := make([]int, 0, len(c.Classes))
	for _, cl := range c.Classes {
		out = append(out, cl.Representative())
	}
	sort.Ints(out)

	return out
}
