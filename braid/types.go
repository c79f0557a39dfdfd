// SPDX-License-Identifier: MIT

package braid

import (
	"fmt"
	"strconv"
	"strings"
)

// YStrand is the label of the distinguished base strand (variable y).
const YStrand = 1

// MinStrands is the smallest braid group accepted by New.
const MinStrands = 2

// Generator is a signed Artin generator: +i is σ_i, -i is σ_i^-1 (the
// strand at position i+1 passes under).
type Generator int

// Index returns |g|.
func (g Generator) Index() int {
	if g < 0 {
		return int(-g)
	}

	return int(g)
}

// Under reports whether g is an inverse (undercrossing) generator.
func (g Generator) Under() bool { return g < 0 }

// String renders σ_3 as "σ3" and σ_4^-1 as "σ4^-1".
func (g Generator) String() string {
	if g < 0 {
		return "σ" + strconv.Itoa(g.Index()) + "^-1"
	}

	return "σ" + strconv.Itoa(g.Index())
}

// Word is an ordered sequence of generators, read top to bottom.
type Word []Generator

// Ints returns the word as plain signed integers.
func (w Word) Ints() []int {
	out := make([]int, len(w))
	for i, g := range w {
		out[i] = int(g)
	}

	return out
}

// String renders the word as space-separated generators.
func (w Word) String() string {
	parts := make([]string, len(w))
	for i, g := range w {
		parts[i] = g.String()
	}

	return strings.Join(parts, " ")
}

// Spec is an immutable braid on n strands.
type Spec struct {
	strands int
	word    Word
}

// New validates and builds a braid on n strands from signed generator indices.
// Returns ErrTooFewStrands or ErrInvalidGenerator; no partial value is returned.
func New(n int, ops ...int) (*Spec, error) {
	if n < MinStrands {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooFewStrands)
	}
	word := make(Word, len(ops))
	for i, op := range ops {
		g := Generator(op)
		if op == 0 || g.Index() >= n {
			return nil, fmt.Errorf("New: generator %d at position %d on %d strands: %w", op, i, n, ErrInvalidGenerator)
		}
		word[i] = g
	}

	return &Spec{strands: n, word: word}, nil
}

// Strands returns n.
func (s *Spec) Strands() int { return s.strands }

// Len returns the number of generators.
func (s *Spec) Len() int { return len(s.word) }

// Word returns a copy of the generator sequence.
func (s *Spec) Word() Word {
	out := make(Word, len(s.word))
	copy(out, s.word)

	return out
}

// Braid returns the underlying braid; kernels inherit it through embedding.
func (s *Spec) Braid() *Spec { return s }

// Strategy returns the closure strategy of a plain braid.
func (s *Spec) Strategy() Strategy { return Open{} }

// String renders the word and its tracked undercrossing labels.
func (s *Spec) String() string {
	tr := Track(s)
	return fmt.Sprintf("Braid: %v\nLabels: %v", s.word.Ints(), tr.Under)
}

// Kernel is a braid whose top 2k positions are closed by caps and whose
// remaining r = n-2k positions loop back to the bottom.
type Kernel struct {
	Spec
	caps int
}

// NewKernel validates the cap count and the braid word.
// Returns ErrInvalidCapCount when k < 0 or k > n/2, otherwise the errors of New.
func NewKernel(n, k int, ops ...int) (*Kernel, error) {
	if k < 0 || 2*k > n {
		return nil, fmt.Errorf("NewKernel: k=%d on %d strands: %w", k, n, ErrInvalidCapCount)
	}
	s, err := New(n, ops...)
	if err != nil {
		return nil, fmt.Errorf("NewKernel: %w", err)
	}

	return &Kernel{Spec: *s, caps: k}, nil
}

// Caps returns k.
func (k *Kernel) Caps() int { return k.caps }

// Open returns r = n - 2k, the number of looped (non-capped) positions.
func (k *Kernel) Open() int { return k.strands - 2*k.caps }

// Strategy returns the capped closure of the kernel.
func (k *Kernel) Strategy() Strategy { return Capped{Strands: k.strands, Caps: k.caps} }

// String renders the word, the cap count and the relabelled undercrossing labels.
func (k *Kernel) String() string {
	_, cl, err := Analyze(k)
	if err != nil {
		return fmt.Sprintf("Kernel: %v\nCaps: %d\nError: %v", k.word.Ints(), k.caps, err)
	}

	return fmt.Sprintf("Kernel: %v\nCaps: %d\nLabels: %v", k.word.Ints(), k.caps, cl.Labels)
}

// ParseWord reads signed generators separated by commas and/or whitespace,
// e.g. "3, 2, -4" or "3 2 -4". Zero and non-integer tokens are rejected.
func ParseWord(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '[' || r == ']'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		op, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("ParseWord: token %q: %w", f, ErrInvalidWord)
		}
		if op == 0 {
			return nil, fmt.Errorf("ParseWord: zero generator: %w", ErrInvalidWord)
		}
		out = append(out, op)
	}

	return out, nil
}
