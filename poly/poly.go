// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Term is one summand Coef·Mono of a polynomial.
type Term struct {
	Coef *big.Rat
	Mono Monomial
}

// Poly is an immutable Laurent polynomial with rational coefficients.
// A nil *Poly behaves as the zero polynomial in every read-only method.
type Poly struct {
	terms map[string]Term // keyed by Monomial.String(); coefficients are never zero
}

// Zero returns the additive identity.
func Zero() *Poly { return &Poly{terms: map[string]Term{}} }

// One returns the multiplicative identity.
func One() *Poly { return Const(1) }

// Const returns the constant polynomial c.
func Const(c int64) *Poly { return Rat(big.NewRat(c, 1)) }

// Rat returns the constant polynomial r; r is copied.
func Rat(r *big.Rat) *Poly { return FromTerm(r, Monomial{}) }

// Symbol returns the polynomial consisting of the single indeterminate v.
func Symbol(v Var) *Poly { return FromTerm(big.NewRat(1, 1), NewMonomial(Power{Var: v, Exp: 1})) }

// FromTerm returns the single-term polynomial coef·m; coef is copied.
func FromTerm(coef *big.Rat, m Monomial) *Poly {
	p := Zero()
	p.accumulate(coef, m)

	return p
}

// Sum adds any number of polynomials.
func Sum(ps ...*Poly) *Poly {
	out := Zero()
	for _, p := range ps {
		for _, t := range p.list() {
			out.accumulate(t.Coef, t.Mono)
		}
	}

	return out
}

// accumulate adds coef·m in place. Only used while building a fresh value.
func (p *Poly) accumulate(coef *big.Rat, m Monomial) {
	if coef.Sign() == 0 {
		return
	}
	key := m.String()
	if cur, ok := p.terms[key]; ok {
		next := new(big.Rat).Add(cur.Coef, coef)
		if next.Sign() == 0 {
			delete(p.terms, key)
			return
		}
		p.terms[key] = Term{Coef: next, Mono: cur.Mono}
		return
	}
	p.terms[key] = Term{Coef: new(big.Rat).Set(coef), Mono: m}
}

// list returns the terms in map order (internal; order is irrelevant).
func (p *Poly) list() []Term {
	if p == nil {
		return nil
	}
	out := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, t)
	}

	return out
}

// Len returns the number of non-zero terms.
func (p *Poly) Len() int {
	if p == nil {
		return 0
	}

	return len(p.terms)
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return p.Len() == 0 }

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly { return Sum(p, q) }

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly { return Sum(p, q.Neg()) }

// Neg returns -p.
func (p *Poly) Neg() *Poly { return p.Scale(big.NewRat(-1, 1)) }

// Scale returns c·p.
func (p *Poly) Scale(c *big.Rat) *Poly {
	out := Zero()
	if c.Sign() == 0 {
		return out
	}
	for _, t := range p.list() {
		out.accumulate(new(big.Rat).Mul(t.Coef, c), t.Mono)
	}

	return out
}

// Mul returns p·q.
// Complexity: O(|p|·|q|) monomial merges.
func (p *Poly) Mul(q *Poly) *Poly {
	out := Zero()
	a, b := p.list(), q.list()
	for _, s := range a {
		for _, t := range b {
			out.accumulate(new(big.Rat).Mul(s.Coef, t.Coef), s.Mono.Mul(t.Mono))
		}
	}

	return out
}

// MulMonomial returns p·m.
func (p *Poly) MulMonomial(m Monomial) *Poly {
	out := Zero()
	for _, t := range p.list() {
		out.accumulate(t.Coef, t.Mono.Mul(m))
	}

	return out
}

// DivMonomial returns p·m^-1.
func (p *Poly) DivMonomial(m Monomial) *Poly { return p.MulMonomial(m.Inverse()) }

// Inverse returns p^-1. Only single-term polynomials are units.
func (p *Poly) Inverse() (*Poly, error) {
	switch p.Len() {
	case 0:
		return nil, ErrDivisionByZero
	case 1:
		t := p.list()[0]
		return FromTerm(new(big.Rat).Inv(t.Coef), t.Mono.Inverse()), nil
	default:
		return nil, fmt.Errorf("Inverse: %d terms: %w", p.Len(), ErrNotInvertible)
	}
}

// Pow returns p^k. Negative k requires p to be a single term.
func (p *Poly) Pow(k int) (*Poly, error) {
	base := p
	if k < 0 {
		inv, err := p.Inverse()
		if err != nil {
			return nil, fmt.Errorf("Pow(%d): %w", k, err)
		}
		base, k = inv, -k
	}
	out := One()
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
	}

	return out, nil
}

// Substitute replaces every occurrence of v^e with m^e.
// Substitute(t2, s2^2) turns t2^-1 into s2^-2.
func (p *Poly) Substitute(v Var, m Monomial) *Poly {
	out := Zero()
	for _, t := range p.list() {
		e := t.Mono.Exp(v)
		if e == 0 {
			out.accumulate(t.Coef, t.Mono)
			continue
		}
		out.accumulate(t.Coef, t.Mono.Without(v).Mul(m.Pow(e)))
	}

	return out
}

// Select returns the sum of the terms whose monomial satisfies keep.
func (p *Poly) Select(keep func(Monomial) bool) *Poly {
	out := Zero()
	for _, t := range p.list() {
		if keep(t.Mono) {
			out.accumulate(t.Coef, t.Mono)
		}
	}

	return out
}

// Coefficient returns the rational coefficient of m (zero when absent).
func (p *Poly) Coefficient(m Monomial) *big.Rat {
	if p == nil {
		return new(big.Rat)
	}
	if t, ok := p.terms[m.String()]; ok {
		return new(big.Rat).Set(t.Coef)
	}

	return new(big.Rat)
}

// Vars returns the indeterminates occurring in p, in canonical order.
func (p *Poly) Vars() []Var {
	seen := make(map[Var]struct{})
	for _, t := range p.list() {
		for _, pw := range t.Mono.powers {
			seen[pw.Var] = struct{}{}
		}
	}
	out := make([]Var, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return compareVar(out[i], out[j]) < 0 })

	return out
}

// Terms returns copies of the terms in printing order.
func (p *Poly) Terms() []Term {
	out := p.list()
	for i := range out {
		out[i].Coef = new(big.Rat).Set(out[i].Coef)
	}
	sort.Slice(out, func(i, j int) bool { return compareMonomial(out[i].Mono, out[j].Mono) < 0 })

	return out
}

// Equal reports whether p and q are the same polynomial.
func (p *Poly) Equal(q *Poly) bool {
	if p.Len() != q.Len() {
		return false
	}
	for _, t := range p.list() {
		if t.Coef.Cmp(q.Coefficient(t.Mono)) != 0 {
			return false
		}
	}

	return true
}

// Evaluate substitutes rational values for every indeterminate.
func (p *Poly) Evaluate(values map[Var]*big.Rat) (*big.Rat, error) {
	sum := new(big.Rat)
	for _, t := range p.list() {
		prod := new(big.Rat).Set(t.Coef)
		for _, pw := range t.Mono.powers {
			val, ok := values[pw.Var]
			if !ok || val == nil {
				return nil, fmt.Errorf("Evaluate: %s: %w", pw.Var, ErrUnboundVar)
			}
			if val.Sign() == 0 && pw.Exp < 0 {
				return nil, fmt.Errorf("Evaluate: %s^%d at 0: %w", pw.Var, pw.Exp, ErrDivisionByZero)
			}
			prod.Mul(prod, ratPow(val, pw.Exp))
		}
		sum.Add(sum, prod)
	}

	return sum, nil
}

// ratPow returns r^e for a non-zero r or a non-negative e.
func ratPow(r *big.Rat, e int) *big.Rat {
	base := new(big.Rat).Set(r)
	if e < 0 {
		base.Inv(base)
		e = -e
	}
	out := big.NewRat(1, 1)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			out.Mul(out, base)
		}
		base.Mul(base, base)
	}

	return out
}

// String renders p deterministically, e.g. "x^2*y - 2*x + 1/2".
func (p *Poly) String() string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range terms {
		neg := t.Coef.Sign() < 0
		abs := new(big.Rat).Abs(t.Coef)
		switch {
		case i == 0 && neg:
			sb.WriteByte('-')
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		switch {
		case t.Mono.IsOne():
			sb.WriteString(abs.RatString())
		case abs.Cmp(big.NewRat(1, 1)) == 0:
			sb.WriteString(t.Mono.String())
		default:
			sb.WriteString(abs.RatString())
			sb.WriteByte('*')
			sb.WriteString(t.Mono.String())
		}
	}

	return sb.String()
}
