// SPDX-License-Identifier: MIT

package poly

import (
	"sort"
	"strconv"
	"strings"
)

// Var names an indeterminate, e.g. "x", "y", "t2", "s2".
type Var string

// Reserved indeterminates of the Alexander polynomial.
const (
	X Var = "x"
	Y Var = "y"
)

// Indexed returns the indeterminate prefix+index, e.g. Indexed("t", 2) == "t2".
func Indexed(prefix string, index int) Var {
	return Var(prefix + strconv.Itoa(index))
}

// Power is a single factor v^Exp of a monomial.
type Power struct {
	Var Var
	Exp int
}

// Monomial is a canonical product of powers. The zero value is the empty
// product 1. Factors are sorted by compareVar and never carry Exp == 0.
type Monomial struct {
	powers []Power
}

// NewMonomial builds a canonical monomial; repeated variables are merged and
// zero exponents dropped.
// Complexity: O(k log k) for k powers.
func NewMonomial(ps ...Power) Monomial {
	if len(ps) == 0 {
		return Monomial{}
	}
	acc := make(map[Var]int, len(ps))
	for _, p := range ps {
		acc[p.Var] += p.Exp
	}

	return fromExponents(acc)
}

// fromExponents sorts a var->exp map into canonical form.
func fromExponents(acc map[Var]int) Monomial {
	out := make([]Power, 0, len(acc))
	for v, e := range acc {
		if e != 0 {
			out = append(out, Power{Var: v, Exp: e})
		}
	}
	sort.Slice(out, func(i, j int) bool { return compareVar(out[i].Var, out[j].Var) < 0 })

	return Monomial{powers: out}
}

// Powers returns a copy of the factors in canonical order.
func (m Monomial) Powers() []Power {
	out := make([]Power, len(m.powers))
	copy(out, m.powers)

	return out
}

// Exp returns the exponent of v in m (0 when absent).
func (m Monomial) Exp(v Var) int {
	for _, p := range m.powers {
		if p.Var == v {
			return p.Exp
		}
	}

	return 0
}

// IsOne reports whether m is the empty product.
func (m Monomial) IsOne() bool { return len(m.powers) == 0 }

// Mul returns m·o by merging the two sorted factor lists.
// Complexity: O(len(m)+len(o)).
func (m Monomial) Mul(o Monomial) Monomial {
	out := make([]Power, 0, len(m.powers)+len(o.powers))
	i, j := 0, 0
	for i < len(m.powers) && j < len(o.powers) {
		a, b := m.powers[i], o.powers[j]
		switch c := compareVar(a.Var, b.Var); {
		case c < 0:
			out = append(out, a)
			i++
		case c > 0:
			out = append(out, b)
			j++
		default:
			if e := a.Exp + b.Exp; e != 0 {
				out = append(out, Power{Var: a.Var, Exp: e})
			}
			i++
			j++
		}
	}
	out = append(out, m.powers[i:]...)
	out = append(out, o.powers[j:]...)

	return Monomial{powers: out}
}

// Pow returns m^k for any integer k.
func (m Monomial) Pow(k int) Monomial {
	if k == 0 {
		return Monomial{}
	}
	out := make([]Power, len(m.powers))
	for i, p := range m.powers {
		out[i] = Power{Var: p.Var, Exp: p.Exp * k}
	}

	return Monomial{powers: out}
}

// Inverse returns m^-1.
func (m Monomial) Inverse() Monomial { return m.Pow(-1) }

// Without returns m with the factor of v removed.
func (m Monomial) Without(v Var) Monomial {
	out := make([]Power, 0, len(m.powers))
	for _, p := range m.powers {
		if p.Var != v {
			out = append(out, p)
		}
	}

	return Monomial{powers: out}
}

// String renders m as "x^2*t2^-1"; the empty product renders as "1".
func (m Monomial) String() string {
	if len(m.powers) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, p := range m.powers {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(string(p.Var))
		if p.Exp != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(p.Exp))
		}
	}

	return sb.String()
}

// compareMonomial orders monomials for printing: walking the variables in
// canonical order, the monomial with the larger exponent at the first
// differing variable comes first.
func compareMonomial(a, b Monomial) int {
	i, j := 0, 0
	for i < len(a.powers) || j < len(b.powers) {
		var v Var
		switch {
		case i == len(a.powers):
			v = b.powers[j].Var
		case j == len(b.powers):
			v = a.powers[i].Var
		case compareVar(a.powers[i].Var, b.powers[j].Var) <= 0:
			v = a.powers[i].Var
		default:
			v = b.powers[j].Var
		}
		ea, eb := 0, 0
		if i < len(a.powers) && a.powers[i].Var == v {
			ea = a.powers[i].Exp
			i++
		}
		if j < len(b.powers) && b.powers[j].Var == v {
			eb = b.powers[j].Exp
			j++
		}
		if ea != eb {
			if ea > eb {
				return -1
			}
			return 1
		}
	}

	return 0
}

// compareVar: x, then y, then by letter prefix, then by numeric suffix.
func compareVar(a, b Var) int {
	if a == b {
		return 0
	}
	if ra, rb := varRank(a), varRank(b); ra != rb {
		return ra - rb
	}
	pa, na, oka := splitVar(a)
	pb, nb, okb := splitVar(b)
	if pa != pb {
		return strings.Compare(pa, pb)
	}
	if oka != okb {
		if !oka {
			return -1
		}
		return 1
	}
	if na != nb {
		if na < nb {
			return -1
		}
		return 1
	}

	return strings.Compare(string(a), string(b))
}

func varRank(v Var) int {
	switch v {
	case X:
		return 0
	case Y:
		return 1
	default:
		return 2
	}
}

// splitVar splits "t12" into ("t", 12, true); names without a numeric
// suffix report ok == false.
func splitVar(v Var) (prefix string, num int, ok bool) {
	s := string(v)
	cut := len(s)
	for cut > 0 && s[cut-1] >= '0' && s[cut-1] <= '9' {
		cut--
	}
	if cut == len(s) {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[cut:])
	if err != nil {
		return s, 0, false
	}

	return s[:cut], n, true
}
