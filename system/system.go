// Package system implements a polynomial system over a shared variable
// dictionary and Buchberger's algorithm for computing a reduced
// Gröbner basis under grevlex order.
package system

import (
	"sort"

	"github.com/fumin/srspoly/field"
	"github.com/fumin/srspoly/mono"
	"github.com/fumin/srspoly/poly"
)

// A System is a set of polynomials sharing a variable dictionary. The
// dictionary assigns each variable name an index in first-appearance
// order; polynomials reference variables purely by index.
type System struct {
	VarDict []string
	Members []*poly.Polynomial[*field.Rat]
}

// New returns a system over the given variable dictionary with no
// members.
func New(varDict []string) *System {
	return &System{VarDict: varDict}
}

// Var returns the polynomial consisting of the single variable at
// index v, for use when building member polynomials.
func (s *System) Var(v int) *poly.Polynomial[*field.Rat] {
	return poly.Var(field.NewRat(0, 1), v, 1)
}

// Const returns the constant polynomial n, over s's field.
func (s *System) Const(n int64) *poly.Polynomial[*field.Rat] {
	return poly.Const(field.NewRat(0, 1), n)
}

// pair is an unordered candidate pair of basis member indices awaiting
// S-polynomial reduction.
type pair struct{ i, j int }

// sPoly computes S(p, q) = (lcm/LT(p))*p - (lcm/LT(q))*q.
func sPoly(p, q *poly.Polynomial[*field.Rat]) *poly.Polynomial[*field.Rat] {
	pLT := p.LeadingTerm()
	qLT := q.LeadingTerm()
	l := mono.LCM(pLT.Vars, qLT.Vars)

	pCofVars, _ := mono.Div(l, pLT.Vars)
	qCofVars, _ := mono.Div(l, qLT.Vars)
	pCoef := field.NewRat(1, 1).Div(field.NewRat(1, 1), pLT.Coeff)
	qCoef := field.NewRat(1, 1).Div(field.NewRat(1, 1), qLT.Coeff)

	f := field.NewRat(0, 1)
	pFactor := poly.New(f, poly.Term[*field.Rat]{Coeff: pCoef, Vars: pCofVars})
	qFactor := poly.New(f, poly.Term[*field.Rat]{Coeff: qCoef, Vars: qCofVars})

	lhs := poly.New(f)
	lhs.Mul(pFactor, p)
	rhs := poly.New(f)
	rhs.Mul(qFactor, q)

	out := poly.New(f)
	out.Sub(lhs, rhs)
	return out
}

// Buchberger computes a reduced Gröbner basis of the ideal generated
// by s's members, under grevlex order, and returns it as a new
// System over the same variable dictionary.
//
// Phase 1 closes the S-polynomial set against a naive pair list; phase
// 2 removes basis members whose leading monomial is divisible by
// another's; phase 3 inter-reduces the survivors against each other;
// phase 4 sorts by leading-monomial grevlex order and canonicalizes
// with [poly.Norm].
func (s *System) Buchberger() *System {
	var basis []*poly.Polynomial[*field.Rat]
	for _, m := range s.Members {
		if !m.IsZero() {
			basis = append(basis, m)
		}
	}

	var pairs []pair
	for i := range basis {
		for j := i + 1; j < len(basis); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	for len(pairs) > 0 {
		p := pairs[0]
		pairs = pairs[1:]

		sp := sPoly(basis[p.i], basis[p.j])
		_, rem := poly.CompoundDivide(sp, basis)
		if rem.IsZero() {
			continue
		}

		newIdx := len(basis)
		for i := range basis {
			pairs = append(pairs, pair{i, newIdx})
		}
		basis = append(basis, rem)
	}

	// Phase 2: minimization.
	keep := make([]bool, len(basis))
	for i := range basis {
		keep[i] = true
	}
	for i := range basis {
		if !keep[i] {
			continue
		}
		for j := range basis {
			if i == j || !keep[j] {
				continue
			}
			iLM, jLM := basis[i].LeadingTerm().Vars, basis[j].LeadingTerm().Vars
			if _, ok := mono.Div(iLM, jLM); ok {
				// Equal leading monomials keep the earlier-indexed member.
				if j < i || !iLM.Equal(jLM) {
					keep[i] = false
					break
				}
			}
		}
	}
	var minimized []*poly.Polynomial[*field.Rat]
	for i, k := range keep {
		if k {
			minimized = append(minimized, basis[i])
		}
	}

	// Phase 3: inter-reduction.
	reduced := make([]*poly.Polynomial[*field.Rat], len(minimized))
	for i := range minimized {
		others := make([]*poly.Polynomial[*field.Rat], 0, len(minimized)-1)
		for j := range minimized {
			if i != j {
				others = append(others, minimized[j])
			}
		}
		_, rem := poly.CompoundDivide(minimized[i], others)
		reduced[i] = rem
	}

	// Phase 4: canonicalization.
	sort.Slice(reduced, func(i, j int) bool {
		return mono.Grevlex(reduced[i].LeadingTerm().Vars, reduced[j].LeadingTerm().Vars) > 0
	})
	for i := range reduced {
		reduced[i] = poly.Norm(reduced[i])
	}

	return &System{VarDict: s.VarDict, Members: reduced}
}

// String renders s as "[p1, p2, ...]", with each member's variables
// rendered by name from s.VarDict.
func (s *System) String() string {
	out := "["
	for i, m := range s.Members {
		if i > 0 {
			out += ", "
		}
		out += m.StringNames(s.VarDict)
	}
	return out + "]"
}
