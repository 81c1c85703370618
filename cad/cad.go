// Package cad contains the skeletal beginnings of a cylindrical
// algebraic decomposition projection pipeline: a reductum set builder
// and a formula AST. Full projection and quantifier elimination are
// out of scope here; these are carried over as the unfinished
// primitives a CAD implementation would build on.
package cad

import (
	"github.com/fumin/srspoly/field"
	"github.com/fumin/srspoly/poly"
)

// ReductaSet returns every reductum of p in variable var: starting
// from p's descending coefficient vector (index 0 the leading
// coefficient, trailing zero entries dropped), the set of suffixes
// coefs[i:] for i from 0 up to the last nonzero coefficient.
//
// Each reductum is itself a dense descending coefficient vector, the
// same representation [subresultant.Subresultants] consumes.
func ReductaSet[T field.Field[T]](p *poly.Polynomial[T], v int) [][]*poly.Polynomial[T] {
	coefs := poly.Coefs(p, v)
	if len(coefs) == 0 {
		return nil
	}

	lastNonzero := len(coefs) - 1
	for lastNonzero > 0 && coefs[lastNonzero].IsZero() {
		lastNonzero--
	}

	var out [][]*poly.Polynomial[T]
	for i := 0; i <= lastNonzero; i++ {
		out = append(out, coefs[i:lastNonzero+1])
	}
	return out
}

// Project computes the first level of a CAD projection set: the
// coefficient vectors of each member of ps in variable varOrder[0],
// one per member in input order; duplicates are not removed. Subsequent
// levels (iterating reducta across the remaining variable order) are
// not implemented.
func Project[T field.Field[T]](ps []*poly.Polynomial[T], varOrder []int) [][][]*poly.Polynomial[T] {
	if len(varOrder) == 0 {
		return nil
	}
	first := make([][]*poly.Polynomial[T], 0, len(ps))
	for _, p := range ps {
		first = append(first, poly.Coefs(p, varOrder[0]))
	}
	return [][][]*poly.Polynomial[T]{first}
}

// Cmp is a sign comparator used in a Tarski atomic constraint.
type Cmp int

const (
	Gt Cmp = iota
	Eq
	Lt
)

// A Constraint is a single atomic sign condition on a polynomial
// value.
type Constraint[T field.Field[T]] struct {
	Value      *poly.Polynomial[T]
	CmpZero    Cmp
	Provenance string
}

// A Tarski formula is a Boolean combination of constraints. It is an
// inert value type in this package: no evaluator or quantifier
// elimination is attached.
type Tarski[T field.Field[T]] struct {
	And []Tarski[T]
	Or  []Tarski[T]
	Not *Tarski[T]
	C   *Constraint[T]
}
