// Package algebraic wraps an isolated real root of a univariate
// polynomial together with the polynomial that defines it.
package algebraic

import (
	"github.com/fumin/srspoly/field"
	"github.com/fumin/srspoly/univariate"
)

// An Algebraic is a real algebraic number: a defining polynomial P, an
// isolating root Val, and an ordinal index N identifying which real
// root of P this is, numbered from smallest to largest starting at 0.
type Algebraic[T field.Field[T]] struct {
	P   univariate.UPoly[T]
	Val univariate.Root[T]
	N   int
}

// GetRoots returns one Algebraic per real root of p, ordered smallest
// to largest, with N set to that ordinal.
func GetRoots[T field.Field[T]](p univariate.UPoly[T], eps T) []Algebraic[T] {
	roots := univariate.RealRootIntervals(p, eps)
	out := make([]Algebraic[T], len(roots))
	for i, r := range roots {
		out[i] = Algebraic[T]{P: p, Val: r, N: i}
	}
	return out
}

// FromPoint returns the algebraic number x itself, with defining
// polynomial X - x and ordinal index 0.
func FromPoint[T field.Field[T]](x T) Algebraic[T] {
	neg := x.NewZero()
	neg.Sub(neg, x)
	p := univariate.UPoly[T]{neg, x.NewOne()}
	return Algebraic[T]{P: p, Val: univariate.Root[T]{Kind: univariate.Point, Point: x}, N: 0}
}
