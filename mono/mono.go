// Package mono implements the canonical monomial algebra used by the
// polynomial core: grevlex ordering and the multiply/divide/lcm
// operations that ignore coefficients and act purely on exponent
// patterns.
package mono

// A VarPower pairs a variable index with the exponent it carries in a
// monomial. Var is an index into a caller-held variable dictionary;
// arithmetic and ordering in this package never look names up, they
// only ever compare indices.
type VarPower struct {
	Var int
	Exp uint64
}

// A Pattern is the exponent vector of a monomial: the variables that
// appear with nonzero exponent, sorted ascending by Var. A Pattern
// never holds a VarPower with Exp == 0.
type Pattern []VarPower

// Degree returns the total degree of p, the sum of its exponents.
func (p Pattern) Degree() uint64 {
	var d uint64
	for _, vp := range p {
		d += vp.Exp
	}
	return d
}

// Equal reports whether p and q are the same exponent pattern.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Pattern) Clone() Pattern {
	q := make(Pattern, len(p))
	copy(q, p)
	return q
}

// Grevlex compares x and y under graded reverse lexicographic order:
// higher total degree sorts greater, and among equal-degree patterns
// the one with the larger exponent on the earliest-differing
// variable (scanned from the lowest variable index) sorts greater,
// so that x > y > z for variables indexed 0, 1, 2.
// Grevlex returns a negative number, zero, or a positive number as x
// is less than, equal to, or greater than y, matching [cmp.Compare].
//
// Variable names never enter the comparison: since dictionaries
// assign indices in first-appearance order, comparing indices directly
// is equivalent to comparing dictionary-order names.
func Grevlex(x, y Pattern) int {
	xd, yd := x.Degree(), y.Degree()
	if xd != yd {
		if xd < yd {
			return -1
		}
		return 1
	}

	xi, yi := 0, 0
	for xi < len(x) && yi < len(y) {
		xv, yv := x[xi], y[yi]
		switch {
		case xv.Var < yv.Var:
			// x carries a lower-indexed variable at this slot that y
			// lacks (exponent 0 in y), so x has the larger exponent there.
			return 1
		case xv.Var > yv.Var:
			return -1
		case xv.Exp != yv.Exp:
			if xv.Exp > yv.Exp {
				return 1
			}
			return -1
		default:
			xi++
			yi++
		}
	}
	switch {
	case xi < len(x):
		return 1
	case yi < len(y):
		return -1
	default:
		return 0
	}
}

// Mul returns the product of x and y: exponents of shared variables
// add, and the result is re-sorted by variable index.
func Mul(x, y Pattern) Pattern {
	out := make(Pattern, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) || j < len(y) {
		switch {
		case i < len(x) && j < len(y) && x[i].Var == y[j].Var:
			out = append(out, VarPower{Var: x[i].Var, Exp: x[i].Exp + y[j].Exp})
			i++
			j++
		case j >= len(y) || (i < len(x) && x[i].Var < y[j].Var):
			out = append(out, x[i])
			i++
		default:
			out = append(out, y[j])
			j++
		}
	}
	return out
}

// Div returns x/y and true if y's exponent pattern divides x's (every
// variable in y appears in x with at least as large an exponent), and
// (nil, false) otherwise.
func Div(x, y Pattern) (Pattern, bool) {
	out := make(Pattern, 0, len(x))
	i, j := 0, 0
	for j < len(y) {
		if i >= len(x) {
			return nil, false
		}
		switch {
		case x[i].Var < y[j].Var:
			out = append(out, x[i])
			i++
		case x[i].Var > y[j].Var:
			return nil, false
		default:
			if x[i].Exp < y[j].Exp {
				return nil, false
			}
			if rem := x[i].Exp - y[j].Exp; rem > 0 {
				out = append(out, VarPower{Var: x[i].Var, Exp: rem})
			}
			i++
			j++
		}
	}
	for ; i < len(x); i++ {
		out = append(out, x[i])
	}
	return out, true
}

// LCM returns the least common multiple of x and y: for each variable
// appearing in either, the larger of the two exponents.
func LCM(x, y Pattern) Pattern {
	out := make(Pattern, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) || j < len(y) {
		switch {
		case i < len(x) && j < len(y) && x[i].Var == y[j].Var:
			e := x[i].Exp
			if y[j].Exp > e {
				e = y[j].Exp
			}
			out = append(out, VarPower{Var: x[i].Var, Exp: e})
			i++
			j++
		case j >= len(y) || (i < len(x) && x[i].Var < y[j].Var):
			out = append(out, x[i])
			i++
		default:
			out = append(out, y[j])
			j++
		}
	}
	return out
}
