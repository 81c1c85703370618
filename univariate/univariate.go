// Package univariate implements dense univariate polynomials over an
// exact field and Carvalho's recursive sign-bracketing algorithm for
// isolating all real roots.
package univariate

import (
	"github.com/fumin/srspoly/field"
)

// A UPoly is a dense univariate polynomial, coefficients ascending by
// degree: UPoly[i] is the coefficient of x^i.
type UPoly[T field.Field[T]] []T

// Eval evaluates p at x using Horner's rule: n field multiplications
// and adds for a degree-n polynomial.
func (p UPoly[T]) Eval(x T) T {
	if len(p) == 0 {
		return x.NewZero()
	}
	acc := p[0].NewZero()
	acc.Set(p[len(p)-1])
	for i := len(p) - 2; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p[i])
	}
	return acc
}

// Derivative returns p', the coefficient-wise derivative.
func (p UPoly[T]) Derivative() UPoly[T] {
	if len(p) <= 1 {
		return UPoly[T]{}
	}
	out := make(UPoly[T], len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = p[0].NewZero().MulScalar(p[i], int64(i))
	}
	return out
}

// Degree returns the degree of p, trimming trailing zero coefficients.
func (p UPoly[T]) Degree() int {
	d := len(p) - 1
	for d >= 0 && p[d].Equal(p[d].NewZero()) {
		d--
	}
	return d
}

// A Kind distinguishes the two forms a Root can take.
type Kind int

const (
	// Point is an exact root.
	Point Kind = iota
	// Interval is a bracketing interval known to contain exactly one root.
	Interval
)

// A Root is either an exact Point or a bracketing Interval [Lo, Hi]
// with p(Lo)*p(Hi) < 0.
type Root[T field.Field[T]] struct {
	Kind   Kind
	Point  T
	Lo, Hi T
}

// Approx returns a representative value: the point itself, or the
// interval's midpoint.
func (r Root[T]) Approx() float64 {
	if r.Kind == Point {
		return r.Point.Float64()
	}
	return (r.Lo.Float64() + r.Hi.Float64()) / 2
}

func sign[T field.Field[T]](x T) int {
	zero := x.NewZero()
	if x.Equal(zero) {
		return 0
	}
	if x.Float64() < 0 {
		return -1
	}
	return 1
}

// signAtInfinity returns the sign of p as x -> +inf if positive is
// true, or x -> -inf otherwise, determined by the leading coefficient
// and the parity of the degree.
func signAtInfinity[T field.Field[T]](p UPoly[T], positive bool) int {
	d := p.Degree()
	lead := p[d]
	s := sign(lead)
	if !positive && d%2 != 0 {
		s = -s
	}
	return s
}

// RealRootIntervals isolates every real root of p to within tolerance
// eps, returning them ordered smallest first. Each Interval has
// width <= eps and brackets exactly one root; each Point is exact.
//
// Carvalho's algorithm: recurse on p's derivative to find the gaps of
// monotonicity, then bracket the (at most one) root in each gap by
// sign comparison at its endpoints, including the unbounded gaps at
// +/-infinity whose sign comes from the leading coefficient and degree
// parity.
func RealRootIntervals[T field.Field[T]](p UPoly[T], eps T) []Root[T] {
	d := p.Degree()
	switch {
	case d <= 0:
		return nil
	case d == 1:
		a1, a0 := p[1], p[0]
		zero := a1.NewZero()
		x := zero.NewZero()
		x.Div(a0, a1)
		x.Sub(zero, x)
		return []Root[T]{{Kind: Point, Point: x}}
	}

	deriv := p.Derivative()
	derivRoots := RealRootIntervals(deriv, eps)

	// Collect representative points for each derivative root (Points
	// stay exact; Intervals are refined further so a value of p can be
	// evaluated at them without ambiguity about which side of the true
	// root it falls on is irrelevant, since p is monotone across it).
	points := make([]T, len(derivRoots))
	for i, r := range derivRoots {
		if r.Kind == Point {
			points[i] = r.Point
		} else {
			points[i] = refineToPoint(deriv, r.Lo, r.Hi, eps)
		}
	}

	var roots []Root[T]

	// Leftmost unbounded gap.
	leftSign := signAtInfinity(p, false)
	if len(points) == 0 {
		// Single gap (-inf, +inf): probe outward from 0 in whichever
		// direction the sign at 0 indicates the root lies, the same way
		// the bounded-gap branches below check sign before choosing a
		// probe direction.
		rightSign := signAtInfinity(p, true)
		if leftSign != 0 && rightSign != 0 && leftSign != rightSign {
			zero := p[0].NewZero()
			zeroSign := sign(p.Eval(zero))
			switch {
			case zeroSign == 0:
				roots = append(roots, Root[T]{Kind: Point, Point: zero})
			case zeroSign == leftSign:
				lo, hi := probeRightOf(p, zero, rightSign)
				roots = append(roots, refineInterval(p, lo, hi, eps))
			default:
				lo, hi := probeLeftOf(p, zero, leftSign)
				roots = append(roots, refineInterval(p, lo, hi, eps))
			}
		}
		return roots
	}

	firstVal := p.Eval(points[0])
	if sign(firstVal) == 0 {
		roots = append(roots, Root[T]{Kind: Point, Point: points[0]})
	} else if leftSign != 0 && leftSign != sign(firstVal) {
		lo, hi := probeLeftOf(p, points[0], leftSign)
		roots = append(roots, refineInterval(p, lo, hi, eps))
	}

	for i := 0; i+1 < len(points); i++ {
		lo, hi := points[i], points[i+1]
		loVal, hiVal := p.Eval(lo), p.Eval(hi)
		loS, hiS := sign(loVal), sign(hiVal)
		switch {
		case loS == 0:
			// already recorded as firstVal or the previous iteration's hi
		case hiS == 0:
			roots = append(roots, Root[T]{Kind: Point, Point: hi})
		case loS != hiS:
			roots = append(roots, refineInterval(p, lo, hi, eps))
		}
	}

	lastVal := p.Eval(points[len(points)-1])
	lastSign := sign(lastVal)
	// A zero at the last point is already recorded: as firstVal when
	// there is a single point, otherwise as the gap loop's final hi.
	if lastSign != 0 {
		rightSign := signAtInfinity(p, true)
		if rightSign != 0 && rightSign != lastSign {
			lo, hi := probeRightOf(p, points[len(points)-1], rightSign)
			roots = append(roots, refineInterval(p, lo, hi, eps))
		}
	}

	return roots
}

// probeLeftOf searches leftward from r by -1, -2, -4, -8, ... until
// p's sign at the probe point matches leftSign (the sign at
// -infinity), bracketing a root in [probe, r]. It assumes
// sign(p(r)) != leftSign already, so the search terminates once the
// sign finally catches up to the -infinity limit.
func probeLeftOf[T field.Field[T]](p UPoly[T], r T, leftSign int) (lo, hi T) {
	step := int64(1)
	x := r.NewZero()
	x.Set(r)
	for {
		d := x.NewZero()
		d.MulScalar(x.NewOne(), step)
		probe := x.NewZero()
		probe.Sub(r, d)
		if sign(p.Eval(probe)) == leftSign {
			return probe, r
		}
		step *= 2
	}
}

// probeRightOf is probeLeftOf's mirror image, searching rightward from
// r until p's sign matches rightSign (the sign at +infinity),
// bracketing a root in [r, probe].
func probeRightOf[T field.Field[T]](p UPoly[T], r T, rightSign int) (lo, hi T) {
	step := int64(1)
	for {
		d := r.NewZero()
		d.MulScalar(r.NewOne(), step)
		probe := r.NewZero()
		probe.Add(r, d)
		if sign(p.Eval(probe)) == rightSign {
			return r, probe
		}
		step *= 2
	}
}

// refineInterval bisects [lo, hi] until its width is <= eps, keeping
// the half whose endpoint sign differs, and returns the final
// bracketing Root. If an endpoint is ever exactly zero, a Point is
// returned instead.
func refineInterval[T field.Field[T]](p UPoly[T], lo, hi, eps T) Root[T] {
	loVal := p.Eval(lo)
	if sign(loVal) == 0 {
		return Root[T]{Kind: Point, Point: lo}
	}
	hiVal := p.Eval(hi)
	if sign(hiVal) == 0 {
		return Root[T]{Kind: Point, Point: hi}
	}
	loSign := sign(loVal)

	two := lo.NewZero()
	two.Add(lo.NewOne(), lo.NewOne())

	for {
		width := hi.NewZero()
		width.Sub(hi, lo)
		if sign(width.Sub(width, eps)) <= 0 {
			return Root[T]{Kind: Interval, Lo: lo, Hi: hi}
		}

		mid := lo.NewZero()
		mid.Add(lo, hi)
		mid.Div(mid, two)
		midVal := p.Eval(mid)
		if sign(midVal) == 0 {
			return Root[T]{Kind: Point, Point: mid}
		}
		if sign(midVal) == loSign {
			lo = mid
		} else {
			hi = mid
		}
	}
}

// refineToPoint bisects [lo, hi] down to a representative value within
// eps of the true root, for use as a probe point when walking gaps of
// a higher derivative. It never claims exactness.
func refineToPoint[T field.Field[T]](p UPoly[T], lo, hi, eps T) T {
	r := refineInterval(p, lo, hi, eps)
	if r.Kind == Point {
		return r.Point
	}
	mid := r.Lo.NewZero()
	mid.Add(r.Lo, r.Hi)
	two := r.Lo.NewZero()
	two.Add(r.Lo.NewOne(), r.Lo.NewOne())
	mid.Div(mid, two)
	return mid
}
