// Package field implements the exact-arithmetic coefficient field used
// throughout the polynomial core, in particular the overflow-safe
// [Rat] type.
package field

import (
	"fmt"
	"math/big"
)

// A Field is an element of a field: addition, subtraction, multiplication,
// and division are all defined and total (except division by zero), and
// every element can be scaled by an arbitrary 64-bit integer.
//
// Implementations mirror the receiver-sets-itself convention used
// throughout this module: for a binary operation, z.Add(x, y) sets z to
// x+y and returns z, where z is the method receiver.
type Field[T any] interface {
	// NewZero returns the additive identity of the field.
	NewZero() T
	// NewOne returns the multiplicative identity of the field.
	NewOne() T
	// NewFromInt returns the field element corresponding to the integer n.
	NewFromInt(n int64) T

	// Equal reports whether x and y are equal, where x is the receiver.
	Equal(y T) bool
	// Set sets z to x and returns z, where z is the receiver.
	Set(x T) T
	// Add sets z to the sum x+y and returns z, where z is the receiver.
	Add(x, y T) T
	// Sub sets z to the difference x-y and returns z, where z is the receiver.
	Sub(x, y T) T
	// Mul sets z to the product x*y and returns z, where z is the receiver.
	Mul(x, y T) T
	// Div sets z to the quotient x/y and returns z, where z is the receiver.
	// Div panics if y is zero.
	Div(x, y T) T
	// MulScalar sets z to x*n and returns z, where n is a 64-bit integer
	// and z is the receiver.
	MulScalar(x T, n int64) T

	// Float64 returns a floating-point approximation, for diagnostics only.
	Float64() float64
	// String returns the string representation.
	String() string
}

// A Rat is an overflow-safe rational number with a numerator and
// denominator that each fit in an int64. Invariants: den > 0;
// gcd(|num|, den) == 1; num == 0 implies den == 1.
//
// Arithmetic that would overflow a 64-bit intermediate sheds precision
// by halving the operand with the larger magnitude and retrying, rather
// than promoting to arbitrary precision. See [Rat.Add] for the algorithm.
type Rat struct {
	num, den int64
}

// NewRat returns the reduced rational num/den. NewRat panics if den is zero.
func NewRat(num, den int64) *Rat {
	r := &Rat{num: num, den: den}
	r.reduce()
	return r
}

// NewZero returns the additive identity 0.
func (r *Rat) NewZero() *Rat { return &Rat{num: 0, den: 1} }

// NewOne returns the multiplicative identity 1.
func (r *Rat) NewOne() *Rat { return &Rat{num: 1, den: 1} }

// NewFromInt returns the rational n/1.
func (r *Rat) NewFromInt(n int64) *Rat { return &Rat{num: n, den: 1} }

// Num returns the reduced numerator.
func (r *Rat) Num() int64 { return r.num }

// Den returns the reduced denominator.
func (r *Rat) Den() int64 { return r.den }

// IsZero reports whether r is the additive identity.
func (r *Rat) IsZero() bool { return r.num == 0 }

// TryInt returns the integer value of r and true if r.den == 1,
// otherwise (0, false).
func (r *Rat) TryInt() (int64, bool) {
	if r.den == 1 {
		return r.num, true
	}
	return 0, false
}

// Equal reports whether x and y are equal on their reduced form.
func (x *Rat) Equal(y *Rat) bool {
	return x.num == y.num && x.den == y.den
}

// Set sets z to x and returns z.
func (z *Rat) Set(x *Rat) *Rat {
	*z = *x
	return z
}

// Float64 returns num/den as a float64, for diagnostics only.
func (x *Rat) Float64() float64 {
	return float64(x.num) / float64(x.den)
}

// String returns "num/den" when den != 1, and "num" otherwise.
func (x *Rat) String() string {
	if x.den == 1 {
		return fmt.Sprintf("%d", x.num)
	}
	return fmt.Sprintf("%d/%d", x.num, x.den)
}

func (r *Rat) reduce() {
	if r.den == 0 {
		panic("rational with zero denominator")
	}
	if r.num == 0 {
		r.den = 1
		return
	}
	g := gcd(abs64(r.num), r.den)
	r.num /= g
	r.den /= g
	if r.den < 0 {
		r.num, r.den = -r.num, -r.den
	}
}

// Add sets z to the sum x+y and returns z. Following the overflow-safe
// algorithm of §4.1: compute over a shared denominator, and whenever a
// 64-bit multiplication or addition would overflow, halve the operand
// carrying the larger magnitude numerator (or denominator, for the
// final product) and restart.
func (z *Rat) Add(x, y *Rat) *Rat {
	a, b := *x, *y
	for {
		g := gcd(a.den, b.den)
		lhsNum, ok := mulOverflows(b.den/g, a.num)
		if !ok {
			halveLarger(&a, &b, a.num, b.num)
			continue
		}
		rhsNum, ok := mulOverflows(a.den/g, b.num)
		if !ok {
			halveLarger(&a, &b, a.num, b.num)
			continue
		}
		num, ok := addOverflows(lhsNum, rhsNum)
		if !ok {
			halveLarger(&a, &b, a.num, b.num)
			continue
		}
		den, ok := mulOverflows(a.den/g, b.den)
		if !ok {
			halveLarger(&a, &b, a.den, b.den)
			continue
		}
		*z = reduceNumDen(num, den)
		return z
	}
}

// Sub sets z to the difference x-y and returns z.
func (z *Rat) Sub(x, y *Rat) *Rat {
	a, b := *x, *y
	for {
		g := gcd(a.den, b.den)
		lhsNum, ok := mulOverflows(b.den/g, a.num)
		if !ok {
			halveLarger(&a, &b, a.num, b.num)
			continue
		}
		rhsNum, ok := mulOverflows(a.den/g, b.num)
		if !ok {
			halveLarger(&a, &b, a.num, b.num)
			continue
		}
		num, ok := subOverflows(lhsNum, rhsNum)
		if !ok {
			halveLarger(&a, &b, a.num, b.num)
			continue
		}
		den, ok := mulOverflows(a.den/g, b.den)
		if !ok {
			halveLarger(&a, &b, a.den, b.den)
			continue
		}
		*z = reduceNumDen(num, den)
		return z
	}
}

// Mul sets z to the product x*y and returns z. Numerators and
// denominators are cross-reduced by gcd before multiplying.
func (z *Rat) Mul(x, y *Rat) *Rat {
	a, b := *x, *y
	for {
		lg := gcd(abs64(a.num), abs64(b.den))
		rg := gcd(abs64(b.num), abs64(a.den))
		num, ok := mulOverflows(a.num/lg, b.num/rg)
		if !ok {
			halveLarger(&a, &b, a.num, b.num)
			continue
		}
		den, ok := mulOverflows(a.den/rg, b.den/lg)
		if !ok {
			halveLarger(&a, &b, a.num, b.num)
			continue
		}
		*z = reduceNumDen(num, den)
		return z
	}
}

// Div sets z to the quotient x/y and returns z. Div panics if y is zero.
func (z *Rat) Div(x, y *Rat) *Rat {
	if y.IsZero() {
		panic("division by zero")
	}
	a, b := *x, *y
	for {
		ng := gcd(abs64(a.num), abs64(b.num))
		dg := gcd(abs64(b.den), abs64(a.den))
		num, ok := mulOverflows(a.num/ng, b.den/dg)
		if !ok {
			halveLarger(&a, &b, a.num, b.den)
			continue
		}
		den, ok := mulOverflows(a.den/dg, b.num/ng)
		if !ok {
			halveLarger(&a, &b, a.num, b.den)
			continue
		}
		*z = reduceNumDen(num, den)
		return z
	}
}

// MulScalar sets z to x*n and returns z. If n divides x's denominator,
// the denominator is reduced; otherwise the numerator is multiplied.
func (z *Rat) MulScalar(x *Rat, n int64) *Rat {
	if n == 0 {
		z.num, z.den = 0, 1
		return z
	}
	num, den := x.num, x.den
	if den%n == 0 {
		den /= n
	} else {
		num *= n
	}
	*z = Rat{num: num, den: den}
	z.reduce()
	return z
}

func reduceNumDen(num, den int64) Rat {
	r := Rat{num: num, den: den}
	r.reduce()
	return r
}

// halveLarger sheds precision from whichever of a or b carries the
// larger-magnitude value among (aVal, bVal), halving both its numerator
// and denominator (arithmetic right shift).
func halveLarger(a, b *Rat, aVal, bVal int64) {
	if abs64(aVal) >= abs64(bVal) {
		a.num >>= 1
		a.den >>= 1
		if a.den == 0 {
			a.den = 1
		}
	} else {
		b.num >>= 1
		b.den >>= 1
		if b.den == 0 {
			b.den = 1
		}
	}
}

func mulOverflows(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func addOverflows(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func subOverflows(a, b int64) (int64, bool) {
	return addOverflows(a, -b)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// gcd computes the greatest common divisor of a and b via Euclid's
// algorithm, always returning a non-negative result.
func gcd(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// toBigRat is a diagnostic escape hatch for tests that need
// arbitrary-precision comparison against the overflow-safe result; it is
// not part of the arithmetic hot path.
func toBigRat(r *Rat) *big.Rat {
	return big.NewRat(r.num, r.den)
}
