// Package poly implements multivariate polynomial arithmetic over an
// exact [field.Field] coefficient type, with terms stored in grevlex
// order.
package poly

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jba/omap"

	"github.com/fumin/srspoly/field"
	"github.com/fumin/srspoly/mono"
)

// A Term is a single coefficient-monomial pair.
type Term[T field.Field[T]] struct {
	Coeff T
	Vars  mono.Pattern
}

// A Polynomial is a multivariate polynomial over the coefficient field
// T, with terms stored in an ordered map keyed by grevlex-compared
// exponent patterns.
type Polynomial[T field.Field[T]] struct {
	field T
	m     *omap.MapFunc[mono.Pattern, T]
}

// New returns a new polynomial over the given field containing terms,
// using field as the zero value for the coefficient type.
func New[T field.Field[T]](f T, terms ...Term[T]) *Polynomial[T] {
	x := &Polynomial[T]{
		field: f,
		m:     omap.NewMapFunc[mono.Pattern, T](mono.Grevlex),
	}
	for _, t := range terms {
		x.addTerm(1, t)
	}
	return x
}

// Var returns the polynomial consisting of the single variable v
// raised to exp, with coefficient 1.
func Var[T field.Field[T]](f T, v int, exp uint64) *Polynomial[T] {
	if exp == 0 {
		return Const(f, 1)
	}
	return New(f, Term[T]{Coeff: f.NewOne(), Vars: mono.Pattern{{Var: v, Exp: exp}}})
}

// Const returns the constant polynomial n.
func Const[T field.Field[T]](f T, n int64) *Polynomial[T] {
	if n == 0 {
		return New(f)
	}
	return New(f, Term[T]{Coeff: f.NewFromInt(n), Vars: nil})
}

// Field returns the coefficient field of x.
func (x *Polynomial[T]) Field() T { return x.field }

// Len reports the number of terms in x.
func (x *Polynomial[T]) Len() int { return x.m.Len() }

// IsZero reports whether x is the zero polynomial.
func (x *Polynomial[T]) IsZero() bool { return x.m.Len() == 0 }

// Terms iterates the terms of x in descending grevlex order.
func (x *Polynomial[T]) Terms() iter.Seq2[T, mono.Pattern] {
	return func(yield func(T, mono.Pattern) bool) {
		for w, c := range x.m.Backward() {
			if !yield(c, w) {
				return
			}
		}
	}
}

// Equal reports whether x and y have identical terms.
func (x *Polynomial[T]) Equal(y *Polynomial[T]) bool {
	if x.m.Len() != y.m.Len() {
		return false
	}
	for i := range x.m.Len() {
		xw, xc := x.m.At(i)
		yw, yc := y.m.At(i)
		if !xw.Equal(yw) {
			return false
		}
		if !xc.Equal(yc) {
			return false
		}
	}
	return true
}

// Set sets z to a copy of x and returns z.
func (z *Polynomial[T]) Set(x *Polynomial[T]) *Polynomial[T] {
	if z == x {
		return z
	}
	z.field = x.field
	z.m = omap.NewMapFunc[mono.Pattern, T](mono.Grevlex)
	for xw, xc := range x.m.All() {
		z.addTerm(1, Term[T]{Coeff: xc, Vars: xw.Clone()})
	}
	return z
}

// LeadingTerm returns the term with maximal monomial under grevlex.
// LeadingTerm panics on the zero polynomial.
func (x *Polynomial[T]) LeadingTerm() Term[T] {
	w, ok := x.m.Max()
	if !ok {
		panic("zero polynomial has no leading term")
	}
	c, _ := x.m.Get(w)
	return Term[T]{Coeff: c, Vars: w}
}

// Add sets z to x+y and returns z.
func (z *Polynomial[T]) Add(x, y *Polynomial[T]) *Polynomial[T] {
	if y == z {
		x, y = y, x
	}
	if z != x {
		z.field = x.field
		z.m = omap.NewMapFunc[mono.Pattern, T](mono.Grevlex)
		for xw, xc := range x.m.All() {
			z.addTerm(1, Term[T]{Coeff: xc, Vars: xw.Clone()})
		}
	}
	for yw, yc := range y.m.All() {
		z.addTerm(1, Term[T]{Coeff: yc, Vars: yw.Clone()})
	}
	return z
}

// Sub sets z to x-y and returns z.
func (z *Polynomial[T]) Sub(x, y *Polynomial[T]) *Polynomial[T] {
	if y == z {
		tmp := New(y.field)
		tmp.Set(y)
		y = tmp
	}
	if z != x {
		z.field = x.field
		z.m = omap.NewMapFunc[mono.Pattern, T](mono.Grevlex)
		for xw, xc := range x.m.All() {
			z.addTerm(1, Term[T]{Coeff: xc, Vars: xw.Clone()})
		}
	}
	for yw, yc := range y.m.All() {
		z.addTerm(-1, Term[T]{Coeff: yc, Vars: yw.Clone()})
	}
	return z
}

// Mul sets z to x*y and returns z. z must not alias x or y.
func (z *Polynomial[T]) Mul(x, y *Polynomial[T]) *Polynomial[T] {
	if z == x {
		panic("z == x")
	}
	if z == y {
		panic("z == y")
	}
	z.field = x.field
	z.m = omap.NewMapFunc[mono.Pattern, T](mono.Grevlex)
	for xw, xc := range x.m.Backward() {
		for yw, yc := range y.m.Backward() {
			c := z.field.Mul(xc, yc)
			z.addTerm(1, Term[T]{Coeff: c, Vars: mono.Mul(xw, yw)})
		}
	}
	return z
}

// MulScalar sets z to x*n, where n is a field element, and returns z.
func (z *Polynomial[T]) MulScalar(x *Polynomial[T], n T) *Polynomial[T] {
	src := x
	if z == x {
		src = New(x.field)
		src.Set(x)
	}
	z.field = src.field
	z.m = omap.NewMapFunc[mono.Pattern, T](mono.Grevlex)
	for xw, xc := range src.m.All() {
		fresh := z.field.NewZero()
		fresh.Mul(n, xc)
		z.addTerm(1, Term[T]{Coeff: fresh, Vars: xw.Clone()})
	}
	return z
}

func (x *Polynomial[T]) addTerm(sign int, t Term[T]) {
	c, ok := x.m.Get(t.Vars)
	if !ok {
		c = x.field.NewZero()
	}
	if sign < 0 {
		c.Sub(c, t.Coeff)
	} else {
		c.Add(c, t.Coeff)
	}
	if c.Equal(x.field.NewZero()) {
		x.m.Delete(t.Vars)
	} else {
		x.m.Set(t.Vars, c)
	}
}

// String returns the textual rendering of x: a sum of terms in
// descending grevlex order, coefficient 1 omitted when a variable
// factor is present, -1 rendered as a bare minus sign, variables
// joined with no separator, exponent 1 bare and higher as "^n".
// Variables are rendered as "x0", "x1", etc. by index; use
// [Polynomial.StringNames] to render with a name dictionary instead.
func (x *Polynomial[T]) String() string {
	return x.StringNames(nil)
}

// StringNames renders x the same way String does, except each
// variable index is looked up in names (when names is non-nil and long
// enough to cover it) and rendered by that name instead of "x<index>".
func (x *Polynomial[T]) StringNames(names []string) string {
	if x.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := range x.m.Len() {
		w, c := x.m.At(x.m.Len() - 1 - i)
		s := c.String()
		neg := len(s) > 0 && s[0] == '-'
		abs := s
		if neg {
			abs = s[1:]
		}

		if first {
			if neg {
				b.WriteString("-")
			}
		} else if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}

		if abs == "1" && len(w) != 0 {
			// omit the coefficient
		} else {
			b.WriteString(abs)
		}
		writeMonomial(&b, w, names)
		first = false
	}
	return b.String()
}

func writeMonomial(b *strings.Builder, w mono.Pattern, names []string) {
	for _, vp := range w {
		if vp.Var >= 0 && vp.Var < len(names) {
			b.WriteString(names[vp.Var])
		} else {
			fmt.Fprintf(b, "x%d", vp.Var)
		}
		if vp.Exp != 1 {
			fmt.Fprintf(b, "^%d", vp.Exp)
		}
	}
}

// CompoundDivide divides p by the ordered list of divisors, returning
// one quotient per divisor and a remainder such that
// p = sum(quotients[i] * divisors[i]) + remainder, and no monomial of
// the remainder is divisible by the leading monomial of any divisor.
//
// At each step the current dividend's leading term is matched against
// divisors in order; the first whose leading monomial divides it
// absorbs one reduction step and the scan restarts from the first
// divisor. A leading term matched by no divisor moves to the
// remainder.
func CompoundDivide[T field.Field[T]](p *Polynomial[T], divisors []*Polynomial[T]) ([]*Polynomial[T], *Polynomial[T]) {
	f := p.field
	quotients := make([]*Polynomial[T], len(divisors))
	for i := range quotients {
		quotients[i] = New(f)
	}
	if len(divisors) == 0 {
		r := New(f)
		r.Set(p)
		return quotients, r
	}

	dividend := New(f)
	dividend.Set(p)
	rem := New(f)

	for !dividend.IsZero() {
		lt := dividend.LeadingTerm()
		reduced := false
		for i, d := range divisors {
			if d.IsZero() {
				continue
			}
			dlt := d.LeadingTerm()
			qv, ok := mono.Div(lt.Vars, dlt.Vars)
			if !ok {
				continue
			}
			qc := f.Div(lt.Coeff, dlt.Coeff)
			step := New(f, Term[T]{Coeff: qc, Vars: qv})
			quotients[i].Add(quotients[i], step)

			sub := New(f)
			sub.Mul(step, d)
			dividend.Sub(dividend, sub)

			reduced = true
			break
		}
		if !reduced {
			rem.Add(rem, New(f, lt))
			dividend.addTerm(-1, lt)
		}
	}
	return quotients, rem
}

// TryDivide divides p by d and returns (quotient, true) if the
// remainder is zero, otherwise (nil, false).
func TryDivide[T field.Field[T]](p, d *Polynomial[T]) (*Polynomial[T], bool) {
	qs, r := CompoundDivide(p, []*Polynomial[T]{d})
	if !r.IsZero() {
		return nil, false
	}
	return qs[0], true
}

// Derivative returns the derivative of p with respect to variable v.
func Derivative[T field.Field[T]](p *Polynomial[T], v int) *Polynomial[T] {
	f := p.field
	out := New(f)
	for c, w := range p.Terms() {
		idx := -1
		for i, vp := range w {
			if vp.Var == v {
				idx = i
				break
			}
		}
		if idx == -1 {
			continue
		}
		exp := w[idx].Exp
		nc := f.MulScalar(c, int64(exp))

		rest := make(mono.Pattern, 0, len(w))
		for i, vp := range w {
			if i == idx {
				if exp-1 > 0 {
					rest = append(rest, mono.VarPower{Var: v, Exp: exp - 1})
				}
				continue
			}
			rest = append(rest, vp)
		}
		out.addTerm(1, Term[T]{Coeff: nc, Vars: rest})
	}
	return out
}

// Coefs extracts the coefficients of p as a univariate polynomial in
// variable v: the returned slice has one entry per power of v, in
// descending order (index 0 is the coefficient of v^deg, the last
// entry is the v-free remainder), each collecting the monomials in
// the remaining variables with v's factor stripped.
func Coefs[T field.Field[T]](p *Polynomial[T], v int) []*Polynomial[T] {
	f := p.field
	deg := 0
	for _, w := range p.terms() {
		for _, vp := range w {
			if vp.Var == v && int(vp.Exp) > deg {
				deg = int(vp.Exp)
			}
		}
	}
	out := make([]*Polynomial[T], deg+1)
	for i := range out {
		out[i] = New(f)
	}
	for c, w := range p.Terms() {
		exp := 0
		rest := make(mono.Pattern, 0, len(w))
		for _, vp := range w {
			if vp.Var == v {
				exp = int(vp.Exp)
				continue
			}
			rest = append(rest, vp)
		}
		out[deg-exp].addTerm(1, Term[T]{Coeff: c, Vars: rest})
	}
	return out
}

func (p *Polynomial[T]) terms() []mono.Pattern {
	ws := make([]mono.Pattern, 0, p.Len())
	for _, w := range p.m.All() {
		ws = append(ws, w)
	}
	return ws
}

// Norm canonicalizes a rational-coefficient polynomial: it clears
// denominators, divides out the integer content (gcd of numerators),
// and flips sign so the leading coefficient is positive.
func Norm(p *Polynomial[*field.Rat]) *Polynomial[*field.Rat] {
	f := p.field
	out := New(f)
	if p.IsZero() {
		return out
	}

	var denLCM int64 = 1
	for c, _ := range p.Terms() {
		denLCM = lcm64(denLCM, c.Den())
	}

	type scaled struct {
		num int64
		w   mono.Pattern
	}
	var terms []scaled
	var contentGCD int64
	for c, w := range p.Terms() {
		n := c.Num() * (denLCM / c.Den())
		terms = append(terms, scaled{num: n, w: w})
		contentGCD = gcd64(contentGCD, n)
	}
	if contentGCD == 0 {
		contentGCD = 1
	}
	if terms[0].num < 0 {
		contentGCD = -abs64(contentGCD)
	} else {
		contentGCD = abs64(contentGCD)
	}

	for _, t := range terms {
		out.addTerm(1, Term[*field.Rat]{Coeff: field.NewRat(t.num/contentGCD, 1), Vars: t.w})
	}
	return out
}

func gcd64(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd64(a, b) * b
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
