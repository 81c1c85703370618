package poly

import (
	"math/rand"
	"testing"

	"github.com/fumin/srspoly/field"
	"github.com/fumin/srspoly/mono"
)

func rat(n, d int64) *field.Rat { return field.NewRat(n, d) }

func TestArith(t *testing.T) {
	f := rat(0, 1)

	// 3a^2 + 4b + 2, built up term by term and summed out of order.
	a := New(f)
	a.Mul(Var(f, 0, 2), Const(f, 3))
	b := New(f)
	b.Mul(Var(f, 1, 1), Const(f, 4))
	c := Const(f, 2)

	sum := New(f)
	sum.Add(c, b)
	sum.Add(sum, a)

	if got := sum.String(); got != "3x0^2 + 4x1 + 2" {
		t.Fatalf("got %q", got)
	}

	// (a+1)(a+1) == a^2 + 2a + 1
	aPlus1 := New(f)
	aPlus1.Add(Var(f, 0, 1), Const(f, 1))
	lhs := New(f)
	lhs.Mul(aPlus1, aPlus1)

	rhs := New(f)
	two := New(f)
	two.MulScalar(Var(f, 0, 1), rat(2, 1))
	rhs.Add(Var(f, 0, 2), two)
	rhs.Add(rhs, Const(f, 1))

	if !lhs.Equal(rhs) {
		t.Fatalf("(a+1)^2 = %v, want %v", lhs, rhs)
	}
}

func createRandomPoly(rng *rand.Rand, f *field.Rat, termMax int) *Polynomial[*field.Rat] {
	p := Const(f, 0)
	n := rng.Intn(termMax)
	for i := 0; i < n; i++ {
		coef := int64(rng.Intn(12) - 6)
		xpow := uint64(rng.Intn(3))
		ypow := uint64(rng.Intn(1))
		zpow := uint64(rng.Intn(2))

		t1 := New(f)
		t1.Mul(Const(f, coef), Var(f, 0, xpow))
		t2 := New(f)
		t2.Mul(t1, Var(f, 1, ypow))
		term := New(f)
		term.Mul(t2, Var(f, 2, zpow))

		p.Add(p, term)
	}
	return p
}

func TestCompoundDivideFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := rat(0, 1)

	for i := 0; i < 1000; i++ {
		dividend := createRandomPoly(rng, f, 2)
		nDivs := rng.Intn(4)
		divisors := make([]*Polynomial[*field.Rat], nDivs)
		for j := range divisors {
			divisors[j] = createRandomPoly(rng, f, 1)
		}

		quotients, rem := CompoundDivide(dividend, divisors)

		calc := Const(f, 0)
		for j, q := range quotients {
			term := New(f)
			term.Mul(q, divisors[j])
			calc.Add(calc, term)
		}
		calc.Add(calc, rem)

		if !calc.Equal(dividend) {
			t.Fatalf("round %d: reconstructed dividend %v, want %v (divisors %v, quotients %v, rem %v)", i, calc, dividend, divisors, quotients, rem)
		}
	}
}

func TestDerivative(t *testing.T) {
	f := rat(0, 1)
	// p = x^4 + 3x^2 + 5x^2z^3 + 4xy + z + 2
	p := New(f,
		Term[*field.Rat]{Coeff: rat(1, 1), Vars: mono.Pattern{{Var: 0, Exp: 4}}},
		Term[*field.Rat]{Coeff: rat(3, 1), Vars: mono.Pattern{{Var: 0, Exp: 2}}},
		Term[*field.Rat]{Coeff: rat(5, 1), Vars: mono.Pattern{{Var: 0, Exp: 2}, {Var: 2, Exp: 3}}},
		Term[*field.Rat]{Coeff: rat(4, 1), Vars: mono.Pattern{{Var: 0, Exp: 1}, {Var: 1, Exp: 1}}},
		Term[*field.Rat]{Coeff: rat(1, 1), Vars: mono.Pattern{{Var: 2, Exp: 1}}},
		Term[*field.Rat]{Coeff: rat(2, 1), Vars: nil},
	)

	// d/dx = 4x^3 + 6x + 10xz^3 + 4y
	want := New(f,
		Term[*field.Rat]{Coeff: rat(4, 1), Vars: mono.Pattern{{Var: 0, Exp: 3}}},
		Term[*field.Rat]{Coeff: rat(6, 1), Vars: mono.Pattern{{Var: 0, Exp: 1}}},
		Term[*field.Rat]{Coeff: rat(10, 1), Vars: mono.Pattern{{Var: 0, Exp: 1}, {Var: 2, Exp: 3}}},
		Term[*field.Rat]{Coeff: rat(4, 1), Vars: mono.Pattern{{Var: 1, Exp: 1}}},
	)

	got := Derivative(p, 0)
	if !got.Equal(want) {
		t.Fatalf("Derivative(p, x) = %v, want %v", got, want)
	}
}

func TestCoefs(t *testing.T) {
	f := rat(0, 1)
	// p = x^4 + 3x^2 + 5x^2z^3 + 4xy + z + 2
	p := New(f,
		Term[*field.Rat]{Coeff: rat(1, 1), Vars: mono.Pattern{{Var: 0, Exp: 4}}},
		Term[*field.Rat]{Coeff: rat(3, 1), Vars: mono.Pattern{{Var: 0, Exp: 2}}},
		Term[*field.Rat]{Coeff: rat(5, 1), Vars: mono.Pattern{{Var: 0, Exp: 2}, {Var: 2, Exp: 3}}},
		Term[*field.Rat]{Coeff: rat(4, 1), Vars: mono.Pattern{{Var: 0, Exp: 1}, {Var: 1, Exp: 1}}},
		Term[*field.Rat]{Coeff: rat(1, 1), Vars: mono.Pattern{{Var: 2, Exp: 1}}},
		Term[*field.Rat]{Coeff: rat(2, 1), Vars: nil},
	)

	// coefs(p, x) = [1, 0, 5z^3+3, 4y, z+2], highest power of x first.
	coefs := Coefs(p, 0)
	if len(coefs) != 5 {
		t.Fatalf("len(coefs) = %d, want 5", len(coefs))
	}

	want := []*Polynomial[*field.Rat]{
		Const(f, 1),
		Const(f, 0),
		New(f,
			Term[*field.Rat]{Coeff: rat(5, 1), Vars: mono.Pattern{{Var: 2, Exp: 3}}},
			Term[*field.Rat]{Coeff: rat(3, 1), Vars: nil},
		),
		New(f, Term[*field.Rat]{Coeff: rat(4, 1), Vars: mono.Pattern{{Var: 1, Exp: 1}}}),
		New(f,
			Term[*field.Rat]{Coeff: rat(1, 1), Vars: mono.Pattern{{Var: 2, Exp: 1}}},
			Term[*field.Rat]{Coeff: rat(2, 1), Vars: nil},
		),
	}
	for i := range want {
		if !coefs[i].Equal(want[i]) {
			t.Fatalf("coefs[%d] = %v, want %v", i, coefs[i], want[i])
		}
	}
}

func TestNorm(t *testing.T) {
	f := rat(0, 1)
	p := New(f,
		Term[*field.Rat]{Coeff: rat(-1, 2), Vars: mono.Pattern{{Var: 0, Exp: 1}}},
		Term[*field.Rat]{Coeff: rat(-1, 3), Vars: nil},
	)
	got := Norm(p)
	want := New(f,
		Term[*field.Rat]{Coeff: rat(3, 1), Vars: mono.Pattern{{Var: 0, Exp: 1}}},
		Term[*field.Rat]{Coeff: rat(2, 1), Vars: nil},
	)
	if !got.Equal(want) {
		t.Fatalf("Norm(-x/2 - 1/3) = %v, want %v", got, want)
	}
}
