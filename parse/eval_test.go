package parse

import (
	"testing"

	"github.com/fumin/srspoly/field"
	"github.com/fumin/srspoly/mono"
	"github.com/fumin/srspoly/poly"
)

func rat(n, d int64) *field.Rat { return field.NewRat(n, d) }

func term(c *field.Rat, vars mono.Pattern) poly.Term[*field.Rat] {
	return poly.Term[*field.Rat]{Coeff: c, Vars: vars}
}

func v(i int, e uint64) mono.Pattern { return mono.Pattern{{Var: i, Exp: e}} }

func TestPolynomialBasic(t *testing.T) {
	d := NewVarDict()
	p, err := Polynomial(d, "x + y^2 + z")
	if err != nil {
		t.Fatalf("Polynomial: %+v", err)
	}

	f := rat(0, 1)
	want := poly.New(f, term(rat(1, 1), v(0, 1)), term(rat(1, 1), v(1, 2)), term(rat(1, 1), v(2, 1)))
	if !p.Equal(want) {
		t.Fatalf("Polynomial(%q) = %v, want %v", "x + y^2 + z", p, want)
	}
	if got := d.Names(); len(got) != 3 || got[0] != "x" || got[1] != "y" || got[2] != "z" {
		t.Fatalf("VarDict.Names() = %v, want [x y z]", got)
	}
}

func TestPolynomialSharesVarDict(t *testing.T) {
	d := NewVarDict()
	if _, err := Polynomial(d, "x + y"); err != nil {
		t.Fatalf("Polynomial: %+v", err)
	}
	p, err := Polynomial(d, "z + x")
	if err != nil {
		t.Fatalf("Polynomial: %+v", err)
	}

	f := rat(0, 1)
	// x was assigned index 0 by the first call; z is new, so it gets
	// index 2 (y took index 1).
	want := poly.New(f, term(rat(1, 1), v(2, 1)), term(rat(1, 1), v(0, 1)))
	if !p.Equal(want) {
		t.Fatalf("Polynomial(%q) = %v, want %v", "z + x", p, want)
	}
}

func TestRationalLiteral(t *testing.T) {
	d := NewVarDict()
	p, err := Polynomial(d, "3/4")
	if err != nil {
		t.Fatalf("Polynomial: %+v", err)
	}
	want := poly.New(rat(0, 1), term(rat(3, 4), nil))
	if !p.Equal(want) {
		t.Fatalf("Polynomial(%q) = %v, want %v", "3/4", p, want)
	}
}

// TestSystemBuchberger reproduces the three-variable Grobner basis
// example parsed from source text: {x + y^2 + z, x - y + 3*z + 5,
// x - 2*y + 3} reduces to {9z^2 + 7z - 3, x + 6z + 7, y + 3z + 2}.
func TestSystemBuchberger(t *testing.T) {
	sys, err := System([]string{"x + y^2 + z", "x - y + 3*z + 5", "x - 2*y + 3"})
	if err != nil {
		t.Fatalf("System: %+v", err)
	}

	gb := sys.Buchberger()
	if len(gb.Members) != 3 {
		t.Fatalf("len(gb.Members) = %d, want 3: %v", len(gb.Members), gb)
	}

	f := rat(0, 1)
	want := []*poly.Polynomial[*field.Rat]{
		poly.New(f, term(rat(9, 1), v(2, 2)), term(rat(7, 1), v(2, 1)), term(rat(-3, 1), nil)),
		poly.New(f, term(rat(1, 1), v(0, 1)), term(rat(6, 1), v(2, 1)), term(rat(7, 1), nil)),
		poly.New(f, term(rat(1, 1), v(1, 1)), term(rat(3, 1), v(2, 1)), term(rat(2, 1), nil)),
	}
	for _, w := range want {
		found := false
		for _, m := range gb.Members {
			if m.Equal(w) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Buchberger basis %v missing expected member %v", gb, w)
		}
	}
}

func TestPolynomialNegativeExponentErrors(t *testing.T) {
	d := NewVarDict()
	if _, err := Polynomial(d, "x^-1"); err == nil {
		t.Fatal("Polynomial(x^-1) succeeded, want error")
	}
}
