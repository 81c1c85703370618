package system

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

func containsEqual(members []*poly.Polynomial[*field.Rat], want *poly.Polynomial[*field.Rat]) bool {
	for _, m := range members {
		if m.Equal(want) {
			return true
		}
	}
	return false
}

// TestBuchberger reproduces the three-variable Grobner basis example:
// the ideal generated by x + y^2 + z, x - y + 3z + 5, and x - 2y + 3
// reduces to {9z^2 + 7z - 3, x + 6z + 7, y + 3z + 2}.
func TestBuchberger(t *testing.T) {
	f := rat(0, 1)

	p1 := poly.New(f, term(rat(1, 1), v(0, 1)), term(rat(1, 1), v(1, 2)), term(rat(1, 1), v(2, 1)))
	p2 := poly.New(f, term(rat(1, 1), v(0, 1)), term(rat(-1, 1), v(1, 1)), term(rat(3, 1), v(2, 1)), term(rat(5, 1), nil))
	p3 := poly.New(f, term(rat(1, 1), v(0, 1)), term(rat(-2, 1), v(1, 1)), term(rat(3, 1), nil))

	sys := New([]string{"x", "y", "z"})
	sys.Members = []*poly.Polynomial[*field.Rat]{p1, p2, p3}

	gb := sys.Buchberger()
	if len(gb.Members) != 3 {
		t.Fatalf("len(gb.Members) = %d, want 3: %v", len(gb.Members), gb)
	}

	want := []*poly.Polynomial[*field.Rat]{
		poly.New(f, term(rat(9, 1), v(2, 2)), term(rat(7, 1), v(2, 1)), term(rat(-3, 1), nil)),
		poly.New(f, term(rat(1, 1), v(0, 1)), term(rat(6, 1), v(2, 1)), term(rat(7, 1), nil)),
		poly.New(f, term(rat(1, 1), v(1, 1)), term(rat(3, 1), v(2, 1)), term(rat(2, 1), nil)),
	}
	for _, w := range want {
		if !containsEqual(gb.Members, w) {
			t.Fatalf("Buchberger basis %v missing expected member %v", gb, w)
		}
	}
}

// TestBuchbergerAlreadyReduced checks that a system that is already a
// trivial Grobner basis (a single linear generator per variable) comes
// back unchanged up to normalization.
func TestBuchbergerAlreadyReduced(t *testing.T) {
	f := rat(0, 1)
	p := poly.New(f, term(rat(1, 1), v(0, 1)), term(rat(-1, 1), nil))

	sys := New([]string{"x"})
	sys.Members = []*poly.Polynomial[*field.Rat]{p}
	gb := sys.Buchberger()

	if len(gb.Members) != 1 {
		t.Fatalf("len(gb.Members) = %d, want 1", len(gb.Members))
	}
	if !gb.Members[0].Equal(p) {
		t.Fatalf("gb.Members[0] = %v, want %v", gb.Members[0], p)
	}
}
