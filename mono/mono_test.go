package mono

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func printExps(p Pattern, varDict []string) string {
	var b strings.Builder
	for _, vp := range p {
		if vp.Exp == 1 {
			b.WriteString(varDict[vp.Var])
		} else {
			fmt.Fprintf(&b, "%s^%d", varDict[vp.Var], vp.Exp)
		}
	}
	return b.String()
}

func TestGrevlexOrdering(t *testing.T) {
	varDict := []string{"x", "y", "z"}

	var terms []Pattern
	for i := uint64(0); i < 4; i++ {
		for j := uint64(0); j < 4; j++ {
			for k := uint64(0); k < 4; k++ {
				var p Pattern
				if i > 0 {
					p = append(p, VarPower{Var: 0, Exp: i})
				}
				if j > 0 {
					p = append(p, VarPower{Var: 1, Exp: j})
				}
				if k > 0 {
					p = append(p, VarPower{Var: 2, Exp: k})
				}
				terms = append(terms, p)
			}
		}
	}

	expected := strings.Split(strings.TrimSpace(`
x^3y^3z^3
x^3y^3z^2
x^3y^2z^3
x^2y^3z^3
x^3y^3z
x^3y^2z^2
x^3yz^3
x^2y^3z^2
x^2y^2z^3
xy^3z^3
x^3y^3
x^3y^2z
x^3yz^2
x^3z^3
x^2y^3z
x^2y^2z^2
x^2yz^3
xy^3z^2
xy^2z^3
y^3z^3
x^3y^2
x^3yz
x^3z^2
x^2y^3
x^2y^2z
x^2yz^2
x^2z^3
xy^3z
xy^2z^2
xyz^3
y^3z^2
y^2z^3
x^3y
x^3z
x^2y^2
x^2yz
x^2z^2
xy^3
xy^2z
xyz^2
xz^3
y^3z
y^2z^2
yz^3
x^3
x^2y
x^2z
xy^2
xyz
xz^2
y^3
y^2z
yz^2
z^3
x^2
xy
xz
y^2
yz
z^2
x
y
z
`), "\n")
	// The constant monomial (degree 0) sorts last and renders as "".
	expected = append(expected, "")

	sort.Slice(terms, func(i, j int) bool {
		return Grevlex(terms[i], terms[j]) > 0
	})

	for i, term := range terms {
		got := printExps(term, varDict)
		if got != expected[i] {
			t.Fatalf("term %d: got %q, want %q", i, got, expected[i])
		}
	}
}

func randomMono(rng *rand.Rand, minCoef, maxCoef int) (coef int64, p Pattern) {
	coef = int64(minCoef + rng.Intn(maxCoef-minCoef))

	var vars Pattern
	if wpow := rng.Intn(3); wpow > 0 {
		vars = append(vars, VarPower{Var: 0, Exp: uint64(wpow)})
	}
	if xpow := rng.Intn(1); xpow > 0 {
		vars = append(vars, VarPower{Var: 1, Exp: uint64(xpow)})
	}
	if ypow := rng.Intn(1); ypow > 0 {
		vars = append(vars, VarPower{Var: 2, Exp: uint64(ypow)})
	}
	if zpow := rng.Intn(2); zpow > 0 {
		vars = append(vars, VarPower{Var: 3, Exp: uint64(zpow)})
	}
	if coef == 0 {
		vars = nil
	}
	return coef, vars
}

func TestDivMulFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		_, a := randomMono(rng, 6, 12)
		_, b := randomMono(rng, 0, 6)
		c, ok := Div(a, b)
		if !ok {
			continue
		}
		if got := Mul(c, b); !got.Equal(a) {
			t.Fatalf("round %d: div/mul mismatch: a=%v b=%v c=%v got=%v", i, a, b, c, got)
		}
	}
}
