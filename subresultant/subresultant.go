package subresultant

import (
	"github.com/fumin/srspoly/field"
	"github.com/fumin/srspoly/poly"
)

type rat = *field.Rat
type p = *poly.Polynomial[rat]

func isZeroPoly(x p) bool { return x.IsZero() }

func mulPoly(x, y p) p {
	z := poly.New(field.NewRat(0, 1))
	z.Mul(x, y)
	return z
}

func subPoly(x, y p) p {
	z := poly.New(field.NewRat(0, 1))
	z.Sub(x, y)
	return z
}

func addPoly(x, y p) p {
	z := poly.New(field.NewRat(0, 1))
	z.Add(x, y)
	return z
}

// Determinant computes the determinant of an n x n matrix of
// polynomials via Bareiss's fraction-free elimination. Sizes 0-3 use
// closed forms; larger sizes use the iterative elimination where each
// division is an exact polynomial try-divide. Determinant panics if
// that division is ever inexact, since over an integral domain it is
// an invariant, not a possibility.
func Determinant(mat [][]p, size int) p {
	switch size {
	case 0:
		return poly.Const(field.NewRat(0, 1), 1)
	case 1:
		return mat[0][0]
	case 2:
		return subPoly(mulPoly(mat[0][0], mat[1][1]), mulPoly(mat[0][1], mat[1][0]))
	case 3:
		return subPoly(
			subPoly(
				addPoly(
					addPoly(
						mulPoly(mulPoly(mat[0][0], mat[1][1]), mat[2][2]),
						mulPoly(mulPoly(mat[0][1], mat[1][2]), mat[2][0]),
					),
					mulPoly(mulPoly(mat[0][2], mat[1][0]), mat[2][1]),
				),
				mulPoly(mulPoly(mat[0][2], mat[1][1]), mat[2][0]),
			),
			addPoly(
				mulPoly(mulPoly(mat[0][0], mat[1][2]), mat[2][1]),
				mulPoly(mulPoly(mat[0][1], mat[1][0]), mat[2][2]),
			),
		)
	default:
		m := make([][]p, size)
		for i := range mat {
			m[i] = append([]p(nil), mat[i]...)
		}
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				if i == j {
					continue
				}
				for k := i + 1; k < size; k++ {
					v := subPoly(mulPoly(m[i][i], m[j][k]), mulPoly(m[j][i], m[i][k]))
					if i != 0 {
						q, ok := poly.TryDivide(v, m[i-1][i-1])
						if !ok {
							panic("bareiss elimination: inexact division, invariant breach")
						}
						v = q
					}
					m[j][k] = v
				}
			}
		}
		return m[size-1][size-1]
	}
}

// SylK builds the k'th order generalized Sylvester matrix of two
// coefficient rows aCoefs, bCoefs (descending-degree dense coefficient
// vectors, as produced by [poly.Coefs]), with
// deg(b) <= deg(a). The matrix is assembled sparsely, since each row
// only ever holds a shifted copy of aCoefs or bCoefs, then densified
// for the Bareiss elimination Determinant performs on it.
func SylK(aCoefs, bCoefs []p, k int) [][]p {
	aDeg := len(aCoefs) - 1
	bDeg := len(bCoefs) - 1
	width := aDeg + bDeg - k
	zero := poly.Const(field.NewRat(0, 1), 0)
	height := (bDeg - k) + (aDeg - k)

	m := NewMatrix[p](height, width, isZeroPoly)
	row := 0
	for i := 0; i < bDeg-k; i++ {
		for j := i; j <= i+aDeg && j < width; j++ {
			m.Set(row, j, aCoefs[j-i])
		}
		row++
	}
	for i := 0; i < aDeg-k; i++ {
		for j := i; j <= i+bDeg && j < width; j++ {
			m.Set(row, j, bCoefs[j-i])
		}
		row++
	}
	return m.Dense(zero)
}

// Subresultants computes the subresultant chain of a and b, viewed as
// univariate in variable v, with deg_v(b) <= deg_v(a). The result is
// SR_0, SR_1, ..., each represented as a dense descending-degree
// coefficient vector; srs[0] and srs[1] are a and b's own coefficient
// vectors.
func Subresultants(a, b p, v int) [][]p {
	aCoefs := poly.Coefs(a, v)
	bCoefs := poly.Coefs(b, v)
	srs := [][]p{aCoefs, bCoefs}

	m := len(bCoefs) - 1
	for k := m - 1; k >= 0; k-- {
		syl := SylK(srs[0], srs[1], k)
		sylM := len(syl)
		sylN := len(syl[0])

		var coefs []p
		for c := 0; c < sylN+1-sylM; c++ {
			minor := make([][]p, sylM)
			for r := range syl {
				lastCol := len(syl[r]) - 1
				minorRow := make([]p, 0, sylM)
				minorRow = append(minorRow, syl[r][:sylM-1]...)
				minorRow = append(minorRow, syl[r][lastCol])
				syl[r] = syl[r][:lastCol]
				minor[r] = minorRow
			}
			coefs = append([]p{Determinant(minor, sylM)}, coefs...)
		}
		srs = append(srs, coefs)
	}
	return srs
}
