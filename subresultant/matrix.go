// Package subresultant computes subresultant chains of two univariate
// (in a chosen variable) polynomials via generalized Sylvester matrices
// and Bareiss fraction-free elimination, for use by a CAD projection
// pipeline.
package subresultant

import "sort"

// A Matrix is a sparse row-major matrix: each row holds only its
// nonzero (column, value) pairs, sorted by column, found by binary
// search. It is the representation used for Sylvester matrices, which
// are mostly zero off their shifted coefficient bands.
type Matrix[T any] struct {
	NRows, NCols int
	rows         []sparseRow[T]
	isZero       func(T) bool
}

type sparseRow[T any] struct {
	row    int
	values []colVal[T]
}

type colVal[T any] struct {
	col int
	val T
}

// NewMatrix returns an empty nRows x nCols matrix. isZero reports
// whether a value is the additive identity, controlling which entries
// are worth storing.
func NewMatrix[T any](nRows, nCols int, isZero func(T) bool) *Matrix[T] {
	return &Matrix[T]{NRows: nRows, NCols: nCols, isZero: isZero}
}

// FromDense builds a sparse Matrix from a fully populated dense slice.
func FromDense[T any](v [][]T, isZero func(T) bool) *Matrix[T] {
	m := NewMatrix[T](len(v), 0, isZero)
	if len(v) > 0 {
		m.NCols = len(v[0])
	}
	for i, row := range v {
		for j, item := range row {
			if !isZero(item) {
				m.Set(i, j, item)
			}
		}
	}
	return m
}

// Set records value at (row, col), overwriting any prior entry there.
// A value isZero reports as zero removes the entry instead.
func (m *Matrix[T]) Set(row, col int, value T) {
	ri := sort.Search(len(m.rows), func(i int) bool { return m.rows[i].row >= row })
	if m.isZero != nil && m.isZero(value) {
		if ri < len(m.rows) && m.rows[ri].row == row {
			vals := m.rows[ri].values
			ci := sort.Search(len(vals), func(i int) bool { return vals[i].col >= col })
			if ci < len(vals) && vals[ci].col == col {
				m.rows[ri].values = append(vals[:ci], vals[ci+1:]...)
			}
		}
		return
	}
	if ri == len(m.rows) || m.rows[ri].row != row {
		r := sparseRow[T]{row: row}
		m.rows = append(m.rows, sparseRow[T]{})
		copy(m.rows[ri+1:], m.rows[ri:])
		m.rows[ri] = r
	}
	row_ := &m.rows[ri]
	ci := sort.Search(len(row_.values), func(i int) bool { return row_.values[i].col >= col })
	if ci < len(row_.values) && row_.values[ci].col == col {
		row_.values[ci].val = value
		return
	}
	row_.values = append(row_.values, colVal[T]{})
	copy(row_.values[ci+1:], row_.values[ci:])
	row_.values[ci] = colVal[T]{col: col, val: value}
}

// Get returns the value at (row, col), or the zero value of T if none
// was set.
func (m *Matrix[T]) Get(row, col int) T {
	var zero T
	ri := sort.Search(len(m.rows), func(i int) bool { return m.rows[i].row >= row })
	if ri == len(m.rows) || m.rows[ri].row != row {
		return zero
	}
	values := m.rows[ri].values
	ci := sort.Search(len(values), func(i int) bool { return values[i].col >= col })
	if ci == len(values) || values[ci].col != col {
		return zero
	}
	return values[ci].val
}

// Dense returns m as a fully populated row-major slice, filling unset
// entries with zero.
func (m *Matrix[T]) Dense(zero T) [][]T {
	out := make([][]T, m.NRows)
	for i := range out {
		out[i] = make([]T, m.NCols)
		for j := range out[i] {
			out[i][j] = zero
		}
	}
	for _, r := range m.rows {
		for _, cv := range r.values {
			out[r.row][cv.col] = cv.val
		}
	}
	return out
}
