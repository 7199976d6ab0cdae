// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/trimat/vector"

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
)

// Equal reports whether m and o have the same order and equal rows.
// Two nil matrices are equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool {
	return !m.Equal(o)
}

// Add returns m + o cell-wise.
// Errors: ErrNilMatrix, ErrSizeMismatch.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return m.combine(ctxAdd, o, (*vector.Vector[T]).Add)
}

// Sub returns m - o cell-wise.
// Errors: ErrNilMatrix, ErrSizeMismatch.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return m.combine(ctxSub, o, (*vector.Vector[T]).Sub)
}

// combine applies a row operation pairwise. The result is built in full
// before being returned, so no partially computed matrix escapes.
func (m *Matrix[T]) combine(
	method string,
	o *Matrix[T],
	op func(a, b *vector.Vector[T]) (*vector.Vector[T], error),
) (*Matrix[T], error) {
	if m == nil || o == nil {
		return nil, matrixErrorf(method, ErrNilMatrix)
	}
	if len(m.rows) != len(o.rows) {
		return nil, matrixErrorf(method, ErrSizeMismatch)
	}
	rows := make([]*vector.Vector[T], len(m.rows))
	for i := range m.rows {
		r, err := op(m.rows[i], o.rows[i])
		if err != nil {
			return nil, matrixErrorf(method, err)
		}
		rows[i] = r
	}

	return &Matrix[T]{rows: rows}, nil
}
