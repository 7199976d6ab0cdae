// SPDX-License-Identifier: MIT

// Package matrix - construction, row/cell access and copy semantics.
//
// Complexity quicksheet:
//   - New/Clone/Assign: O(n²/2); Row/At/Set/Ref: O(1).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/trimat/vector"
)

// MaxSize is the largest order a Matrix may be created with.
const MaxSize = 10000

const (
	ctxNew    = "New"
	ctxRow    = "Row"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRef    = "Ref"
	ctxAssign = "Assign"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an upper-triangular square matrix of order len(rows).
// rows[i] is owned exclusively and holds columns [i, len(rows)).
type Matrix[T vector.Number] struct {
	rows []*vector.Vector[T]
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a zero-valued upper-triangular matrix of the given order.
//
// Implementation:
//   - Stage 1: validate 0 <= order <= MaxSize.
//   - Stage 2: allocate row i as a Vector of length order-i starting at column i.
//
// Errors: ErrInvalidSize.
// Complexity: O(order²/2) time and memory.
func New[T vector.Number](order int) (*Matrix[T], error) {
	if order < 0 || order > MaxSize {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("order %d: %w", order, ErrInvalidSize))
	}
	rows, err := newRows[T](order)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Matrix[T]{rows: rows}, nil
}

// newRows allocates the triangular row set for the given order.
func newRows[T vector.Number](order int) ([]*vector.Vector[T], error) {
	rows := make([]*vector.Vector[T], order)
	for i := range rows {
		r, err := vector.New[T](order-i, vector.WithStart(i))
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return rows, nil
}

// Size returns the order of the matrix. A nil Matrix has order 0.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// row returns the owned row Vector or ErrOutOfRange.
func (m *Matrix[T]) row(i int) (*vector.Vector[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= len(m.rows) {
		return nil, ErrOutOfRange
	}

	return m.rows[i], nil
}

// Row returns a view over row i, whose valid columns are [i, Size()).
// Errors: ErrOutOfRange when i < 0 or i >= Size().
func (m *Matrix[T]) Row(i int) (Row[T], error) {
	r, err := m.row(i)
	if err != nil {
		return Row[T]{}, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, err)
	}

	return Row[T]{v: r}, nil
}

// At returns cell (i, j). Valid cells satisfy 0 <= i <= j < Size().
func (m *Matrix[T]) At(i, j int) (T, error) {
	var zero T
	r, err := m.row(i)
	if err != nil {
		return zero, cellErrorf(ctxAt, i, j, err)
	}
	x, err := r.At(j)
	if err != nil {
		return zero, cellErrorf(ctxAt, i, j, err)
	}

	return x, nil
}

// Set stores x at cell (i, j). Valid cells satisfy 0 <= i <= j < Size().
func (m *Matrix[T]) Set(i, j int, x T) error {
	r, err := m.row(i)
	if err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}
	if err = r.Set(j, x); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}

	return nil
}

// Ref returns a pointer to cell (i, j), valid until the next Assign on m.
func (m *Matrix[T]) Ref(i, j int) (*T, error) {
	r, err := m.row(i)
	if err != nil {
		return nil, cellErrorf(ctxRef, i, j, err)
	}
	p, err := r.Ref(j)
	if err != nil {
		return nil, cellErrorf(ctxRef, i, j, err)
	}

	return p, nil
}

// Clone returns a deep copy: every row is cloned, no buffer is shared.
// Cloning a nil Matrix yields nil.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}

	return &Matrix[T]{rows: cloneRows(m.rows)}
}

func cloneRows[T vector.Number](src []*vector.Vector[T]) []*vector.Vector[T] {
	rows := make([]*vector.Vector[T], len(src))
	for i, r := range src {
		rows[i] = r.Clone()
	}

	return rows
}

// Assign replaces m's order and contents with a deep copy of src.
// m.Assign(m) is a no-op. On error m is left unchanged.
// Errors: ErrNilMatrix.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if m == nil || src == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.rows = cloneRows(src.rows)

	return nil
}

// String renders one bracketed line per row; cells below the diagonal are
// printed as the zero value.
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}
	var (
		sb   strings.Builder
		zero T
		n    = len(m.rows)
	)
	for i, r := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			if j < i {
				fmt.Fprint(&sb, zero)
				continue
			}
			x, _ := r.At(j) // j in [i, n) by construction
			fmt.Fprint(&sb, x)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
