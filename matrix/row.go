// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/trimat/vector"

// Row is a view over one row of a Matrix. Writes go straight to the matrix.
// A Row exposes cell access only; the row's length and start column are
// fixed by the owning matrix.
//
// The zero Row (returned alongside an error) has size 0; every access on it
// fails with vector.ErrNilVector.
type Row[T vector.Number] struct {
	v *vector.Vector[T]
}

// Size returns the number of stored cells in the row (order - row index).
func (r Row[T]) Size() int { return r.v.Size() }

// StartIndex returns the first valid column, equal to the row index.
func (r Row[T]) StartIndex() int { return r.v.StartIndex() }

// At returns the cell at column j; ErrOutOfRange outside [StartIndex(), order).
func (r Row[T]) At(j int) (T, error) { return r.v.At(j) }

// Set stores x at column j; ErrOutOfRange outside [StartIndex(), order).
func (r Row[T]) Set(j int, x T) error { return r.v.Set(j, x) }

// Ref returns a pointer to the cell at column j.
func (r Row[T]) Ref(j int) (*T, error) { return r.v.Ref(j) }

// Values returns a copy of the stored cells, from the diagonal rightwards.
func (r Row[T]) Values() []T { return r.v.Values() }

// Equal reports whether both rows hold the same number of equal cells.
func (r Row[T]) Equal(o Row[T]) bool { return r.v.Equal(o.v) }

// Vector returns an independent copy of the row as a vector.Vector.
func (r Row[T]) Vector() *vector.Vector[T] { return r.v.Clone() }
