// SPDX-License-Identifier: MIT

// Package matrix provides Matrix, an upper-triangular square matrix with
// value semantics, built from vector.Vector rows.
//
// Storage layout for order n:
//
//	row 0: columns 0..n-1   (n elements, start index 0)
//	row 1: columns 1..n-1   (n-1 elements, start index 1)
//	...
//	row i: columns i..n-1   (n-i elements, start index i)
//
// Only cells on or above the main diagonal are stored. A cell access (i, j)
// is validated in two stages: the row bound 0 <= i < n first, then the
// column bound i <= j < n against that row's window. Either failure is
// reported as ErrOutOfRange; cells below the diagonal are not addressable.
//
// Matrix composes its rows instead of exposing them: Row returns a Row view
// that can read and write cells but cannot resize or replace the row.
//
// Operations:
//
//   - New, Clone, Assign: allocate / deep copy / deep replace (self-assign is a no-op).
//   - Equal, NotEqual: same order and row-by-row equal values.
//   - Add, Sub: element-wise, ErrSizeMismatch on differing orders.
//   - Gonum: read-only mat.Matrix adapter for Matrix[float64].
//
// A Matrix is not safe for concurrent mutation.
package matrix
