// SPDX-License-Identifier: MIT

// Package vector provides Vector, a bounds-checked, fixed-capacity sequence of
// numeric values addressed through a configurable start index.
//
// A Vector of size n created with start index s accepts external indices in
// [s, s+n). Index s maps to the first stored element. The offset lets one
// container type serve both as a plain vector (s == 0) and as a row of an
// upper-triangular matrix, where row i only stores columns i..n-1
// (see package matrix).
//
// Value semantics:
//
//   - Clone and Assign always materialize an independent buffer.
//   - Assign of a vector onto itself is a no-op.
//   - Equal compares size and elements by logical position; the start index
//     is not part of equality.
//   - Add, Sub and the scalar helpers return new vectors and never mutate
//     their operands.
//
// Errors:
//
//   - ErrInvalidSize  size < 0 or size > MaxSize.
//   - ErrInvalidStart start index < 0.
//   - ErrOutOfRange   index outside [StartIndex(), StartIndex()+Size()).
//   - ErrSizeMismatch binary operation on vectors of different sizes.
//   - ErrNilVector    nil receiver or argument.
//
// All of them are sentinel values wrapped with call-site context; match them
// with errors.Is. No method panics on user input.
//
// A Vector is not safe for concurrent mutation. Callers that share one
// across goroutines must synchronize externally.
package vector
