// SPDX-License-Identifier: MIT

// Package vector - storage, construction and bounds-checked access.
//
// Purpose:
//   - Own a contiguous buffer of Size() elements addressed from StartIndex().
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Provide deep copy (Clone) and deep replace (Assign) with self-assignment short-circuit.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set/Ref: O(1); Clone/Assign: O(n).
package vector

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRef    = "Ref"
	ctxAssign = "Assign"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a zero-valued Vector of the given size.
//
// Implementation:
//   - Stage 1: gather options and validate size and start index.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidSize when size < 0 or size > MaxSize.
//   - ErrInvalidStart when WithStart got a negative value.
//
// Complexity: O(size) time and memory.
func New[T Number](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := validateSize(size); err != nil {
		return nil, indexErrorf(ctxNew, size, err)
	}
	if err := validateStart(o.start); err != nil {
		return nil, indexErrorf(ctxNew, o.start, err)
	}

	return &Vector[T]{start: o.start, data: make([]T, size)}, nil
}

// NewFrom creates a Vector holding a copy of values.
// The caller keeps ownership of values; later writes to it are not observed.
//
// Errors: same as New, with size = len(values).
func NewFrom[T Number](values []T, opts ...Option) (*Vector[T], error) {
	v, err := New[T](len(values), opts...)
	if err != nil {
		return nil, err
	}
	copy(v.data, values)

	return v, nil
}

// Size returns the number of stored elements. A nil Vector has size 0.
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// StartIndex returns the smallest valid external index.
func (v *Vector[T]) StartIndex() int {
	if v == nil {
		return 0
	}

	return v.start
}

// offset maps an external index onto the buffer or reports ErrOutOfRange.
func (v *Vector[T]) offset(method string, index int) (int, error) {
	if v == nil {
		return 0, indexErrorf(method, index, ErrNilVector)
	}
	off := index - v.start
	if index < v.start || off >= len(v.data) {
		return 0, indexErrorf(method, index, ErrOutOfRange)
	}

	return off, nil
}

// At returns the element at external index i.
// Returns ErrOutOfRange unless StartIndex() <= i < StartIndex()+Size().
func (v *Vector[T]) At(i int) (T, error) {
	off, err := v.offset(ctxAt, i)
	if err != nil {
		var zero T
		return zero, err
	}

	return v.data[off], nil
}

// Set stores x at external index i.
// Returns ErrOutOfRange unless StartIndex() <= i < StartIndex()+Size().
func (v *Vector[T]) Set(i int, x T) error {
	off, err := v.offset(ctxSet, i)
	if err != nil {
		return err
	}
	v.data[off] = x

	return nil
}

// Ref returns a pointer to the element at external index i, permitting
// in-place updates such as *p += x. The pointer is valid until the next
// Assign on v, which replaces the buffer.
func (v *Vector[T]) Ref(i int) (*T, error) {
	off, err := v.offset(ctxRef, i)
	if err != nil {
		return nil, err
	}

	return &v.data[off], nil
}

// Values returns a copy of the stored elements in logical order.
func (v *Vector[T]) Values() []T {
	if v == nil {
		return nil
	}

	return slices.Clone(v.data)
}

// Clone returns a deep copy with identical size, start index and elements.
// Cloning a nil Vector yields nil.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{start: v.start, data: data}
}

// Assign replaces v's size, start index and elements with a deep copy of src.
//
// Behavior highlights:
//   - v.Assign(v) is a no-op.
//   - The previous buffer is dropped only after the copy is complete, so a
//     failed Assign leaves v unchanged.
//
// Errors: ErrNilVector when v or src is nil.
// Complexity: O(src.Size()).
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == nil || src == nil {
		return vectorErrorf(ctxAssign, ErrNilVector)
	}
	if v == src {
		return nil
	}
	data := make([]T, len(src.data))
	copy(data, src.data)
	v.start, v.data = src.start, data

	return nil
}

// String renders the elements as "[a, b, c]".
func (v *Vector[T]) String() string {
	if v == nil {
		return _fmtOpen + _fmtClose
	}
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
