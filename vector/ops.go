// SPDX-License-Identifier: MIT

// Package vector - equality and arithmetic.
//
// All operations are pure: operands are never mutated and results own fresh
// buffers. Results inherit the receiver's start index. Loops run in fixed
// 0..n-1 order.
package vector

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
	ctxDot = "Dot"
)

// Equal reports whether v and o have the same size and element-wise equal
// values. The start index is ignored. Two nil vectors are equal; a nil and a
// non-nil vector are not.
// Complexity: O(n).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil || len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool {
	return !v.Equal(o)
}

// Add returns v + o element-wise.
// Errors: ErrNilVector, ErrSizeMismatch.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(v, o); err != nil {
		return nil, vectorErrorf(ctxAdd, err)
	}
	out := &Vector[T]{start: v.start, data: make([]T, len(v.data))}
	for i := range v.data {
		out.data[i] = v.data[i] + o.data[i]
	}

	return out, nil
}

// Sub returns v - o element-wise.
// Errors: ErrNilVector, ErrSizeMismatch.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(v, o); err != nil {
		return nil, vectorErrorf(ctxSub, err)
	}
	out := &Vector[T]{start: v.start, data: make([]T, len(v.data))}
	for i := range v.data {
		out.data[i] = v.data[i] - o.data[i]
	}

	return out, nil
}

// Dot returns the sum of v[i]*o[i] over logical positions.
// Errors: ErrNilVector, ErrSizeMismatch.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if err := validatePair(v, o); err != nil {
		return sum, vectorErrorf(ctxDot, err)
	}
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}

// AddScalar returns a new vector with x added to every element.
func (v *Vector[T]) AddScalar(x T) *Vector[T] {
	return v.mapped(func(e T) T { return e + x })
}

// SubScalar returns a new vector with x subtracted from every element.
func (v *Vector[T]) SubScalar(x T) *Vector[T] {
	return v.mapped(func(e T) T { return e - x })
}

// MulScalar returns a new vector with every element multiplied by x.
func (v *Vector[T]) MulScalar(x T) *Vector[T] {
	return v.mapped(func(e T) T { return e * x })
}

// mapped applies f to a copy of v. A nil receiver maps to nil.
func (v *Vector[T]) mapped(f func(T) T) *Vector[T] {
	if v == nil {
		return nil
	}
	out := &Vector[T]{start: v.start, data: make([]T, len(v.data))}
	for i, e := range v.data {
		out.data[i] = f(e)
	}

	return out
}
