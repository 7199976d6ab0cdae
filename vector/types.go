// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/exp/constraints"

// MaxSize is the largest size a Vector may be created with.
const MaxSize = 100000000

// Number is the set of element types a Vector can hold: every type for which
// +, -, * and == are defined.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Vector is a sized sequence of T addressed through indices [start, start+len(data)).
// The data buffer is owned exclusively by the Vector; it is never shared
// with another instance.
type Vector[T Number] struct {
	start int // offset subtracted from external indices (>= 0)
	data  []T // owned storage; len(data) is the vector size
}
