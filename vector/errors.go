// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "vector: ..." for grep-ability. Sentinels are
// returned wrapped with method context; callers match them via errors.Is.
var (
	// ErrInvalidSize is returned when a requested size is negative or exceeds MaxSize.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrInvalidStart is returned when a requested start index is negative.
	ErrInvalidStart = errors.New("vector: invalid start index")

	// ErrOutOfRange indicates that an index falls outside [start, start+size).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates that a binary operation got operands of different sizes.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was used as receiver or argument.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf attaches the method name to a sentinel error.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// indexErrorf attaches the method name and offending index to a sentinel error.
func indexErrorf(method string, index int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, index, err)
}
