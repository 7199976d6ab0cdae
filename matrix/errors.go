// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trimat/vector"
)

// Shared error kinds are aliases of the vector sentinels, so a column
// failure detected by a row's Vector still satisfies
// errors.Is(err, matrix.ErrOutOfRange).
var (
	// ErrInvalidSize is returned when the order is negative or exceeds MaxSize.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrOutOfRange indicates a row or column index outside the stored triangle.
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrSizeMismatch indicates Add/Sub between matrices of different orders.
	ErrSizeMismatch = vector.ErrSizeMismatch
)

// ErrNilMatrix indicates that a nil *Matrix was used as receiver or argument.
var ErrNilMatrix = errors.New("matrix: nil matrix")

// matrixErrorf attaches the method name to an error.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// cellErrorf attaches the method name and coordinates to an error.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
