// SPDX-License-Identifier: MIT

package vector

// validateSize reports ErrInvalidSize unless 0 <= n <= MaxSize.
func validateSize(n int) error {
	if n < 0 || n > MaxSize {
		return ErrInvalidSize
	}

	return nil
}

// validateStart reports ErrInvalidStart for negative offsets.
func validateStart(start int) error {
	if start < 0 {
		return ErrInvalidStart
	}

	return nil
}

// validatePair checks that both operands exist and have equal sizes.
// Order: nil receiver -> nil argument -> size.
func validatePair[T Number](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return ErrSizeMismatch
	}

	return nil
}
