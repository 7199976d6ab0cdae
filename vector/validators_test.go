// SPDX-License-Identifier: MIT

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidators covers the private guards shared by constructors and operations.
func TestValidators(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateSize(0))
	require.NoError(t, validateSize(MaxSize))
	require.ErrorIs(t, validateSize(-1), ErrInvalidSize)
	require.ErrorIs(t, validateSize(MaxSize+1), ErrInvalidSize)

	require.NoError(t, validateStart(0))
	require.ErrorIs(t, validateStart(-1), ErrInvalidStart)

	a := &Vector[int]{data: make([]int, 2)}
	b := &Vector[int]{start: 5, data: make([]int, 2)}
	c := &Vector[int]{data: make([]int, 3)}
	require.NoError(t, validatePair(a, b))
	require.ErrorIs(t, validatePair(a, c), ErrSizeMismatch)
	require.ErrorIs(t, validatePair(nil, a), ErrNilVector)
	require.ErrorIs(t, validatePair(a, nil), ErrNilVector)
}

// TestGatherOptions applies setters in order and skips nil ones.
func TestGatherOptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultStart, gatherOptions().start)
	require.Equal(t, 3, gatherOptions(WithStart(1), nil, WithStart(3)).start)
}
