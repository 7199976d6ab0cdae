// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/trimat/vector"
)

// OpsSuite groups equality and arithmetic tests over a shared fixture.
type OpsSuite struct {
	suite.Suite
	a, b *vector.Vector[int] // size 3, a = [1 2 3], b = [10 20 30]
}

func (s *OpsSuite) SetupTest() {
	var err error
	s.a, err = vector.NewFrom([]int{1, 2, 3})
	require.NoError(s.T(), err)
	s.b, err = vector.NewFrom([]int{10, 20, 30})
	require.NoError(s.T(), err)
}

func (s *OpsSuite) TestEqual_Reflexive() {
	s.True(s.a.Equal(s.a))
	s.False(s.a.NotEqual(s.a))
}

func (s *OpsSuite) TestEqual_IndependentCopies() {
	c, err := vector.NewFrom([]int{1, 2, 3})
	s.Require().NoError(err)
	s.True(s.a.Equal(c))
	s.True(c.Equal(s.a))
}

func (s *OpsSuite) TestEqual_IgnoresStart() {
	c, err := vector.NewFrom([]int{1, 2, 3}, vector.WithStart(7))
	s.Require().NoError(err)
	s.True(s.a.Equal(c), "start index is not part of equality")
}

func (s *OpsSuite) TestEqual_DifferentSize() {
	zeros3, err := vector.New[int](3)
	s.Require().NoError(err)
	zeros4, err := vector.New[int](4)
	s.Require().NoError(err)
	s.False(zeros3.Equal(zeros4))
	s.True(zeros3.NotEqual(zeros4))
}

func (s *OpsSuite) TestEqual_Nil() {
	var n *vector.Vector[int]
	s.True(n.Equal(nil))
	s.False(s.a.Equal(nil))
	s.False(n.Equal(s.a))
}

func (s *OpsSuite) TestAdd() {
	sum, err := s.a.Add(s.b)
	s.Require().NoError(err)
	s.Equal([]int{11, 22, 33}, sum.Values())
	s.Equal([]int{1, 2, 3}, s.a.Values(), "operands untouched")
}

func (s *OpsSuite) TestSub() {
	diff, err := s.b.Sub(s.a)
	s.Require().NoError(err)
	s.Equal([]int{9, 18, 27}, diff.Values())
}

func (s *OpsSuite) TestArithmetic_KeepsReceiverStart() {
	r, err := vector.NewFrom([]int{1, 1, 1}, vector.WithStart(2))
	s.Require().NoError(err)
	sum, err := r.Add(s.a)
	s.Require().NoError(err)
	s.Equal(2, sum.StartIndex())
}

func (s *OpsSuite) TestArithmetic_SizeMismatch() {
	long, err := vector.New[int](15)
	s.Require().NoError(err)
	short, err := vector.New[int](7)
	s.Require().NoError(err)

	_, err = long.Add(short)
	s.ErrorIs(err, vector.ErrSizeMismatch)
	_, err = long.Sub(short)
	s.ErrorIs(err, vector.ErrSizeMismatch)
	_, err = long.Dot(short)
	s.ErrorIs(err, vector.ErrSizeMismatch)
}

func (s *OpsSuite) TestArithmetic_Nil() {
	_, err := s.a.Add(nil)
	s.ErrorIs(err, vector.ErrNilVector)
	_, err = s.a.Sub(nil)
	s.ErrorIs(err, vector.ErrNilVector)
}

func (s *OpsSuite) TestDot() {
	d, err := s.a.Dot(s.b)
	s.Require().NoError(err)
	s.Equal(140, d)
}

func (s *OpsSuite) TestScalar() {
	s.Equal([]int{3, 4, 5}, s.a.AddScalar(2).Values())
	s.Equal([]int{0, 1, 2}, s.a.SubScalar(1).Values())
	s.Equal([]int{3, 6, 9}, s.a.MulScalar(3).Values())
	s.Equal([]int{1, 2, 3}, s.a.Values())

	var n *vector.Vector[int]
	s.Nil(n.MulScalar(2))
}

func TestOpsSuite(t *testing.T) {
	suite.Run(t, new(OpsSuite))
}

// TestAdd_Complex exercises a non-ordered element type.
func TestAdd_Complex(t *testing.T) {
	t.Parallel()

	a, err := vector.NewFrom([]complex128{1 + 1i, 2})
	require.NoError(t, err)
	b, err := vector.NewFrom([]complex128{1i, -2})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 + 2i, 0}, sum.Values())
}
