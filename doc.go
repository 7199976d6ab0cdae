// Package trimat is a small generic numeric-container library: a
// bounds-checked vector with an index offset, and an upper-triangular square
// matrix built from such vectors.
//
// What is inside:
//
//	vector/ — Vector[T]: sized, offset-addressed storage with deep copy,
//	          assignment, equality, element-wise and scalar arithmetic
//	matrix/ — Matrix[T]: upper-triangular matrix whose row i is a
//	          Vector of length n-i starting at column i, plus a
//	          read-only gonum mat.Matrix adapter
//
// Both types are value-like: Clone and Assign always produce independent
// storage, and every operation reports contract violations as errors
// (errors.Is against the package sentinels) instead of panicking.
//
// Quick ASCII example (order 4, stored cells marked x):
//
//	x x x x
//	. x x x
//	. . x x
//	. . . x
//
//	go get github.com/katalvlaran/trimat
package trimat
