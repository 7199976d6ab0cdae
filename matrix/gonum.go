// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// gonumView adapts a float64 Matrix to mat.Matrix without copying.
type gonumView struct {
	m *Matrix[float64]
}

var _ mat.Matrix = gonumView{}

// Gonum returns a read-only mat.Matrix view of m, for handing a triangular
// matrix to gonum routines. Cells below the diagonal read as 0. Later writes
// to m are visible through the view; an Assign that changes the order
// changes Dims accordingly.
func Gonum(m *Matrix[float64]) mat.Matrix {
	return gonumView{m: m}
}

// Dims returns the order twice.
func (g gonumView) Dims() (r, c int) {
	n := g.m.Size()
	return n, n
}

// At panics with mat.ErrIndexOutOfRange outside the square, as mat.Matrix
// implementations do.
func (g gonumView) At(i, j int) float64 {
	n := g.m.Size()
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(mat.ErrIndexOutOfRange)
	}
	if j < i {
		return 0
	}
	x, _ := g.m.rows[i].At(j)
	return x
}

// T returns the lower-triangular transpose view.
func (g gonumView) T() mat.Matrix {
	return mat.Transpose{Matrix: g}
}
