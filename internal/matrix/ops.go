package matrix

import (
	"github.com/dense-ml/dense/internal/parallel"
)

// matmulParallel controls row-parallel execution of MatMul. Each goroutine
// writes a disjoint range of output rows, so the result is identical to the
// sequential loop.
var matmulParallel = parallel.DefaultConfig()

// Add returns the element-wise sum m + other.
// Panics with *ShapeError if the shapes differ.
func (m *Matrix) Add(other *Matrix) *Matrix {
	if !m.SameShape(other) {
		shapePanic("Add", m, other)
	}
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] += v
	}
	return out
}

// Sub returns the element-wise difference m - other.
// Panics with *ShapeError if the shapes differ.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	if !m.SameShape(other) {
		shapePanic("Sub", m, other)
	}
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] -= v
	}
	return out
}

// Mul returns the Hadamard (element-wise) product m ⊙ other.
// Panics with *ShapeError if the shapes differ.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	if !m.SameShape(other) {
		shapePanic("Mul", m, other)
	}
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] *= v
	}
	return out
}

// MatMul returns the matrix product m · other, with shape m.rows × other.cols.
// Panics with *ShapeError if m.cols != other.rows.
//
// Large products are split across output rows by the parallel helper; the
// numeric result does not depend on the degree of parallelism.
func (m *Matrix) MatMul(other *Matrix) *Matrix {
	if m.cols != other.rows {
		shapePanic("MatMul", m, other)
	}
	out := &Matrix{rows: m.rows, cols: other.cols, data: make([]float64, m.rows*other.cols)}
	parallel.For(m.rows, func(r int) {
		mRow := m.data[r*m.cols : (r+1)*m.cols]
		outRow := out.data[r*out.cols : (r+1)*out.cols]
		for k, mv := range mRow {
			oRow := other.data[k*other.cols : (k+1)*other.cols]
			for c, ov := range oRow {
				outRow[c] += mv * ov
			}
		}
	}, matmulParallel)
	return out
}

// Scale returns m with every element multiplied by k.
func (m *Matrix) Scale(k float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= k
	}
	return out
}

// AddScalar returns m with k added to every element.
func (m *Matrix) AddScalar(k float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] += k
	}
	return out
}

// Max returns the component-wise maximum of m and other.
// Panics with *ShapeError if the shapes differ.
func (m *Matrix) Max(other *Matrix) *Matrix {
	if !m.SameShape(other) {
		shapePanic("Max", m, other)
	}
	out := m.Clone()
	for i, v := range other.data {
		if v > out.data[i] {
			out.data[i] = v
		}
	}
	return out
}

// MaxScalar returns the component-wise maximum of m and the scalar k.
func (m *Matrix) MaxScalar(k float64) *Matrix {
	out := m.Clone()
	for i, v := range out.data {
		if k > v {
			out.data[i] = k
		}
	}
	return out
}

// Apply returns a new matrix with f applied to every element.
//
// Example:
//
//	squared := m.Apply(func(x float64) float64 { return x * x })
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = f(v)
	}
	return out
}

// Transpose returns the transpose of m (cols × rows).
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[c*m.rows+r] = m.data[r*m.cols+c]
		}
	}
	return out
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean of all elements.
func (m *Matrix) Mean() float64 {
	return m.Sum() / float64(len(m.data))
}

// ArgMax returns the (row, col) position of the largest element. Ties resolve
// to the earliest position in row-major order.
func (m *Matrix) ArgMax() (int, int) {
	best := 0
	for i, v := range m.data {
		if v > m.data[best] {
			best = i
		}
	}
	return best / m.cols, best % m.cols
}
