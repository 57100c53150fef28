// Package matrix implements the dense 2-D float64 matrix underlying the Dense
// ML library.
//
// A Matrix has fixed dimensions set at construction. Every operation returns a
// new Matrix and never mutates its operands; the only mutation entry points are
// the explicit Set method and the zero-copy Data accessor. Randomness enters
// solely through constructors that take an explicit *rand.Rand, so results are
// reproducible given a seed.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense rows×cols matrix of float64 values in row-major order.
//
// Example:
//
//	m, _ := matrix.FromValues(2, 2, []float64{1, 2, 3, 4})
//	t := m.Transpose()
//	p := m.MatMul(t) // 2x2
type Matrix struct {
	rows, cols int
	data       []float64 // row-major, len == rows*cols
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NumElements returns the total number of elements (rows*cols).
func (m *Matrix) NumElements() int { return m.rows * m.cols }

// At returns the element at (r, c). Panics if the indices are out of bounds.
func (m *Matrix) At(r, c int) float64 {
	m.checkIndex(r, c)
	return m.data[r*m.cols+c]
}

// Set overwrites the element at (r, c). This is an explicit mutation entry
// point; the operation methods never modify their operands.
// Panics if the indices are out of bounds.
func (m *Matrix) Set(r, c int, v float64) {
	m.checkIndex(r, c)
	m.data[r*m.cols+c] = v
}

// Data returns the backing slice in row-major order.
//
// WARNING: the slice aliases the matrix's memory; modifications to it modify
// the matrix. Used by the layer update step and the dataset loader to avoid
// per-element copies.
func (m *Matrix) Data() []float64 { return m.data }

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Equal reports whether m and other have the same shape and exactly equal
// elements. For floating-point comparisons after arithmetic, prefer AllClose.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether m and other have the same shape and all elements
// within eps of each other.
func (m *Matrix) AllClose(other *Matrix, eps float64) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d < 0 {
			d = -d
		}
		if d > eps {
			return false
		}
	}
	return true
}

// String returns a human-readable representation, one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%dx%d)[", m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteString("; ")
		}
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", m.data[r*m.cols+c])
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (m *Matrix) checkIndex(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of bounds for %dx%d matrix", r, c, m.rows, m.cols))
	}
}
