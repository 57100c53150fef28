package matrix

import (
	"fmt"
	"math/rand"
)

// New creates a zero-filled rows×cols matrix.
// Returns a *DimensionError if rows or cols is not positive.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &DimensionError{Rows: rows, Cols: cols}
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromValues creates a rows×cols matrix from values in row-major order.
// The slice is copied. Returns a *DimensionError if rows or cols is not
// positive or len(values) != rows*cols.
//
// Example:
//
//	m, err := matrix.FromValues(2, 3, []float64{1, 2, 3, 4, 5, 6})
func FromValues(rows, cols int, values []float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, &DimensionError{
			Rows: rows, Cols: cols,
			Detail: fmt.Sprintf("got %d values, want %d", len(values), rows*cols),
		}
	}
	copy(m.data, values)
	return m, nil
}

// Full creates a rows×cols matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = value
	}
	return m, nil
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Uniform creates a rows×cols matrix with elements drawn uniformly from
// [lo, hi). The caller supplies the random source, so results are reproducible
// given a seeded *rand.Rand.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	w, _ := matrix.Uniform(3, 4, -1, 1, rng)
func Uniform(rows, cols int, lo, hi float64, rng *rand.Rand) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	span := hi - lo
	for i := range m.data {
		m.data[i] = lo + span*rng.Float64()
	}
	return m, nil
}

// Normal creates a rows×cols matrix with elements drawn from the normal
// distribution N(mean, std²), using the supplied random source.
func Normal(rows, cols int, mean, std float64, rng *rand.Rand) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = mean + std*rng.NormFloat64()
	}
	return m, nil
}
