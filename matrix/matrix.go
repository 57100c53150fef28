// Copyright 2025 Dense ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the dense 2-D matrix type of the
// Dense ML library.
//
// A Matrix is a fixed-size rows×cols container of float64 values. All
// operations are pure and return new matrices; randomness enters only through
// an explicit *rand.Rand.
//
// Example:
//
//	a, _ := matrix.FromValues(2, 2, []float64{1, 2, 3, 4})
//	b, _ := matrix.Identity(2)
//	c := a.MatMul(b) // equals a
package matrix

import (
	"math/rand"

	"github.com/dense-ml/dense/internal/matrix"
)

// Matrix is a dense rows×cols matrix of float64 values.
type Matrix = matrix.Matrix

// DimensionError reports invalid construction dimensions.
type DimensionError = matrix.DimensionError

// ShapeError reports operands whose shapes are incompatible for an operation.
// Operations panic with *ShapeError; see the internal package for rationale.
type ShapeError = matrix.ShapeError

// New creates a zero-filled rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// FromValues creates a rows×cols matrix from row-major values.
func FromValues(rows, cols int, values []float64) (*Matrix, error) {
	return matrix.FromValues(rows, cols, values)
}

// Full creates a rows×cols matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	return matrix.Full(rows, cols, value)
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	return matrix.Identity(n)
}

// Uniform creates a matrix with elements drawn uniformly from [lo, hi).
func Uniform(rows, cols int, lo, hi float64, rng *rand.Rand) (*Matrix, error) {
	return matrix.Uniform(rows, cols, lo, hi, rng)
}

// Normal creates a matrix with elements drawn from N(mean, std²).
func Normal(rows, cols int, mean, std float64, rng *rand.Rand) (*Matrix, error) {
	return matrix.Normal(rows, cols, mean, std, rng)
}
