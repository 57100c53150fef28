package nn

import (
	"math"
	"math/rand"

	"github.com/dense-ml/dense/internal/matrix"
)

// Initializer produces a freshly filled rows×cols matrix from the given
// random source. The distribution and scale are deliberately pluggable; no
// single scheme is baked into the layer.
type Initializer func(rows, cols int, rng *rand.Rand) (*matrix.Matrix, error)

// Xavier returns the Glorot uniform initializer:
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))), with fanIn = cols and
// fanOut = rows. This keeps activation variance roughly constant across
// layers and is the default for Dense weights.
func Xavier() Initializer {
	return func(rows, cols int, rng *rand.Rand) (*matrix.Matrix, error) {
		bound := math.Sqrt(6.0 / float64(rows+cols))
		return matrix.Uniform(rows, cols, -bound, bound, rng)
	}
}

// Uniform returns an initializer drawing from U(lo, hi).
func Uniform(lo, hi float64) Initializer {
	return func(rows, cols int, rng *rand.Rand) (*matrix.Matrix, error) {
		return matrix.Uniform(rows, cols, lo, hi, rng)
	}
}

// Normal returns an initializer drawing from N(mean, std²).
func Normal(mean, std float64) Initializer {
	return func(rows, cols int, rng *rand.Rand) (*matrix.Matrix, error) {
		return matrix.Normal(rows, cols, mean, std, rng)
	}
}

// ScaledUniform returns an initializer drawing from U(-1, 1) and dividing by
// the element count rows*cols, shrinking values as layers grow.
func ScaledUniform() Initializer {
	return func(rows, cols int, rng *rand.Rand) (*matrix.Matrix, error) {
		m, err := matrix.Uniform(rows, cols, -1, 1, rng)
		if err != nil {
			return nil, err
		}
		return m.Scale(1 / float64(rows*cols)), nil
	}
}

// Zeros returns an initializer producing an all-zero matrix. This is the
// default for Dense biases.
func Zeros() Initializer {
	return func(rows, cols int, _ *rand.Rand) (*matrix.Matrix, error) {
		return matrix.New(rows, cols)
	}
}
