// Package nn implements the neural network building blocks of the Dense ML
// library: activations, the Dense layer, the Network container, loss
// functions, and weight initializers.
//
// Modules are plain structs over internal/matrix values. Forward and backward
// passes are pure; the only state mutation in the whole package is
// Dense.ApplyGradient, which the training step drives explicitly.
package nn

import "github.com/dense-ml/dense/internal/matrix"

// DefaultAlpha is the LeakyReLU negative slope used when none is specified.
const DefaultAlpha = 0.01

// Activation is an element-wise activation function together with its
// derivative. The derivative is evaluated at the pre-activation value during
// backpropagation, where it gates the incoming gradient.
type Activation interface {
	// Forward applies the activation element-wise, returning a new matrix.
	Forward(x *matrix.Matrix) *matrix.Matrix

	// Derivative returns the element-wise derivative evaluated at x.
	Derivative(x *matrix.Matrix) *matrix.Matrix
}

// LeakyReLU is the leaky rectifier activation.
//
//	f(x)  = x  if x > 0, else alpha*x
//	f'(x) = 1  if x > 0, else alpha
//
// Example:
//
//	act := nn.NewLeakyReLU(0.01)
//	y := act.Forward(x)
type LeakyReLU struct {
	Alpha float64
}

// NewLeakyReLU creates a LeakyReLU with the given negative slope.
// A non-positive alpha falls back to DefaultAlpha.
func NewLeakyReLU(alpha float64) *LeakyReLU {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &LeakyReLU{Alpha: alpha}
}

// Forward applies f(x) = max(x, alpha*x) element-wise.
func (l *LeakyReLU) Forward(x *matrix.Matrix) *matrix.Matrix {
	alpha := l.Alpha
	return x.Apply(func(v float64) float64 {
		if v > 0 {
			return v
		}
		return alpha * v
	})
}

// Derivative returns 1 for positive elements and alpha otherwise.
func (l *LeakyReLU) Derivative(x *matrix.Matrix) *matrix.Matrix {
	alpha := l.Alpha
	return x.Apply(func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return alpha
	})
}

// Identity is the identity activation: f(x) = x, f'(x) = 1.
// Useful as the output activation for regression-style targets.
type Identity struct{}

// NewIdentity creates an Identity activation.
func NewIdentity() *Identity {
	return &Identity{}
}

// Forward returns a copy of x.
func (*Identity) Forward(x *matrix.Matrix) *matrix.Matrix {
	return x.Clone()
}

// Derivative returns a matrix of ones with x's shape.
func (*Identity) Derivative(x *matrix.Matrix) *matrix.Matrix {
	return x.Apply(func(float64) float64 { return 1 })
}
