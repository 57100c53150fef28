// Copyright 2025 Dense ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for the neural network building blocks
// of the Dense ML library: activations, the Dense layer, the Network
// container, loss functions, and weight initializers.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	net, _ := nn.FromSizes([]int{784, 16, 16, 10}, nn.DenseConfig{}, rng)
//	loss := net.TrainStep(input, target, nn.MSE{}, 0.001)
package nn

import (
	"math/rand"

	"github.com/dense-ml/dense/internal/nn"
)

// DefaultAlpha is the LeakyReLU negative slope used when none is specified.
const DefaultAlpha = nn.DefaultAlpha

// Activation is an element-wise activation function with its derivative.
type Activation = nn.Activation

// LeakyReLU is the leaky rectifier activation.
type LeakyReLU = nn.LeakyReLU

// NewLeakyReLU creates a LeakyReLU with the given negative slope.
func NewLeakyReLU(alpha float64) *LeakyReLU {
	return nn.NewLeakyReLU(alpha)
}

// Identity is the identity activation.
type Identity = nn.Identity

// NewIdentity creates an Identity activation.
func NewIdentity() *Identity {
	return nn.NewIdentity()
}

// Dense is a fully connected layer: an affine transform plus activation.
type Dense = nn.Dense

// DenseConfig holds the optional knobs of a Dense layer.
type DenseConfig = nn.DenseConfig

// Grads holds the gradients a Dense layer produces for one backward step.
type Grads = nn.Grads

// NewDense creates a Dense layer with freshly initialized parameters.
func NewDense(inDim, outDim int, cfg DenseConfig, rng *rand.Rand) (*Dense, error) {
	return nn.NewDense(inDim, outDim, cfg, rng)
}

// Network is an ordered sequence of Dense layers.
type Network = nn.Network

// Trace holds the intermediate values of one forward pass.
type Trace = nn.Trace

// New creates a Network from the given layers.
func New(layers ...*Dense) (*Network, error) {
	return nn.New(layers...)
}

// FromSizes builds a chain of Dense layers from a size list.
func FromSizes(sizes []int, cfg DenseConfig, rng *rand.Rand) (*Network, error) {
	return nn.FromSizes(sizes, cfg, rng)
}

// Loss is a scalar loss function with its gradient.
type Loss = nn.Loss

// MSE is the mean squared error loss.
type MSE = nn.MSE

// Initializer produces a freshly filled rows×cols matrix.
type Initializer = nn.Initializer

// Xavier returns the Glorot uniform initializer (the Dense weight default).
func Xavier() Initializer { return nn.Xavier() }

// Uniform returns an initializer drawing from U(lo, hi).
func Uniform(lo, hi float64) Initializer { return nn.Uniform(lo, hi) }

// Normal returns an initializer drawing from N(mean, std²).
func Normal(mean, std float64) Initializer { return nn.Normal(mean, std) }

// ScaledUniform returns an initializer drawing from U(-1, 1) scaled by the
// element count.
func ScaledUniform() Initializer { return nn.ScaledUniform() }

// Zeros returns an all-zero initializer (the Dense bias default).
func Zeros() Initializer { return nn.Zeros() }
