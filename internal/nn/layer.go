package nn

import (
	"fmt"
	"math/rand"

	"github.com/dense-ml/dense/internal/matrix"
)

// Dense is a fully connected layer: one affine transform followed by an
// element-wise activation.
//
//	output = act(W·x + b)
//
// W has shape outDim×inDim, b has shape outDim×1, and inputs are inDim×1
// column vectors (single-sample; batching is out of scope).
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer, _ := nn.NewDense(784, 16, nn.DenseConfig{}, rng)
//	out := layer.Forward(input) // 16×1
type Dense struct {
	inDim, outDim int
	weight        *matrix.Matrix // outDim × inDim
	bias          *matrix.Matrix // outDim × 1
	act           Activation
}

// DenseConfig holds the optional knobs of a Dense layer. Zero values select
// the defaults: LeakyReLU activation, Xavier weight init, zero bias init.
type DenseConfig struct {
	Activation Activation
	WeightInit Initializer
	BiasInit   Initializer
}

// Grads holds the gradients a Dense layer produces for one backward step.
type Grads struct {
	Input  *matrix.Matrix // d(loss)/d(input), inDim×1; fed to the previous layer
	Weight *matrix.Matrix // d(loss)/d(weight), outDim×inDim
	Bias   *matrix.Matrix // d(loss)/d(bias), outDim×1
}

// NewDense creates a Dense layer with freshly initialized parameters.
// Returns a *matrix.DimensionError for non-positive dimensions.
func NewDense(inDim, outDim int, cfg DenseConfig, rng *rand.Rand) (*Dense, error) {
	if cfg.Activation == nil {
		cfg.Activation = NewLeakyReLU(DefaultAlpha)
	}
	if cfg.WeightInit == nil {
		cfg.WeightInit = Xavier()
	}
	if cfg.BiasInit == nil {
		cfg.BiasInit = Zeros()
	}

	weight, err := cfg.WeightInit(outDim, inDim, rng)
	if err != nil {
		return nil, fmt.Errorf("dense weight init: %w", err)
	}
	bias, err := cfg.BiasInit(outDim, 1, rng)
	if err != nil {
		return nil, fmt.Errorf("dense bias init: %w", err)
	}

	return &Dense{
		inDim:  inDim,
		outDim: outDim,
		weight: weight,
		bias:   bias,
		act:    cfg.Activation,
	}, nil
}

// Forward computes act(W·input + b).
// Panics with *matrix.ShapeError unless input is an inDim×1 column vector.
func (l *Dense) Forward(input *matrix.Matrix) *matrix.Matrix {
	return l.act.Forward(l.PreActivation(input))
}

// PreActivation computes W·input + b without the activation. The training
// loop stores this value so backward can evaluate the activation derivative
// where it was taken.
func (l *Dense) PreActivation(input *matrix.Matrix) *matrix.Matrix {
	l.checkInput(input)
	return l.weight.MatMul(input).Add(l.bias)
}

// Backward converts the gradient of the loss with respect to this layer's
// output into gradients with respect to its input and parameters:
//
//	delta  = act'(preAct) ⊙ gradOutput
//	gW     = delta · inputᵀ
//	gB     = delta
//	gInput = Wᵀ · delta
//
// The layer is not mutated; composing Backward right-to-left across layers is
// the chain rule applied layer by layer.
func (l *Dense) Backward(input, preAct, gradOutput *matrix.Matrix) Grads {
	delta := l.act.Derivative(preAct).Mul(gradOutput)
	return Grads{
		Input:  l.weight.Transpose().MatMul(delta),
		Weight: delta.MatMul(input.Transpose()),
		Bias:   delta,
	}
}

// ApplyGradient performs the gradient-descent update
//
//	W -= lr * gradWeight
//	b -= lr * gradBias
//
// in place. This is the only mutating operation in the package.
// Panics with *matrix.ShapeError if the gradient shapes do not match.
func (l *Dense) ApplyGradient(gradWeight, gradBias *matrix.Matrix, lr float64) {
	if !gradWeight.SameShape(l.weight) {
		panic(&matrix.ShapeError{
			Op:    "Dense.ApplyGradient",
			ARows: l.weight.Rows(), ACols: l.weight.Cols(),
			BRows: gradWeight.Rows(), BCols: gradWeight.Cols(),
		})
	}
	if !gradBias.SameShape(l.bias) {
		panic(&matrix.ShapeError{
			Op:    "Dense.ApplyGradient",
			ARows: l.bias.Rows(), ACols: l.bias.Cols(),
			BRows: gradBias.Rows(), BCols: gradBias.Cols(),
		})
	}

	w := l.weight.Data()
	for i, g := range gradWeight.Data() {
		w[i] -= lr * g
	}
	b := l.bias.Data()
	for i, g := range gradBias.Data() {
		b[i] -= lr * g
	}
}

// InDim returns the layer's input dimension.
func (l *Dense) InDim() int { return l.inDim }

// OutDim returns the layer's output dimension.
func (l *Dense) OutDim() int { return l.outDim }

// Weight returns the weight matrix. Callers must treat it as owned by the
// layer; it changes only through ApplyGradient.
func (l *Dense) Weight() *matrix.Matrix { return l.weight }

// Bias returns the bias matrix, owned by the layer like Weight.
func (l *Dense) Bias() *matrix.Matrix { return l.bias }

// Activation returns the layer's activation function.
func (l *Dense) Activation() Activation { return l.act }

func (l *Dense) checkInput(input *matrix.Matrix) {
	if input.Rows() != l.inDim || input.Cols() != 1 {
		panic(&matrix.ShapeError{
			Op:    "Dense.Forward",
			ARows: l.outDim, ACols: l.inDim,
			BRows: input.Rows(), BCols: input.Cols(),
		})
	}
}
