package nn

import (
	"fmt"
	"math/rand"

	"github.com/dense-ml/dense/internal/matrix"
)

// Network is an ordered, non-empty sequence of Dense layers with chained
// dimensions: layer[i].OutDim() == layer[i+1].InDim(). It composes forward
// passes and drives backpropagation across layers. The layer list is fixed
// after construction.
type Network struct {
	layers []*Dense
}

// Trace holds the intermediate values of one forward pass that backward
// needs: each layer's input and pre-activation, plus the final output.
// Keeping the trace an explicit value (instead of hidden layer state) keeps
// forward and backward pure and independently testable.
type Trace struct {
	Inputs  []*matrix.Matrix // Inputs[i] is the input to layer i
	PreActs []*matrix.Matrix // PreActs[i] = W_i·Inputs[i] + b_i
	Output  *matrix.Matrix   // activation of the last layer
}

// New creates a Network from the given layers.
// Fails if no layers are given or adjacent dimensions do not chain.
func New(layers ...*Dense) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("network: need at least one layer")
	}
	for i := 0; i < len(layers)-1; i++ {
		if layers[i].OutDim() != layers[i+1].InDim() {
			return nil, fmt.Errorf("network: layer %d output dim %d != layer %d input dim %d",
				i, layers[i].OutDim(), i+1, layers[i+1].InDim())
		}
	}
	return &Network{layers: layers}, nil
}

// FromSizes builds a chain of Dense layers from a size list. sizes[0] is the
// input dimension; each subsequent entry adds a layer. All layers share the
// given config (activation and initializers).
//
// Example:
//
//	rng := rand.New(rand.NewSource(7))
//	net, _ := nn.FromSizes([]int{784, 16, 16, 10}, nn.DenseConfig{}, rng)
func FromSizes(sizes []int, cfg DenseConfig, rng *rand.Rand) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("network: need at least two sizes, got %d", len(sizes))
	}
	layers := make([]*Dense, 0, len(sizes)-1)
	for i := 0; i < len(sizes)-1; i++ {
		layer, err := NewDense(sizes[i], sizes[i+1], cfg, rng)
		if err != nil {
			return nil, fmt.Errorf("network: layer %d: %w", i, err)
		}
		layers = append(layers, layer)
	}
	return New(layers...)
}

// Forward runs every layer in order and returns the network output together
// with the trace backward needs.
func (n *Network) Forward(input *matrix.Matrix) (*matrix.Matrix, *Trace) {
	trace := &Trace{
		Inputs:  make([]*matrix.Matrix, len(n.layers)),
		PreActs: make([]*matrix.Matrix, len(n.layers)),
	}
	x := input
	for i, layer := range n.layers {
		trace.Inputs[i] = x
		pre := layer.PreActivation(x)
		trace.PreActs[i] = pre
		x = layer.Activation().Forward(pre)
	}
	trace.Output = x
	return x, trace
}

// Predict runs a forward pass without retaining intermediate values.
// Use it for evaluation and inference.
func (n *Network) Predict(input *matrix.Matrix) *matrix.Matrix {
	x := input
	for _, layer := range n.layers {
		x = layer.Forward(x)
	}
	return x
}

// Backward walks the layers in reverse, feeding each layer's input gradient
// to the layer before it, and returns one Grads per layer (indexed like the
// layers). gradOutput is the gradient of the loss with respect to the network
// output, typically Loss.Gradient. No layer is mutated.
func (n *Network) Backward(trace *Trace, gradOutput *matrix.Matrix) []Grads {
	grads := make([]Grads, len(n.layers))
	g := gradOutput
	for i := len(n.layers) - 1; i >= 0; i-- {
		grads[i] = n.layers[i].Backward(trace.Inputs[i], trace.PreActs[i], g)
		g = grads[i].Input
	}
	return grads
}

// TrainStep performs one stochastic gradient-descent step on a single sample:
// forward, loss gradient, backward, then ApplyGradient on every layer.
// Returns the scalar loss measured before the update.
func (n *Network) TrainStep(input, target *matrix.Matrix, loss Loss, lr float64) float64 {
	output, trace := n.Forward(input)
	value := loss.Forward(output, target)
	grads := n.Backward(trace, loss.Gradient(output, target))
	for i, layer := range n.layers {
		layer.ApplyGradient(grads[i].Weight, grads[i].Bias, lr)
	}
	return value
}

// NumLayers returns the number of layers.
func (n *Network) NumLayers() int { return len(n.layers) }

// Layer returns the layer at index i. Panics if i is out of bounds.
func (n *Network) Layer(i int) *Dense {
	if i < 0 || i >= len(n.layers) {
		panic(fmt.Sprintf("network: layer index %d out of bounds (%d layers)", i, len(n.layers)))
	}
	return n.layers[i]
}

// InDim returns the input dimension of the first layer.
func (n *Network) InDim() int { return n.layers[0].InDim() }

// OutDim returns the output dimension of the last layer.
func (n *Network) OutDim() int { return n.layers[len(n.layers)-1].OutDim() }
