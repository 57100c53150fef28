package nn

import "github.com/dense-ml/dense/internal/matrix"

// Loss is a scalar loss function together with its gradient with respect to
// the prediction. The gradient seeds Network.Backward.
type Loss interface {
	// Forward returns the scalar loss for a prediction against a target.
	Forward(prediction, target *matrix.Matrix) float64

	// Gradient returns d(loss)/d(prediction), with prediction's shape.
	Gradient(prediction, target *matrix.Matrix) *matrix.Matrix
}

// MSE is the mean squared error loss.
//
//	loss = mean((prediction - target)²)
//	grad = 2/N * (prediction - target)    N = element count
//
// Example:
//
//	loss := nn.MSE{}
//	l := loss.Forward(pred, target)       // 0 when pred == target
type MSE struct{}

// Forward returns mean((prediction - target)²).
// Panics with *matrix.ShapeError if the shapes differ.
func (MSE) Forward(prediction, target *matrix.Matrix) float64 {
	diff := prediction.Sub(target)
	return diff.Mul(diff).Mean()
}

// Gradient returns 2/N * (prediction - target).
// Panics with *matrix.ShapeError if the shapes differ.
func (MSE) Gradient(prediction, target *matrix.Matrix) *matrix.Matrix {
	n := float64(prediction.NumElements())
	return prediction.Sub(target).Scale(2 / n)
}
