package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dense-ml/dense/internal/matrix"
)

func TestMSE_ZeroAtPerfectPrediction(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	p, err := matrix.Uniform(6, 1, -5, 5, rng)
	require.NoError(t, err)

	assert.Equal(t, 0.0, MSE{}.Forward(p, p))
}

func TestMSE_KnownValue(t *testing.T) {
	pred := col(t, 1, 2)
	target := col(t, 0, 0)

	// ((1-0)² + (2-0)²) / 2 = 2.5
	assert.InDelta(t, 2.5, MSE{}.Forward(pred, target), 1e-12)
}

func TestMSE_GradientDirection(t *testing.T) {
	// For 1×1 matrices the gradient is 2*(pred - target).
	five := col(t, 5)
	three := col(t, 3)

	g := MSE{}.Gradient(five, three)
	assert.InDelta(t, 4.0, g.At(0, 0), 1e-12, "prediction above target: positive gradient")

	g = MSE{}.Gradient(three, five)
	assert.InDelta(t, -4.0, g.At(0, 0), 1e-12, "prediction below target: negative gradient")
}

func TestMSE_GradientShapeAndScale(t *testing.T) {
	pred := col(t, 1, 2, 3, 4)
	target := col(t, 0, 0, 0, 0)

	g := MSE{}.Gradient(pred, target)
	require.Equal(t, 4, g.Rows())
	require.Equal(t, 1, g.Cols())

	// 2/N scaling with N = 4.
	assert.InDelta(t, 0.5, g.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, g.At(3, 0), 1e-12)
}

func TestMSE_ShapeMismatchPanics(t *testing.T) {
	a := col(t, 1, 2)
	b := col(t, 1, 2, 3)

	assert.Panics(t, func() { MSE{}.Forward(a, b) })
	assert.Panics(t, func() { MSE{}.Gradient(a, b) })
}
