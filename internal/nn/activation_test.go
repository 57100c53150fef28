package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dense-ml/dense/internal/matrix"
)

func col(t *testing.T, values ...float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromValues(len(values), 1, values)
	require.NoError(t, err)
	return m
}

func TestLeakyReLU_Forward(t *testing.T) {
	act := NewLeakyReLU(0.01)
	x := col(t, 5, -5, 0, 2.5, -0.1)

	y := act.Forward(x)

	assert.InDelta(t, 5.0, y.At(0, 0), 1e-12)
	assert.InDelta(t, -0.05, y.At(1, 0), 1e-12)
	assert.InDelta(t, 0.0, y.At(2, 0), 1e-12)
	assert.InDelta(t, 2.5, y.At(3, 0), 1e-12)
	assert.InDelta(t, -0.001, y.At(4, 0), 1e-12)
}

func TestLeakyReLU_Derivative(t *testing.T) {
	act := NewLeakyReLU(0.01)
	x := col(t, 5, -5)

	d := act.Derivative(x)

	assert.Equal(t, 1.0, d.At(0, 0))
	assert.Equal(t, 0.01, d.At(1, 0))
}

func TestLeakyReLU_DefaultAlpha(t *testing.T) {
	assert.Equal(t, DefaultAlpha, NewLeakyReLU(0).Alpha)
	assert.Equal(t, DefaultAlpha, NewLeakyReLU(-1).Alpha)
	assert.Equal(t, 0.1, NewLeakyReLU(0.1).Alpha)
}

func TestLeakyReLU_PureInput(t *testing.T) {
	act := NewLeakyReLU(0.01)
	x := col(t, -3, 3)
	before := x.Clone()

	act.Forward(x)
	act.Derivative(x)

	assert.True(t, x.Equal(before), "activation must not mutate its input")
}

func TestIdentity(t *testing.T) {
	act := NewIdentity()
	x := col(t, -2, 0, 7)

	y := act.Forward(x)
	assert.True(t, y.Equal(x))

	d := act.Derivative(x)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, d.At(i, 0))
	}
}
