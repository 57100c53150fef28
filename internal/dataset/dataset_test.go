package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneHot(t *testing.T) {
	target, err := OneHot(3, 10)
	require.NoError(t, err)

	require.Equal(t, 10, target.Rows())
	require.Equal(t, 1, target.Cols())
	for i := 0; i < 10; i++ {
		want := 0.0
		if i == 3 {
			want = 1.0
		}
		assert.Equal(t, want, target.At(i, 0))
	}
}

func TestOneHot_OutOfRange(t *testing.T) {
	_, err := OneHot(10, 10)
	assert.Error(t, err)
	_, err = OneHot(-1, 10)
	assert.Error(t, err)
}

func TestFormatError_Message(t *testing.T) {
	err := &FormatError{Path: "digits.csv", Record: 7, Detail: "invalid label"}
	assert.Contains(t, err.Error(), "digits.csv")
	assert.Contains(t, err.Error(), "record 7")
	assert.Contains(t, err.Error(), "invalid label")
}

func TestInputFromPixels_Normalizes(t *testing.T) {
	input, err := inputFromPixels([]byte{0, 128, 255})
	require.NoError(t, err)

	require.Equal(t, 3, input.Rows())
	require.Equal(t, 1, input.Cols())
	assert.Equal(t, 0.0, input.At(0, 0))
	assert.InDelta(t, 128.0/255.0, input.At(1, 0), 1e-12)
	assert.Equal(t, 1.0, input.At(2, 0))
}
