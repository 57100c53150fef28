package matrix

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// toGonum converts a Matrix to a gonum dense matrix.
func toGonum(m *Matrix) *mat.Dense {
	data := make([]float64, len(m.Data()))
	copy(data, m.Data())
	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// assertMatchesGonum compares a Matrix against a gonum result element-wise.
func assertMatchesGonum(t *testing.T, got *Matrix, want mat.Matrix, eps float64, msg string) {
	t.Helper()
	r, c := want.Dims()
	if got.Rows() != r || got.Cols() != c {
		t.Fatalf("%s: shape %dx%d, want %dx%d", msg, got.Rows(), got.Cols(), r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d := got.At(i, j) - want.At(i, j)
			if d < 0 {
				d = -d
			}
			if d > eps {
				t.Fatalf("%s: element (%d, %d) = %v, want %v", msg, i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}

// The gonum mat package serves as an independent oracle for the linear
// algebra kernels.

func TestMatMul_AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a, _ := Uniform(7, 5, -3, 3, rng)
	b, _ := Uniform(5, 9, -3, 3, rng)

	var want mat.Dense
	want.Mul(toGonum(a), toGonum(b))

	assertMatchesGonum(t, a.MatMul(b), &want, 1e-12, "MatMul vs gonum")
}

func TestTranspose_AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(100))
	a, _ := Uniform(6, 4, -1, 1, rng)

	assertMatchesGonum(t, a.Transpose(), toGonum(a).T(), 0, "Transpose vs gonum")
}

func TestAddScale_AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(101))
	a, _ := Uniform(4, 4, -1, 1, rng)
	b, _ := Uniform(4, 4, -1, 1, rng)

	var sum mat.Dense
	sum.Add(toGonum(a), toGonum(b))
	assertMatchesGonum(t, a.Add(b), &sum, 1e-12, "Add vs gonum")

	var scaled mat.Dense
	scaled.Scale(2.5, toGonum(a))
	assertMatchesGonum(t, a.Scale(2.5), &scaled, 1e-12, "Scale vs gonum")
}
