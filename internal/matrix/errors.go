package matrix

import "fmt"

// DimensionError reports invalid construction dimensions: non-positive row or
// column counts, or a value slice whose length does not match rows*cols.
//
// It is returned (not panicked) because constructors are the boundary where
// external sizes enter the system.
type DimensionError struct {
	Rows, Cols int
	Detail     string
}

func (e *DimensionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("matrix: invalid dimensions %dx%d: %s", e.Rows, e.Cols, e.Detail)
	}
	return fmt.Sprintf("matrix: invalid dimensions %dx%d (must be positive)", e.Rows, e.Cols)
}

// ShapeError reports operands whose shapes are incompatible for an operation.
//
// Operations panic with *ShapeError rather than returning it: shape mismatches
// are programmer errors, and callers are expected to have validated shapes
// ahead of time. This mirrors how gonum's mat package treats ErrShape.
type ShapeError struct {
	Op           string
	ARows, ACols int
	BRows, BCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix: %s: incompatible shapes %dx%d and %dx%d",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// shapePanic panics with a *ShapeError for the given operation and operands.
func shapePanic(op string, a, b *Matrix) {
	panic(&ShapeError{
		Op:    op,
		ARows: a.rows, ACols: a.cols,
		BRows: b.rows, BCols: b.cols,
	})
}
