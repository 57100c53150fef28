// Package dataset loads labeled image data into the matrix pairs the network
// trains on. Two on-disk formats are supported: Kaggle-style CSV
// (label,pixel0,...,pixelN) and the official MNIST IDX binary files.
//
// The core contract is small: given file paths, produce a finite slice of
// (input matrix, one-hot target) pairs, or fail with a *FormatError if any
// record is malformed. No partially loaded dataset is ever returned.
package dataset

import (
	"fmt"

	"github.com/dense-ml/dense/internal/matrix"
)

// DefaultClasses is the class count used when a loader is given a
// non-positive one. It matches the ten digit classes of MNIST.
const DefaultClasses = 10

// Sample is one labeled image: a flattened pixel column vector with values in
// [0, 1], its one-hot target, and the integer class label.
type Sample struct {
	Input  *matrix.Matrix // n×1
	Target *matrix.Matrix // classes×1
	Label  int
}

// FormatError reports a malformed dataset file or record. Loading aborts on
// the first malformed record.
type FormatError struct {
	Path   string
	Record int // 1-based record number, 0 for file-level problems
	Detail string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("dataset: %s", e.Path)
	if e.Record > 0 {
		msg += fmt.Sprintf(": record %d", e.Record)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// OneHot returns a classes×1 column vector with 1 at the label index and 0
// elsewhere. Fails if label is outside [0, classes).
func OneHot(label, classes int) (*matrix.Matrix, error) {
	if label < 0 || label >= classes {
		return nil, fmt.Errorf("dataset: label %d out of range [0, %d)", label, classes)
	}
	target, err := matrix.New(classes, 1)
	if err != nil {
		return nil, err
	}
	target.Set(label, 0, 1)
	return target, nil
}

// inputFromPixels builds the n×1 input matrix from raw byte pixels,
// normalized from [0, 255] to [0, 1].
func inputFromPixels(pixels []byte) (*matrix.Matrix, error) {
	input, err := matrix.New(len(pixels), 1)
	if err != nil {
		return nil, err
	}
	data := input.Data()
	for i, p := range pixels {
		data[i] = float64(p) / 255.0
	}
	return input, nil
}
