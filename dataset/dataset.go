// Copyright 2025 Dense ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides the public API for loading labeled image datasets
// into the matrix pairs the network trains on.
package dataset

import (
	"github.com/dense-ml/dense/internal/dataset"
	"github.com/dense-ml/dense/internal/matrix"
)

// DefaultClasses is the class count used when a loader is given a
// non-positive one.
const DefaultClasses = dataset.DefaultClasses

// Sample is one labeled image: input vector, one-hot target, class label.
type Sample = dataset.Sample

// FormatError reports a malformed dataset file or record.
type FormatError = dataset.FormatError

// OneHot returns a classes×1 one-hot column vector for label.
func OneHot(label, classes int) (*matrix.Matrix, error) {
	return dataset.OneHot(label, classes)
}

// LoadCSV loads a Kaggle-style label,pixel0,...,pixelN CSV file.
func LoadCSV(path string, classes, maxSamples int) ([]Sample, error) {
	return dataset.LoadCSV(path, classes, maxSamples)
}

// LoadIDX loads a pair of official MNIST IDX image/label files.
func LoadIDX(imagePath, labelPath string, classes, maxSamples int) ([]Sample, error) {
	return dataset.LoadIDX(imagePath, labelPath, classes, maxSamples)
}
