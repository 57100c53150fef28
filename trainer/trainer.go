// Copyright 2025 Dense ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trainer provides the public API for the gradient-descent training
// loop of the Dense ML library.
//
// Example:
//
//	tr := trainer.New(net, nn.MSE{}, trainer.Config{
//	    Epochs:       5,
//	    LearningRate: 0.001,
//	    Shuffle:      true,
//	    Seed:         42,
//	})
//	losses, err := tr.Run(samples)
//	acc := trainer.Evaluate(net, testSamples)
package trainer

import (
	"github.com/dense-ml/dense/internal/dataset"
	"github.com/dense-ml/dense/internal/nn"
	"github.com/dense-ml/dense/internal/trainer"
)

// Config holds the training loop configuration.
type Config = trainer.Config

// Trainer runs the training loop for one network and loss.
type Trainer = trainer.Trainer

// New creates a Trainer. A nil loss defaults to MSE.
func New(net *nn.Network, loss nn.Loss, cfg Config) *Trainer {
	return trainer.New(net, loss, cfg)
}

// Evaluate returns classification accuracy over the samples in [0, 1].
func Evaluate(net *nn.Network, samples []dataset.Sample) float64 {
	return trainer.Evaluate(net, samples)
}
