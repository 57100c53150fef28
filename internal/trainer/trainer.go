// Package trainer drives stochastic gradient-descent training of a Network
// over a labeled dataset: a seeded shuffle per epoch, one TrainStep per
// sample, and per-epoch average loss reporting.
package trainer

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/dense-ml/dense/internal/dataset"
	"github.com/dense-ml/dense/internal/nn"
)

// Config holds the training loop configuration. Zero values select the
// defaults noted per field.
type Config struct {
	Epochs       int       // number of passes over the dataset (default 1)
	LearningRate float64   // SGD step size (default 0.01)
	Shuffle      bool      // reshuffle samples each epoch with the seeded source
	Seed         int64     // seed for the shuffle permutation
	Out          io.Writer // progress destination; nil silences output
}

// Trainer runs the training loop for one network and loss.
//
// Example:
//
//	tr := trainer.New(net, nn.MSE{}, trainer.Config{
//	    Epochs:       5,
//	    LearningRate: 0.001,
//	    Shuffle:      true,
//	    Seed:         42,
//	    Out:          os.Stdout,
//	})
//	losses, err := tr.Run(samples)
type Trainer struct {
	net  *nn.Network
	loss nn.Loss
	cfg  Config
	rng  *rand.Rand
}

// New creates a Trainer. A nil loss defaults to MSE.
func New(net *nn.Network, loss nn.Loss, cfg Config) *Trainer {
	if loss == nil {
		loss = nn.MSE{}
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = 1
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.01
	}
	return &Trainer{
		net:  net,
		loss: loss,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Run trains over the samples for the configured number of epochs and returns
// the average loss of each epoch, in order. Each epoch visits every sample
// once, in a freshly shuffled order when Shuffle is set.
func (t *Trainer) Run(samples []dataset.Sample) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("trainer: no samples")
	}

	order := make([]int, len(samples))
	for i := range order {
		order[i] = i
	}

	losses := make([]float64, 0, t.cfg.Epochs)
	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		if t.cfg.Shuffle {
			t.rng.Shuffle(len(order), func(i, j int) {
				order[i], order[j] = order[j], order[i]
			})
		}

		var total float64
		for _, idx := range order {
			s := samples[idx]
			total += t.net.TrainStep(s.Input, s.Target, t.loss, t.cfg.LearningRate)
		}
		avg := total / float64(len(samples))
		losses = append(losses, avg)

		if t.cfg.Out != nil {
			fmt.Fprintf(t.cfg.Out, "epoch %d/%d: avg loss %.6f\n", epoch, t.cfg.Epochs, avg)
		}
	}

	return losses, nil
}

// Evaluate returns classification accuracy in [0, 1]: the fraction of samples
// whose predicted class (the row of the largest output element) matches the
// label.
func Evaluate(net *nn.Network, samples []dataset.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	correct := 0
	for _, s := range samples {
		out := net.Predict(s.Input)
		guess, _ := out.ArgMax()
		if guess == s.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(samples))
}
