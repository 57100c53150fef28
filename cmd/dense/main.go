// Package main provides the Dense ML command line interface.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/dense-ml/dense/dataset"
	"github.com/dense-ml/dense/nn"
	"github.com/dense-ml/dense/trainer"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Dense ML %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "dense: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "dense: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  dense train [flags]   Train a feed-forward network on a labeled image dataset")
	fmt.Fprintln(os.Stderr, "  dense version         Show version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Run 'dense train -h' for training flags.")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	format := fs.String("format", "csv", "Dataset format: csv or idx")
	data := fs.String("data", "", "Training data file (CSV file, or gzipped IDX image file with -labels)")
	labels := fs.String("labels", "", "Gzipped IDX label file (idx format only)")
	evalData := fs.String("eval", "", "Optional evaluation data file")
	evalLabels := fs.String("eval-labels", "", "IDX label file for -eval (idx format only)")
	epochs := fs.Int("epochs", 3, "Number of training epochs")
	lr := fs.Float64("lr", 0.001, "Learning rate")
	hidden := fs.String("hidden-sizes", "16,16", "Comma-separated hidden layer sizes")
	alpha := fs.Float64("alpha", nn.DefaultAlpha, "LeakyReLU negative slope")
	seed := fs.Int64("seed", 1, "Seed for weight init and shuffling")
	samples := fs.Int("samples", 0, "Max training samples to load (0 = all)")
	classes := fs.Int("classes", dataset.DefaultClasses, "Number of target classes")
	noShuffle := fs.Bool("no-shuffle", false, "Disable per-epoch shuffling")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *data == "" {
		return fmt.Errorf("missing -data")
	}

	train, err := loadSet(*format, *data, *labels, *classes, *samples)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d training samples (%d pixels each)\n", len(train), train[0].Input.Rows())

	sizes, err := layerSizes(train[0].Input.Rows(), *hidden, *classes)
	if err != nil {
		return err
	}
	fmt.Printf("Network: %v, LeakyReLU alpha %g\n", sizes, *alpha)

	rng := rand.New(rand.NewSource(*seed))
	net, err := nn.FromSizes(sizes, nn.DenseConfig{Activation: nn.NewLeakyReLU(*alpha)}, rng)
	if err != nil {
		return err
	}

	tr := trainer.New(net, nn.MSE{}, trainer.Config{
		Epochs:       *epochs,
		LearningRate: *lr,
		Shuffle:      !*noShuffle,
		Seed:         *seed,
		Out:          os.Stdout,
	})
	if _, err := tr.Run(train); err != nil {
		return err
	}

	fmt.Printf("Training accuracy: %.2f%%\n", 100*trainer.Evaluate(net, train))

	if *evalData != "" {
		eval, err := loadSet(*format, *evalData, *evalLabels, *classes, 0)
		if err != nil {
			return err
		}
		fmt.Printf("Eval accuracy: %.2f%% (%d samples)\n", 100*trainer.Evaluate(net, eval), len(eval))
	}

	return nil
}

// loadSet loads one dataset in the selected format.
func loadSet(format, data, labels string, classes, maxSamples int) ([]dataset.Sample, error) {
	switch format {
	case "csv":
		return dataset.LoadCSV(data, classes, maxSamples)
	case "idx":
		if labels == "" {
			return nil, fmt.Errorf("idx format needs a label file")
		}
		return dataset.LoadIDX(data, labels, classes, maxSamples)
	default:
		return nil, fmt.Errorf("unknown format %q (want csv or idx)", format)
	}
}

// layerSizes assembles the full size chain: input, hidden layers, classes.
func layerSizes(inputDim int, hidden string, classes int) ([]int, error) {
	sizes := []int{inputDim}
	for _, part := range strings.Split(hidden, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid hidden size %q", part)
		}
		sizes = append(sizes, n)
	}
	return append(sizes, classes), nil
}
