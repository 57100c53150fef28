package dataset

import (
	"fmt"

	mnist "github.com/petar/GoMNIST"
)

// LoadIDX loads a labeled image dataset from a pair of official MNIST IDX
// files as distributed (gzip-compressed, e.g. train-images-idx3-ubyte.gz and
// train-labels-idx1-ubyte.gz), using the GoMNIST reader for the binary
// format. Pixels are normalized to [0, 1] and
// labels are one-hot encoded over classes.
//
// Parameters:
//   - imagePath: IDX image file
//   - labelPath: IDX label file
//   - classes: number of target classes (<= 0 selects DefaultClasses)
//   - maxSamples: cap on loaded samples (0 = load all)
//
// Read failures and image/label count mismatches surface as *FormatError.
func LoadIDX(imagePath, labelPath string, classes, maxSamples int) ([]Sample, error) {
	if classes <= 0 {
		classes = DefaultClasses
	}

	rows, cols, images, err := mnist.ReadImageFile(imagePath)
	if err != nil {
		return nil, &FormatError{Path: imagePath, Detail: "reading IDX images", Err: err}
	}
	labels, err := mnist.ReadLabelFile(labelPath)
	if err != nil {
		return nil, &FormatError{Path: labelPath, Detail: "reading IDX labels", Err: err}
	}

	if len(images) != len(labels) {
		return nil, &FormatError{
			Path:   imagePath,
			Detail: fmt.Sprintf("image count %d != label count %d", len(images), len(labels)),
		}
	}

	n := len(images)
	if maxSamples > 0 && n > maxSamples {
		n = maxSamples
	}

	imageSize := rows * cols
	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		if len(images[i]) != imageSize {
			return nil, &FormatError{
				Path: imagePath, Record: i + 1,
				Detail: fmt.Sprintf("image has %d pixels, want %d", len(images[i]), imageSize),
			}
		}

		input, err := inputFromPixels(images[i])
		if err != nil {
			return nil, err
		}
		target, err := OneHot(int(labels[i]), classes)
		if err != nil {
			return nil, &FormatError{Path: labelPath, Record: i + 1, Err: err}
		}

		samples[i] = Sample{Input: input, Target: target, Label: int(labels[i])}
	}

	return samples, nil
}
