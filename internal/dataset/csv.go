package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dense-ml/dense/internal/matrix"
)

// LoadCSV loads a labeled image dataset from a Kaggle-style CSV file:
//
//	label,pixel0,pixel1,...,pixelN
//	5,0,0,12,...,0
//
// A header row is skipped if the first field is not an integer. The pixel
// count is taken from the first data record; every record must match it.
// Pixels are normalized from [0, 255] to [0, 1].
//
// Parameters:
//   - path: CSV file path
//   - classes: number of target classes (<= 0 selects DefaultClasses)
//   - maxSamples: cap on loaded samples (0 = load all)
//
// Any malformed record aborts the load with a *FormatError.
func LoadCSV(path string, classes, maxSamples int) ([]Sample, error) {
	if classes <= 0 {
		classes = DefaultClasses
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &FormatError{Path: path, Detail: "reading CSV", Err: err}
	}
	if len(records) == 0 {
		return nil, &FormatError{Path: path, Detail: "empty file"}
	}

	// Header rows start with a non-numeric field like "label".
	if _, err := strconv.Atoi(records[0][0]); err != nil {
		records = records[1:]
		if len(records) == 0 {
			return nil, &FormatError{Path: path, Detail: "no records after header"}
		}
	}

	if maxSamples > 0 && len(records) > maxSamples {
		records = records[:maxSamples]
	}

	pixels := len(records[0]) - 1
	if pixels <= 0 {
		return nil, &FormatError{Path: path, Record: 1, Detail: "record has no pixel columns"}
	}

	samples := make([]Sample, len(records))
	for i, record := range records {
		if len(record) != pixels+1 {
			return nil, &FormatError{
				Path: path, Record: i + 1,
				Detail: fmt.Sprintf("got %d fields, want %d", len(record), pixels+1),
			}
		}

		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, &FormatError{Path: path, Record: i + 1, Detail: "invalid label", Err: err}
		}
		target, err := OneHot(label, classes)
		if err != nil {
			return nil, &FormatError{Path: path, Record: i + 1, Err: err}
		}

		input, err := matrix.New(pixels, 1)
		if err != nil {
			return nil, err
		}
		data := input.Data()
		for j := 0; j < pixels; j++ {
			p, err := strconv.Atoi(record[j+1])
			if err != nil {
				return nil, &FormatError{
					Path: path, Record: i + 1,
					Detail: fmt.Sprintf("invalid pixel %d", j), Err: err,
				}
			}
			data[j] = float64(p) / 255.0
		}

		samples[i] = Sample{Input: input, Target: target, Label: label}
	}

	return samples, nil
}
