package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCSV writes content to a temp file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "label,pixel0,pixel1,pixel2\n5,0,128,255\n0,255,0,0\n")

	samples, err := LoadCSV(path, 10, 0)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	s := samples[0]
	assert.Equal(t, 5, s.Label)
	require.Equal(t, 3, s.Input.Rows())
	assert.Equal(t, 0.0, s.Input.At(0, 0))
	assert.InDelta(t, 128.0/255.0, s.Input.At(1, 0), 1e-12)
	assert.Equal(t, 1.0, s.Input.At(2, 0))

	require.Equal(t, 10, s.Target.Rows())
	assert.Equal(t, 1.0, s.Target.At(5, 0))
	assert.Equal(t, 0.0, s.Target.At(0, 0))

	assert.Equal(t, 0, samples[1].Label)
}

func TestLoadCSV_NoHeader(t *testing.T) {
	path := writeCSV(t, "3,10,20\n1,30,40\n")

	samples, err := LoadCSV(path, 10, 0)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 3, samples[0].Label)
}

func TestLoadCSV_MaxSamples(t *testing.T) {
	path := writeCSV(t, "0,1\n1,2\n2,3\n3,4\n")

	samples, err := LoadCSV(path, 10, 2)
	require.NoError(t, err)
	assert.Len(t, samples, 2)
}

func TestLoadCSV_DefaultClasses(t *testing.T) {
	path := writeCSV(t, "9,1\n")

	samples, err := LoadCSV(path, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultClasses, samples[0].Target.Rows())
}

func TestLoadCSV_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"header only", "label,pixel0\n"},
		{"bad label", "x,1,2\ny,3,4\n"},
		{"label out of range", "12,1,2\n"},
		{"negative label", "-1,1,2\n"},
		{"bad pixel", "3,1,oops\n"},
		{"ragged record", "3,1,2\n4,1\n"},
		{"no pixels", "3\n4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)

			_, err := LoadCSV(path, 10, 0)
			require.Error(t, err)

			var fmtErr *FormatError
			assert.True(t, errors.As(err, &fmtErr), "error %v should be a *FormatError", err)
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"), 10, 0)
	assert.Error(t, err)
}

func TestLoadIDX_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadIDX(filepath.Join(dir, "imgs"), filepath.Join(dir, "labels"), 10, 0)
	require.Error(t, err)

	var fmtErr *FormatError
	assert.True(t, errors.As(err, &fmtErr))
}
