// Package export writes embedding matrices to disk.
package export

import (
	"errors"
	"fmt"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies N equally sized vectors into an N×D matrix.
func ToDense(vectors [][]float32) (*mat.Dense, error) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, errors.New("no embeddings to export")
	}
	rows, cols := len(vectors), len(vectors[0])
	data := make([]float64, 0, rows*cols)
	for i, v := range vectors {
		if len(v) != cols {
			return nil, fmt.Errorf("embedding %d has dimension %d, expected %d", i, len(v), cols)
		}
		for _, x := range v {
			data = append(data, float64(x))
		}
	}
	return mat.NewDense(rows, cols, data), nil
}

// WriteNPY stores vectors as a 2-D NumPy array at path, replacing any existing file.
func WriteNPY(path string, vectors [][]float32) error {
	m, err := ToDense(vectors)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := npyio.Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
