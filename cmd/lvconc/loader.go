// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvconc/matrix"
	"gopkg.in/yaml.v3"
)

var errMatrixFile = errors.New("lvconc: bad matrix file")

// matrixFile is the on-disk form of an operand. Either rows/cols/data
// (row-major) or values (nested rows) must be given, not both.
//
//	rows: 2
//	cols: 3
//	data: [1, 2, 3, 4, 5, 6]
//
//	values:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
type matrixFile struct {
	Rows   *int        `yaml:"rows"`
	Cols   *int        `yaml:"cols"`
	Data   []float64   `yaml:"data"`
	Values [][]float64 `yaml:"values"`
}

func loadMatrixFile(path string) (*matrix.Dense[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := decodeMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func decodeMatrix(r io.Reader) (*matrix.Dense[float64], error) {
	var mf matrixFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("%w: %w", errMatrixFile, err)
	}

	if mf.Values != nil {
		if mf.Rows != nil || mf.Cols != nil || mf.Data != nil {
			return nil, fmt.Errorf("%w: values cannot be combined with rows/cols/data", errMatrixFile)
		}
		return fromValues(mf.Values)
	}
	if mf.Rows == nil || mf.Cols == nil {
		return nil, fmt.Errorf("%w: rows and cols are required", errMatrixFile)
	}

	return matrix.NewDense(mf.Data, *mf.Rows, *mf.Cols)
}

func fromValues(values [][]float64) (*matrix.Dense[float64], error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	data := make([]float64, 0, rows*cols)
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", errMatrixFile, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return matrix.NewDense(data, rows, cols)
}
