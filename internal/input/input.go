// SPDX-License-Identifier: MIT

// Package input loads matrices for the matdiff CLI from YAML or JSON files.
//
// Accepted shapes:
//
//	[1, 0, 0, 1]            # flat, row-major
//	[[1, 0], [0, 1]]        # rows of equal length
//
// JSON documents parse through the same YAML decoder.
package input

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matdiff/matrix"
)

var (
	// ErrEmpty is returned for a document with no elements.
	ErrEmpty = errors.New("input: empty matrix")

	// ErrRagged is returned when nested rows have different lengths.
	ErrRagged = errors.New("input: rows have different lengths")

	// ErrNotNumeric is returned for elements that are not numbers.
	ErrNotNumeric = errors.New("input: element is not a number")
)

// Matrix is a parsed document: Data in row-major order and its shape.
// Flat documents report Rows == 0.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// Parse decodes data into a Matrix.
func Parse(data []byte) (Matrix, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Matrix{}, fmt.Errorf("input: decode: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Matrix{}, ErrEmpty
	}

	seq := root.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return Matrix{}, fmt.Errorf("input: line %d: top level must be a list: %w", seq.Line, ErrNotNumeric)
	}
	if len(seq.Content) == 0 {
		return Matrix{}, ErrEmpty
	}

	if seq.Content[0].Kind != yaml.SequenceNode {
		flat, err := scalars(seq)
		if err != nil {
			return Matrix{}, err
		}

		return Matrix{Cols: len(flat), Data: flat}, nil
	}

	out := Matrix{Rows: len(seq.Content)}
	for i, row := range seq.Content {
		if row.Kind != yaml.SequenceNode {
			return Matrix{}, fmt.Errorf("input: row %d: %w", i, ErrRagged)
		}
		vals, err := scalars(row)
		if err != nil {
			return Matrix{}, fmt.Errorf("input: row %d: %w", i, err)
		}
		if i == 0 {
			out.Cols = len(vals)
		} else if len(vals) != out.Cols {
			return Matrix{}, fmt.Errorf("input: row %d has %d elements, want %d: %w", i, len(vals), out.Cols, ErrRagged)
		}
		out.Data = append(out.Data, vals...)
	}
	if out.Cols == 0 {
		return Matrix{}, ErrEmpty
	}

	return out, nil
}

// scalars decodes a sequence of numeric scalars.
func scalars(seq *yaml.Node) ([]float64, error) {
	out := make([]float64, 0, len(seq.Content))
	for _, n := range seq.Content {
		var v float64
		if n.Kind != yaml.ScalarNode || n.Decode(&v) != nil {
			return nil, fmt.Errorf("input: line %d col %d: %w", n.Line, n.Column, ErrNotNumeric)
		}
		out = append(out, v)
	}

	return out, nil
}

// Load reads and parses the file at path, returning its row-major elements.
func Load(path string) ([]float64, error) {
	m, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	return m.Data, nil
}

// LoadDense reads the file at path into a *matrix.Dense. A flat list of 16
// elements becomes a 4×4 transform; any other flat list becomes 1×n.
func LoadDense(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	m, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	rows, cols := m.Rows, m.Cols
	if rows == 0 {
		rows = 1
		if size := matrix.TransformSize; cols == size*size {
			rows, cols = size, size
		}
	}

	d, err := matrix.NewFromFlat(rows, cols, m.Data, opts...)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}

	return d, nil
}

func loadFile(path string) (Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("input: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
