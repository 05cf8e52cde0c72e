// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and transform tests.
//   • Keep all data finite to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matdiff/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustFromFlat builds an r×c *Dense from row-major values or fails the test.
func MustFromFlat(t *testing.T, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromFlat(r, c, data)
	require.NoError(t, err)

	return m
}

// applyPoint maps the row vector (x, y, z, 1) through a 4×4 transform.
func applyPoint(t *testing.T, m matrix.Matrix, x, y, z float64) (float64, float64, float64) {
	t.Helper()
	p := MustFromFlat(t, 1, 4, x, y, z, 1)
	out, err := matrix.Mul(p, m)
	require.NoError(t, err)
	f := out.Flat()

	return f[0], f[1], f[2]
}
