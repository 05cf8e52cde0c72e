// SPDX-License-Identifier: MIT

package matrix

import "math"

// TransformSize is the dimension of a homogeneous 3D transform (4×4).
// Its flattened form has TransformSize*TransformSize = 16 elements.
const TransformSize = 4

const opCompose = "Compose"

// NewTransform returns the 4×4 identity transform.
func NewTransform() *Dense {
	m, _ := NewIdentity(TransformSize) // TransformSize > 0, cannot fail

	return m
}

// Translation returns a transform moving points by (x, y, z).
// Row-major layout with the translation in the last row, matching the
// flattened order layout engines use (indices 12, 13, 14).
func Translation(x, y, z float64) *Dense {
	m := NewTransform()
	m.data[12], m.data[13], m.data[14] = x, y, z

	return m
}

// Scaling returns a transform scaling the axes by (x, y, z).
func Scaling(x, y, z float64) *Dense {
	m := NewTransform()
	m.data[0], m.data[5], m.data[10] = x, y, z

	return m
}

// RotationZ returns a transform rotating by rad radians around the z axis.
func RotationZ(rad float64) *Dense {
	m := NewTransform()
	sin, cos := math.Sincos(rad)
	m.data[0], m.data[1] = cos, sin
	m.data[4], m.data[5] = -sin, cos

	return m
}

// Compose multiplies the given transforms left to right (ts[0] × ts[1] × ...).
// With no arguments it returns the identity.
//
// Errors:
//   - ErrNilMatrix for a nil element, ErrNonSquare / ErrDimensionMismatch when
//     an element is not 4×4.
func Compose(ts ...Matrix) (*Dense, error) {
	acc := NewTransform()
	for _, t := range ts {
		if err := ValidateNotNil(t); err != nil {
			return nil, matrixErrorf(opCompose, err)
		}
		if err := ValidateSquare(t); err != nil {
			return nil, matrixErrorf(opCompose, err)
		}
		next, err := Mul(acc, t)
		if err != nil {
			return nil, matrixErrorf(opCompose, err)
		}
		acc = next
	}

	return acc, nil
}
