// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major Dense matrix and the 4×4
// transform helpers used to produce the flattened matrices compared by
// package differ.
//
// What:
//
//   - Matrix interface with bounds-checked At/Set and deep Clone.
//   - Dense: contiguous row-major storage (offset = i*cols + j), Flat()
//     exports the same order the differ consumes.
//   - Mul, Transpose and AllClose for composing and checking transforms.
//   - NewTransform, Translation, Scaling, RotationZ and Compose for 4×4
//     homogeneous transforms.
//
// Numeric policy:
//
//	By default Set and NewFromFlat reject NaN and ±Inf (ErrNaNInf), so a
//	Dense never holds a value that compares unequal to itself.
//
// Complexity:
//
//	At/Set O(1); Clone/Flat O(r*c); Mul O(r*n*c).
package matrix
