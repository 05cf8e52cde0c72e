// SPDX-License-Identifier: MIT

// Package differ decides whether a cached layout value changed between two
// passes, so the caller can skip recomputing what did not move.
//
// The central operation is MatricesDiffer, which compares two flattened
// transform matrices element by element:
//
//   - different lengths differ immediately;
//   - otherwise the first index with prev[i] != next[i] ends the scan;
//   - a full scan with no mismatch means the matrices are equal.
//
// A nil slice means "no previous value" and differs from every non-nil
// slice, even an empty one. Comparison is strict: NaN never equals itself.
//
// Sibling differs cover the other small geometric values a layout pass
// caches: PointsDiffer, SizesDiffer and InsetsDiffer. DenseDiffer compares
// matrix.Matrix values, MatricesDifferWithin tolerates rounding noise, and
// Indices reports every mismatched position for diagnostics.
//
// All functions are pure, allocation-free unless documented otherwise, and
// safe for concurrent use.
package differ
