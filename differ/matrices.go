// SPDX-License-Identifier: MIT

package differ

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matdiff/matrix"
)

const opWithin = "MatricesDifferWithin"

// Differs reports whether prev and next differ in length or in any element.
// MAIN DESCRIPTION:
//   - Stage 1: nil vs non-nil differs; nil vs nil does not.
//   - Stage 2: length mismatch differs without scanning.
//   - Stage 3: scan in index order, returning on the first prev[i] != next[i].
//
// Complexity:
//   - Time O(n) worst case, O(1) on length mismatch; no allocation.
func Differs[T comparable](prev, next []T) bool {
	if (prev == nil) != (next == nil) {
		return true
	}
	if len(prev) != len(next) {
		return true
	}
	for i := range prev {
		if prev[i] != next[i] {
			return true
		}
	}

	return false
}

// MatricesDiffer reports whether two flattened matrices differ.
// Typical inputs are 16-element 4×4 transforms, but any length is accepted.
//
//	MatricesDiffer([]float64{1}, []float64{2})             // true
//	MatricesDiffer([]float64{1, 1}, []float64{1, 1})       // false
//	MatricesDiffer([]float64{1, 1, 1}, []float64{1, 1})    // true
func MatricesDiffer(prev, next []float64) bool {
	return Differs(prev, next)
}

// MatricesDifferWithin is MatricesDiffer with an absolute tolerance:
// elements differ when |prev[i]-next[i]| > eps. NaN elements always differ.
//
// Errors:
//   - matrix.ErrNaNInf when eps is NaN or ±Inf.
//   - ErrNegativeTolerance when eps < 0.
func MatricesDifferWithin(prev, next []float64, eps float64) (bool, error) {
	if err := ValidateTolerance(eps); err != nil {
		return false, fmt.Errorf("%s: %w", opWithin, err)
	}
	if (prev == nil) != (next == nil) || len(prev) != len(next) {
		return true, nil
	}
	for i := range prev {
		// Negated form so a NaN on either side counts as a change.
		if !(math.Abs(prev[i]-next[i]) <= eps) {
			return true, nil
		}
	}

	return false, nil
}

// ValidateTolerance accepts finite eps >= 0.
// Errors: matrix.ErrNaNInf for NaN/±Inf, ErrNegativeTolerance for eps < 0.
func ValidateTolerance(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return matrix.ErrNaNInf
	}
	if eps < 0 {
		return ErrNegativeTolerance
	}

	return nil
}

// Indices returns every position where prev and next disagree, ascending.
// Positions present in only one slice count as mismatched. Returns nil when
// MatricesDiffer(prev, next) is false.
//
// nil vs an empty slice differs but has no mismatched position, so the
// result is an empty, non-nil slice. Callers should test MatricesDiffer
// rather than len(Indices(...)).
// Complexity: O(max(len(prev), len(next))); allocates the result.
func Indices(prev, next []float64) []int {
	if !MatricesDiffer(prev, next) {
		return nil
	}

	n := max(len(prev), len(next))
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i >= len(prev) || i >= len(next) || prev[i] != next[i] {
			out = append(out, i)
		}
	}

	return out
}

// DenseDiffer compares two matrix.Matrix values: nil handling as in
// MatricesDiffer, any shape mismatch differs, otherwise element scan in
// row-major order via At, so no operand is copied.
func DenseDiffer(prev, next matrix.Matrix) bool {
	prevNil := matrix.ValidateNotNil(prev) != nil
	nextNil := matrix.ValidateNotNil(next) != nil
	if prevNil || nextNil {
		return prevNil != nextNil
	}
	if matrix.ValidateSameShape(prev, next) != nil {
		return true
	}

	r, c := prev.Rows(), prev.Cols()
	var pv, nv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			pv, _ = prev.At(i, j)
			nv, _ = next.At(i, j)
			if pv != nv {
				return true
			}
		}
	}

	return false
}

// DenseDifferWithin is DenseDiffer with an absolute tolerance taken from
// the resolved options (matrix.WithEpsilon; matrix.DefaultEpsilon when unset).
// Elements differ when |prev(i,j)-next(i,j)| > eps; NaN always differs.
func DenseDifferWithin(prev, next matrix.Matrix, opts ...matrix.Option) bool {
	prevNil := matrix.ValidateNotNil(prev) != nil
	nextNil := matrix.ValidateNotNil(next) != nil
	if prevNil || nextNil {
		return prevNil != nextNil
	}
	if matrix.ValidateSameShape(prev, next) != nil {
		return true
	}

	eps := matrix.NewMatrixOptions(opts...).Epsilon()
	r, c := prev.Rows(), prev.Cols()
	var pv, nv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			pv, _ = prev.At(i, j)
			nv, _ = next.At(i, j)
			if !(math.Abs(pv-nv) <= eps) {
				return true
			}
		}
	}

	return false
}
