// Package differ_test contains unit tests for the matrix differs.
package differ_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matdiff/differ"
	"github.com/katalvlaran/matdiff/matrix"
	"github.com/stretchr/testify/require"
)

// ones returns a slice of n ones.
func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

// TestMatricesDifferSingleElement covers one-element matrices.
func TestMatricesDifferSingleElement(t *testing.T) {
	require.True(t, differ.MatricesDiffer([]float64{1}, []float64{2}))
	require.False(t, differ.MatricesDiffer([]float64{1}, []float64{1}))
}

// TestMatricesDifferFourElements covers a difference in the last slot.
func TestMatricesDifferFourElements(t *testing.T) {
	require.True(t, differ.MatricesDiffer([]float64{1, 1, 1, 1}, []float64{1, 1, 1, 2}))
}

// TestMatricesDiffer16 covers full 4×4 transforms.
func TestMatricesDiffer16(t *testing.T) {
	require.False(t, differ.MatricesDiffer(ones(16), ones(16)))

	y := ones(16)
	y[14] = 2
	require.True(t, differ.MatricesDiffer(ones(16), y))

	y = ones(16)
	y[0] = 2
	require.True(t, differ.MatricesDiffer(ones(16), y))
}

// TestMatricesDifferTable exercises lengths, nil and symmetry together.
func TestMatricesDifferTable(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want bool
	}{
		{"empty vs empty", []float64{}, []float64{}, false},
		{"nil vs nil", nil, nil, false},
		{"nil vs empty", nil, []float64{}, true},
		{"nil vs value", nil, []float64{1}, true},
		{"shorter prefix", []float64{1, 2}, []float64{1, 2, 3}, true},
		{"same values", []float64{0.5, -3, 7}, []float64{0.5, -3, 7}, false},
		{"negative zero", []float64{0}, []float64{math.Copysign(0, -1)}, false},
		{"middle differs", []float64{1, 2, 3}, []float64{1, 9, 3}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, differ.MatricesDiffer(tc.a, tc.b))
			require.Equal(t, tc.want, differ.MatricesDiffer(tc.b, tc.a)) // symmetric
		})
	}
}

// TestMatricesDifferReflexive checks that a slice never differs from itself.
func TestMatricesDifferReflexive(t *testing.T) {
	for n := 0; n <= 16; n++ {
		a := make([]float64, n)
		for i := range a {
			a[i] = float64(i) * 0.25
		}
		require.False(t, differ.MatricesDiffer(a, a), "n=%d", n)
	}
}

// TestMatricesDifferNaN documents strict comparison.
func TestMatricesDifferNaN(t *testing.T) {
	a := []float64{1, math.NaN()}
	require.True(t, differ.MatricesDiffer(a, a))
}

// TestDiffersGeneric runs the generic form over non-float elements.
func TestDiffersGeneric(t *testing.T) {
	require.False(t, differ.Differs([]string{"a", "b"}, []string{"a", "b"}))
	require.True(t, differ.Differs([]string{"a", "b"}, []string{"a", "c"}))
	require.True(t, differ.Differs([]int{1}, []int{1, 1}))
}

// TestMatricesDifferWithin checks tolerance handling and argument errors.
func TestMatricesDifferWithin(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2 + 1e-12, 3}

	got, err := differ.MatricesDifferWithin(a, b, 1e-9)
	require.NoError(t, err)
	require.False(t, got)

	got, err = differ.MatricesDifferWithin(a, b, 0)
	require.NoError(t, err)
	require.True(t, got)

	got, err = differ.MatricesDifferWithin(a, a[:2], 1)
	require.NoError(t, err)
	require.True(t, got)

	got, err = differ.MatricesDifferWithin([]float64{math.NaN()}, []float64{math.NaN()}, 1)
	require.NoError(t, err)
	require.True(t, got)

	_, err = differ.MatricesDifferWithin(a, b, -1)
	require.ErrorIs(t, err, differ.ErrNegativeTolerance)

	_, err = differ.MatricesDifferWithin(a, b, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestIndices reports every mismatched position.
func TestIndices(t *testing.T) {
	require.Nil(t, differ.Indices(ones(16), ones(16)))
	require.Nil(t, differ.Indices(nil, nil))

	y := ones(16)
	y[0], y[14] = 2, 2
	require.Equal(t, []int{0, 14}, differ.Indices(ones(16), y))

	require.Equal(t, []int{1, 2}, differ.Indices([]float64{1, 5}, []float64{1, 2, 3}))
	require.Equal(t, []int{}, differ.Indices(nil, []float64{}))
}

// TestDenseDiffer compares matrix.Matrix values.
func TestDenseDiffer(t *testing.T) {
	a := matrix.Translation(1, 2, 3)
	b := matrix.Translation(1, 2, 3)
	require.False(t, differ.DenseDiffer(a, b))

	require.NoError(t, b.Set(3, 2, 4))
	require.True(t, differ.DenseDiffer(a, b))
	require.True(t, differ.DenseDiffer(b, a))

	flat, err := matrix.NewFromFlat(1, 16, a.Flat())
	require.NoError(t, err)
	require.True(t, differ.DenseDiffer(a, flat)) // same elements, different shape

	var nilDense *matrix.Dense
	require.False(t, differ.DenseDiffer(nil, nil))
	require.False(t, differ.DenseDiffer(nilDense, nil))
	require.True(t, differ.DenseDiffer(nil, a))
	require.True(t, differ.DenseDiffer(a, nilDense))
}

// TestValidateTolerance covers the accepted range.
func TestValidateTolerance(t *testing.T) {
	require.NoError(t, differ.ValidateTolerance(0))
	require.NoError(t, differ.ValidateTolerance(1e-6))
	require.ErrorIs(t, differ.ValidateTolerance(-1e-6), differ.ErrNegativeTolerance)
	require.ErrorIs(t, differ.ValidateTolerance(math.NaN()), matrix.ErrNaNInf)
}

// TestIndicesNilVersusEmpty documents the differing-but-no-position case.
func TestIndicesNilVersusEmpty(t *testing.T) {
	require.True(t, differ.MatricesDiffer(nil, []float64{}))
	got := differ.Indices(nil, []float64{})
	require.NotNil(t, got)
	require.Empty(t, got)
}

// TestDenseDifferWithin checks that the epsilon option drives the comparison.
func TestDenseDifferWithin(t *testing.T) {
	a, err := matrix.NewFromFlat(1, 2, []float64{1, 2})
	require.NoError(t, err)
	b, err := matrix.NewFromFlat(1, 2, []float64{1, 2.5})
	require.NoError(t, err)

	require.True(t, differ.DenseDifferWithin(a, b))                          // DefaultEpsilon
	require.True(t, differ.DenseDifferWithin(a, b, matrix.WithEpsilon(0.1))) // 0.5 > 0.1
	require.False(t, differ.DenseDifferWithin(a, b, matrix.WithEpsilon(0.5)))
	require.False(t, differ.DenseDifferWithin(b, a, matrix.WithEpsilon(1)))

	tiny, err := matrix.NewFromFlat(1, 2, []float64{1, 2 + 1e-12})
	require.NoError(t, err)
	require.False(t, differ.DenseDifferWithin(a, tiny)) // within DefaultEpsilon
	require.True(t, differ.DenseDiffer(a, tiny))        // exact form still sees it

	col, err := matrix.NewFromFlat(2, 1, []float64{1, 2})
	require.NoError(t, err)
	require.True(t, differ.DenseDifferWithin(a, col, matrix.WithEpsilon(10))) // shape wins

	var nilDense *matrix.Dense
	require.False(t, differ.DenseDifferWithin(nil, nilDense))
	require.True(t, differ.DenseDifferWithin(a, nil))

	lax, err := matrix.NewFromFlat(1, 2, []float64{1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, differ.DenseDifferWithin(lax, lax, matrix.WithEpsilon(1)))
}
