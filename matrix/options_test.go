package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matdiff/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(
		matrix.WithNoValidateNaNInf(),
		matrix.WithEpsilon(1e-3),
		matrix.WithValidateNaNInf(),
	)
	require.True(t, o.ValidateNaNInf())
	require.Equal(t, 1e-3, o.Epsilon())
}

func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
