// Package matrix_test: tests for the convenience constructors and the
// MaxDiff verification metric.
package matrix_test

import (
	"testing"

	"github.com/rtreacy87/Matrix-Computations/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewIdentity checks diagonal ones, off-diagonal zeros, and dimension validation.
func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := id.At(i, j)
			require.NoError(t, aerr)
			if i == j {
				require.Equal(t, 1.0, v) // diagonal entry
			} else {
				require.Zero(t, v) // off-diagonal entry
			}
		}
	}

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromRows checks construction from a rectangular slice and
// rejection of empty or ragged input.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v) // last element landed at (1,2)

	_, err = matrix.NewDenseFromRows(nil) // empty outer slice
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}}) // empty row
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}}) // ragged rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestZerosLike checks shape propagation and the nil guard.
func TestZerosLike(t *testing.T) {
	m, err := matrix.NewDense(4, 7)
	require.NoError(t, err)
	_ = m.Set(0, 0, 3.0)

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	require.Equal(t, 4, z.Rows())
	require.Equal(t, 7, z.Cols())

	v, err := z.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v) // zeroed, not copied

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMaxDiff checks the metric value and its error cases.
func TestMaxDiff(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float64{{1, 2.5}, {2, 4}})
	require.NoError(t, err)

	diff, err := matrix.MaxDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, diff) // |3-2| dominates |2-2.5|

	diff, err = matrix.MaxDiff(a, a)
	require.NoError(t, err)
	require.Zero(t, diff) // a matrix matches itself exactly

	other, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.MaxDiff(a, other) // shape mismatch
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MaxDiff(nil, a) // nil operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
