// Package matrix_test contains unit tests for the Dense row-major
// implementation in the matrix package.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/rtreacy87/Matrix-Computations/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 5)                      // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsColsShape verifies Rows(), Cols() and Shape() return the construction sizes.
func TestRowsColsShape(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows()) // Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // Cols() equals expected cols

	gotRows, gotCols := m.Shape()
	require.Equal(t, rows, gotRows)
	require.Equal(t, cols, gotCols)
}

// TestNewDenseZeroInitialized checks every element starts at 0.0.
func TestNewDenseZeroInitialized(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			require.Zero(t, v) // freshly constructed matrix is all zeros
		}
	}
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                                // negative row index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.At(0, 2)                                 // column index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(2, 0, 1.23)                             // row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(0, -1, 4.56)                            // negative column index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err)

	val, err := m.At(1, 2) // retrieve the set element
	require.NoError(t, err)
	require.Equal(t, 7.89, val) // retrieved value matches set value
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone() // deep copy

	// modify the clone, but not the original
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal) // original remains unchanged

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal) // clone reflects new value
}

// TestZeroResets verifies Zero() clears every element in place.
func TestZeroResets(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 1, 5.0)
	_ = m.Set(1, 0, -5.0)

	m.Zero() // reset in place

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			require.Zero(t, v) // every element back to 0.0
		}
	}
}

// TestFillRandomRangeAndReproducibility checks the [-1,1) range and that an
// equal seed produces an identical fill (no hidden global RNG state).
func TestFillRandomRangeAndReproducibility(t *testing.T) {
	const seed = 42
	m1, err := matrix.NewDense(10, 10)
	require.NoError(t, err)
	m2, err := matrix.NewDense(10, 10)
	require.NoError(t, err)

	m1.FillRandom(rand.New(rand.NewSource(seed))) // first fill
	m2.FillRandom(rand.New(rand.NewSource(seed))) // second fill, same seed

	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			v1, aerr := m1.At(i, j)
			require.NoError(t, aerr)
			v2, aerr := m2.At(i, j)
			require.NoError(t, aerr)

			require.Equal(t, v1, v2)            // identical seeds give identical fills
			require.GreaterOrEqual(t, v1, -1.0) // lower bound inclusive
			require.Less(t, v1, 1.0)            // upper bound exclusive
		}
	}

	diff, err := matrix.MaxDiff(m1, m2)
	require.NoError(t, err)
	require.Zero(t, diff) // whole-buffer agreement
}

// TestRowAliasesStorage verifies Row() returns a live view into the matrix
// and nil for out-of-range indices.
func TestRowAliasesStorage(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	row := m.Row(1)
	require.Len(t, row, 3) // one full row

	row[2] = 9.5 // write through the view

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 9.5, v) // write is visible through At

	require.Nil(t, m.Row(-1)) // below range
	require.Nil(t, m.Row(2))  // above range
}

// TestStringOutput checks that String() formats the matrix row per line.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
