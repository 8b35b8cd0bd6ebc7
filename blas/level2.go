// SPDX-License-Identifier: MIT
// Package blas: level-2 operations (matrix-vector).
// The row/column gaxpy pair is the storage-orientation experiment from the
// book: same arithmetic, transposed traversal of A.

package blas

import (
	"errors"

	"github.com/rtreacy87/Matrix-Computations/matrix"
)

// ErrUnknownOrientation indicates an Orientation value outside the closed
// enumeration handed to GaxpyKernel.
var ErrUnknownOrientation = errors.New("blas: unknown orientation")

// VectorKernel is the uniform signature of the matrix-vector variants:
// y = y + A·x, mutating y in place.
type VectorKernel func(a *matrix.Dense, x, y []float64) error

// Orientation selects how a gaxpy traverses A.
type Orientation int

const (
	// RowOriented sweeps A row by row (contiguous for row-major storage).
	RowOriented Orientation = iota
	// ColumnOriented sweeps A column by column (strided for row-major).
	ColumnOriented
)

// orientationNames is indexed by Orientation; keep in sync with the consts.
var orientationNames = [...]string{"row-oriented", "column-oriented"}

// String returns the conventional name of the orientation.
func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return "unknown"
	}

	return orientationNames[o]
}

// GaxpyKernel returns the VectorKernel implementing o.
// Errors: ErrUnknownOrientation for values outside the enumeration.
func GaxpyKernel(o Orientation) (VectorKernel, error) {
	switch o {
	case RowOriented:
		return GaxpyRow, nil
	case ColumnOriented:
		return GaxpyCol, nil
	default:
		return nil, ErrUnknownOrientation
	}
}

// validateGaxpy guards the y += A·x triple shared by both orientations:
// A must be non-nil, x must match A's columns, y must match A's rows.
// Returns plain sentinels for the caller to wrap.
func validateGaxpy(a *matrix.Dense, x, y []float64) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(x, a.Cols()); err != nil {
		return err
	}

	return matrix.ValidateVecLen(y, a.Rows())
}

// GaxpyRow computes y = y + A·x row by row: the inner j loop walks row i of
// A at consecutive addresses and accumulates a dot product into y[i].
// Best orientation for row-major storage.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrBadVectorLength.
// Complexity: O(m·n) time, O(1) extra memory.
func GaxpyRow(a *matrix.Dense, x, y []float64) error {
	if err := validateGaxpy(a, x, y); err != nil {
		return blasErrorf(opGaxpy, err)
	}
	rows, cols := a.Shape()

	var i, j int
	var ar []float64
	for i = 0; i < rows; i++ {
		ar = a.Row(i) // contiguous row sweep
		for j = 0; j < cols; j++ {
			y[i] += ar[j] * x[j]
		}
	}

	return nil
}

// GaxpyCol computes y = y + A·x column by column: the inner i loop is a
// saxpy of column j of A (scaled by x[j]) into y, striding a full row
// length between consecutive accesses. Best orientation for column-major
// storage; the control group on row-major.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrBadVectorLength.
// Complexity: O(m·n) time, O(1) extra memory.
func GaxpyCol(a *matrix.Dense, x, y []float64) error {
	if err := validateGaxpy(a, x, y); err != nil {
		return blasErrorf(opGaxpy, err)
	}
	rows, cols := a.Shape()

	var i, j int
	var xj float64
	for j = 0; j < cols; j++ {
		xj = x[j] // scalar multiplier for column j
		for i = 0; i < rows; i++ {
			y[i] += a.Row(i)[j] * xj // strided walk down column j
		}
	}

	return nil
}

// Gaxpy computes the matrix form Y = Y + A·X: one column gaxpy per column
// of X, in the book's j→k→i order with X(k,j) hoisted per inner sweep.
// Shapes: A is m×n, X is n×p, Y is m×p.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·n·p) time, O(1) extra memory.
func Gaxpy(y, a, x *matrix.Dense) error {
	// Same triple contract as GEMM: Y += A·X
	if err := matrix.ValidateMulCompatible(a, x, y); err != nil {
		return blasErrorf(opGaxpy, err)
	}
	rows, cols := a.Shape()
	p := x.Cols()

	var i, j, k int
	var xkj float64
	for j = 0; j < p; j++ {
		for k = 0; k < cols; k++ {
			xkj = x.Row(k)[j]
			for i = 0; i < rows; i++ {
				y.Row(i)[j] += a.Row(i)[k] * xkj
			}
		}
	}

	return nil
}

// OuterUpdate computes the rank-1 update A = A + x·yᵀ in place.
// Shapes: A is m×n, x has length m, y has length n.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrBadVectorLength.
// Complexity: O(m·n) time, O(1) extra memory.
func OuterUpdate(a *matrix.Dense, x, y []float64) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return blasErrorf(opOuter, err)
	}
	if err := matrix.ValidateVecLen(x, a.Rows()); err != nil {
		return blasErrorf(opOuter, err)
	}
	if err := matrix.ValidateVecLen(y, a.Cols()); err != nil {
		return blasErrorf(opOuter, err)
	}
	rows := a.Rows()

	var i, j int
	var xi float64
	var ar []float64
	for i = 0; i < rows; i++ {
		xi = x[i]
		ar = a.Row(i) // row i updated contiguously
		for j = range y {
			ar[j] += xi * y[j]
		}
	}

	return nil
}
