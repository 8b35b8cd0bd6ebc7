// SPDX-License-Identifier: MIT
// Package gemm: the six unblocked loop orderings.
//
// Purpose:
//   - Implement C += A·B as a direct triple loop in each of the 3! index
//     nestings, with identical validation and identical arithmetic, so the
//     only variable between them is the memory access pattern.
//
// Notes:
//   - Kernels read rows through Dense.Row, which aliases the flat row-major
//     storage; an ordering whose innermost index walks a row therefore
//     touches consecutive addresses, and an ordering whose innermost index
//     walks a column re-fetches a fresh row slice every iteration. That
//     asymmetry is the experiment.
//   - All orderings accumulate: C is never zeroed here. Callers that want
//     C = A·B start from a zeroed C (Dense.Zero).

package gemm

import (
	"fmt"

	"github.com/rtreacy87/Matrix-Computations/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opIJK      = "MultiplyIJK"
	opJIK      = "MultiplyJIK"
	opIKJ      = "MultiplyIKJ"
	opJKI      = "MultiplyJKI"
	opKIJ      = "MultiplyKIJ"
	opKJI      = "MultiplyKJI"
	opIKJSaxpy = "MultiplyIKJSaxpy"
	opBlocked  = "MultiplyBlocked"
)

// gemmErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func gemmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MultiplyIJK computes C += A·B in ijk order — the dot-product formulation.
// Each C(i,j) is finished before the next is touched: the inner k loop is a
// dot product of row i of A with column j of B.
//
// Access patterns (row-major):
//   - A: row-by-row (good)
//   - B: column-by-column (bad — one stride per k)
//   - C: element-by-element
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·n·r) time, O(1) extra memory.
func MultiplyIJK(a, b, c *matrix.Dense) error {
	// Validate the full GEMM triple before touching C
	if err := matrix.ValidateMulCompatible(a, b, c); err != nil {
		return gemmErrorf(opIJK, err)
	}
	m, r := a.Shape()
	n := b.Cols()

	var i, j, k int
	var ar, cr []float64
	for i = 0; i < m; i++ {
		ar = a.Row(i) // row i of A, contiguous
		cr = c.Row(i) // row i of C, contiguous
		for j = 0; j < n; j++ {
			for k = 0; k < r; k++ {
				cr[j] += ar[k] * b.Row(k)[j] // B walked down column j
			}
		}
	}

	return nil
}

// MultiplyJIK computes C += A·B in jik order — the same dot products as ijk,
// produced column of C by column of C.
//
// Access patterns (row-major):
//   - A: row-by-row (good)
//   - B: column-by-column (bad)
//   - C: column-by-column (bad)
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·n·r) time, O(1) extra memory.
func MultiplyJIK(a, b, c *matrix.Dense) error {
	if err := matrix.ValidateMulCompatible(a, b, c); err != nil {
		return gemmErrorf(opJIK, err)
	}
	m, r := a.Shape()
	n := b.Cols()

	var i, j, k int
	var ar []float64
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			ar = a.Row(i)
			for k = 0; k < r; k++ {
				c.Row(i)[j] += ar[k] * b.Row(k)[j]
			}
		}
	}

	return nil
}

// MultiplyIKJ computes C += A·B in ikj order — the row-oriented gaxpy
// formulation. The innermost j loop is a saxpy sweep: row k of B, scaled by
// A(i,k), accumulated into row i of C. Every operand is walked along rows.
//
// Access patterns (row-major):
//   - A: row-by-row (good)
//   - B: row-by-row (good)
//   - C: row-by-row (good)
//
// This is the expected winner among the unblocked orderings for row-major
// storage, and the ordering the blocked kernel applies inside each tile.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·n·r) time, O(1) extra memory.
func MultiplyIKJ(a, b, c *matrix.Dense) error {
	if err := matrix.ValidateMulCompatible(a, b, c); err != nil {
		return gemmErrorf(opIKJ, err)
	}
	m, r := a.Shape()
	n := b.Cols()

	var i, j, k int
	var aik float64
	var ar, br, cr []float64
	for i = 0; i < m; i++ {
		ar = a.Row(i)
		cr = c.Row(i)
		for k = 0; k < r; k++ {
			aik = ar[k]   // scalar multiplier for this saxpy
			br = b.Row(k) // row k of B, contiguous
			for j = 0; j < n; j++ {
				cr[j] += aik * br[j] // consecutive addresses in B and C
			}
		}
	}

	return nil
}

// MultiplyJKI computes C += A·B in jki order — the column-oriented gaxpy
// formulation. The innermost i loop is a saxpy down column j of C: every
// access to A and C strides by a full row length.
//
// Access patterns (row-major):
//   - A: column-by-column (bad)
//   - B: element-by-element
//   - C: column-by-column (bad)
//
// Expected worst case for row-major storage (and the best ordering for
// column-major languages — Fortran, MATLAB, Julia).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·n·r) time, O(1) extra memory.
func MultiplyJKI(a, b, c *matrix.Dense) error {
	if err := matrix.ValidateMulCompatible(a, b, c); err != nil {
		return gemmErrorf(opJKI, err)
	}
	m, r := a.Shape()
	n := b.Cols()

	var i, j, k int
	var bkj float64
	for j = 0; j < n; j++ {
		for k = 0; k < r; k++ {
			bkj = b.Row(k)[j] // scalar multiplier for this column saxpy
			for i = 0; i < m; i++ {
				c.Row(i)[j] += a.Row(i)[k] * bkj // strided A and C access
			}
		}
	}

	return nil
}

// MultiplyKIJ computes C += A·B in kij order — the row-oriented outer
// product formulation: for each k, C accumulates the rank-1 update
// A(:,k)·B(k,:) a row at a time.
//
// Access patterns (row-major):
//   - A: one column element per row (mixed)
//   - B: row-by-row (good)
//   - C: row-by-row (good)
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·n·r) time, O(1) extra memory.
func MultiplyKIJ(a, b, c *matrix.Dense) error {
	if err := matrix.ValidateMulCompatible(a, b, c); err != nil {
		return gemmErrorf(opKIJ, err)
	}
	m, r := a.Shape()
	n := b.Cols()

	var i, j, k int
	var aik float64
	var br, cr []float64
	for k = 0; k < r; k++ {
		br = b.Row(k)
		for i = 0; i < m; i++ {
			aik = a.Row(i)[k]
			cr = c.Row(i)
			for j = 0; j < n; j++ {
				cr[j] += aik * br[j]
			}
		}
	}

	return nil
}

// MultiplyKJI computes C += A·B in kji order — the column-oriented outer
// product formulation: the same rank-1 updates as kij, accumulated a column
// at a time.
//
// Access patterns (row-major):
//   - A: column-by-column (bad)
//   - B: element-by-element
//   - C: column-by-column (bad)
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·n·r) time, O(1) extra memory.
func MultiplyKJI(a, b, c *matrix.Dense) error {
	if err := matrix.ValidateMulCompatible(a, b, c); err != nil {
		return gemmErrorf(opKJI, err)
	}
	m, r := a.Shape()
	n := b.Cols()

	var i, j, k int
	var bkj float64
	for k = 0; k < r; k++ {
		for j = 0; j < n; j++ {
			bkj = b.Row(k)[j]
			for i = 0; i < m; i++ {
				c.Row(i)[j] += a.Row(i)[k] * bkj
			}
		}
	}

	return nil
}
