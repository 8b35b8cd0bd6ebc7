// SPDX-License-Identifier: MIT
// Package blas: level-1 operations (vector-vector).
// These are the innermost primitives of the whole repository; Axpy in
// particular is the loop the ikj GEMM ordering repeats m·r times.

package blas

import (
	"fmt"
	"math"

	"github.com/rtreacy87/Matrix-Computations/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opDot   = "Dot"
	opAxpy  = "Axpy"
	opGaxpy = "Gaxpy"
	opOuter = "OuterUpdate"
)

// blasErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func blasErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot computes the inner product xᵀ·y.
//
// Errors: matrix.ErrBadVectorLength when x and y differ in length or either
// is nil.
// Complexity: O(n) time, O(1) memory.
func Dot(x, y []float64) (float64, error) {
	// Both vectors must exist and agree in length
	if err := matrix.ValidateVecLen(x, len(y)); err != nil {
		return 0, blasErrorf(opDot, err)
	}
	if err := matrix.ValidateVecLen(y, len(x)); err != nil {
		return 0, blasErrorf(opDot, err)
	}

	var result float64
	for i := range x {
		result += x[i] * y[i] // accumulate elementwise products
	}

	return result, nil
}

// Axpy computes y = y + alpha·x in place.
// This is the contiguous sweep the row-oriented kernels reduce to: one
// scalar multiplier against two vectors walked at consecutive addresses.
//
// Errors: matrix.ErrBadVectorLength on nil input or length mismatch.
// Complexity: O(n) time, O(1) memory.
func Axpy(alpha float64, x, y []float64) error {
	if err := matrix.ValidateVecLen(x, len(y)); err != nil {
		return blasErrorf(opAxpy, err)
	}
	if err := matrix.ValidateVecLen(y, len(x)); err != nil {
		return blasErrorf(opAxpy, err)
	}

	for i := range x {
		y[i] += alpha * x[i]
	}

	return nil
}

// Norm2 returns the Euclidean norm √(xᵀ·x). A nil or empty vector has
// norm 0. Complexity: O(n).
func Norm2(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum)
}
