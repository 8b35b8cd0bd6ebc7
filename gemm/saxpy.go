// SPDX-License-Identifier: MIT
// Package gemm: the function-call-abstraction experiment.
// MultiplyIKJSaxpy performs the exact arithmetic of MultiplyIKJ but routes
// every inner sweep through blas.Axpy instead of an inlined loop. Under a
// modern optimizing compiler the two should time identically; benchmarking
// the pair against each other measures what the abstraction actually costs.

package gemm

import (
	"github.com/rtreacy87/Matrix-Computations/blas"
	"github.com/rtreacy87/Matrix-Computations/matrix"
)

// MultiplyIKJSaxpy computes C += A·B in ikj order with the innermost j loop
// expressed as a call: C.Row(i) += A(i,k)·B.Row(k) via blas.Axpy.
//
// Numerically identical to MultiplyIKJ (same accumulation order, same
// operations); only the call structure differs.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(m·n·r) time, O(1) extra memory.
func MultiplyIKJSaxpy(a, b, c *matrix.Dense) error {
	if err := matrix.ValidateMulCompatible(a, b, c); err != nil {
		return gemmErrorf(opIKJSaxpy, err)
	}
	m, r := a.Shape()

	var i, k int
	var ar, cr []float64
	for i = 0; i < m; i++ {
		ar = a.Row(i)
		cr = c.Row(i)
		for k = 0; k < r; k++ {
			// Row lengths are equal by the validated triple, so Axpy
			// cannot fail here; the error branch is unreachable.
			if err := blas.Axpy(ar[k], b.Row(k), cr); err != nil {
				return gemmErrorf(opIKJSaxpy, err)
			}
		}
	}

	return nil
}
