// Package blas provides the level-1 (vector-vector) and level-2
// (matrix-vector) building blocks the GEMM experiments are assembled from,
// following Golub & Van Loan, "Matrix Computations", Chapter 1.
//
// Level-1:
//   - Dot   — α = xᵀ·y
//   - Axpy  — y = y + α·x (the saxpy primitive every multiply reduces to)
//   - Norm2 — Euclidean norm √(xᵀ·x)
//
// Level-2 (the gaxpy family, y = y + A·x):
//   - GaxpyRow — row-oriented: i outer, each row of A swept contiguously.
//   - GaxpyCol — column-oriented: j outer, A walked down columns.
//   - Gaxpy    — matrix form Y = Y + A·X, one column-gaxpy per column of X.
//   - OuterUpdate — rank-1 update A = A + x·yᵀ.
//
// GaxpyRow and GaxpyCol compute identical results; they exist as a pair
// because the row/column orientation choice is the matrix-vector analogue
// of the gemm loop-ordering experiment — on row-major storage the
// row-oriented form wins for the same cache-line reasons. Orientation and
// GaxpyKernel let drivers select between them at runtime.
//
// All operations accumulate into caller-owned outputs and validate
// dimensions up front, failing with the matrix package sentinels before
// any mutation.
package blas
