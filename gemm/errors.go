// SPDX-License-Identifier: MIT
// Package gemm: sentinel error set.
// Shape and nil violations reuse the matrix package sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrNilMatrix) so callers have one
// identity per failure class across the whole repository; only conditions
// specific to this package get sentinels here.

package gemm

import "errors"

var (
	// ErrInvalidBlockSize indicates a non-positive block size passed to
	// MultiplyBlocked or BlockedKernel.
	ErrInvalidBlockSize = errors.New("gemm: block size must be > 0")

	// ErrUnknownOrdering indicates an Ordering value outside the closed
	// enumeration handed to ForOrdering.
	ErrUnknownOrdering = errors.New("gemm: unknown ordering")
)
