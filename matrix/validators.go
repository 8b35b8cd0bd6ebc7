// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape) so
//     the reported sentinel is stable across call sites and tests.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks the full GEMM triple C += A·B:
// A is m×r, B is r×n, C is m×n. All three operands must be non-nil.
//
// Sequence: NotNil(a) → NotNil(b) → NotNil(c) → inner → outer shapes,
// so a nil operand is always reported before a shape complaint.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b, c *Dense) error {
	// Nil checks first, in argument order
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateNotNil(c); err != nil {
		return err
	}
	// Inner dimension: A.cols must equal B.rows
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible: inner", ErrDimensionMismatch)
	}
	// Output shape: C must be A.rows × B.cols
	if c.r != a.r {
		return validatorErrorf("ValidateMulCompatible: Rows", ErrDimensionMismatch)
	}
	if c.c != b.c {
		return validatorErrorf("ValidateMulCompatible: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is rejected to avoid subtle bugs in gaxpy-like routines.
// Errors: ErrBadVectorLength. Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors outright
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrBadVectorLength)
	}
	// Check the exact expected length
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrBadVectorLength)
	}

	return nil
}
