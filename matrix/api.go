// SPDX-License-Identifier: MIT
// Package matrix: small convenience surface over Dense used by kernels,
// benchmark drivers, and tests. Construction helpers validate eagerly and
// return the same sentinels as NewDense; comparison helpers are the
// verification metric for the kernel equivalence suites.

package matrix

import "math"

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) allocation, O(n) writes.
func NewIdentity(n int) (*Dense, error) {
	// Delegate allocation and validation to NewDense
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Walk the diagonal via flat indexing
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64.
// Every row must have the same, positive length.
// Errors: ErrInvalidDimensions on empty input or ragged rows.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		// Reject ragged input before copying
		if len(row) != cols {
			return nil, ErrInvalidDimensions
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// ZerosLike returns a zeroed Dense with the same shape as m.
// Errors: ErrNilMatrix when m is nil.
func ZerosLike(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return NewDense(m.r, m.c)
}

// MaxDiff returns the maximum absolute elementwise difference between a and b.
// This is the metric the verification drivers compare against tolerance:
// two kernels agree when MaxDiff of their outputs is below 1e-10.
//
// Errors:
//   - ErrNilMatrix         (a or b is nil).
//   - ErrDimensionMismatch (shapes differ).
//
// Complexity: O(r*c), no allocation.
func MaxDiff(a, b *Dense) (float64, error) {
	// Validate operands
	if a == nil || b == nil {
		return 0, ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return 0, ErrDimensionMismatch
	}

	// Single flat pass over both buffers
	var maxDiff, d float64
	for i := range a.data {
		d = math.Abs(a.data[i] - b.data[i])
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
