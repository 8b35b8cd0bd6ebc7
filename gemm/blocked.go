// SPDX-License-Identifier: MIT
// Package gemm: cache-blocked kernel (Golub & Van Loan §1.3.5).
//
// Purpose:
//   - Decompose the (m, n, r) index space into square tiles of a
//     configurable edge so the three sub-blocks touched by the inner
//     computation stay resident in cache, then apply the best unblocked
//     ordering (ikj) inside each tile.
//
// Determinism:
//   - Fixed block traversal ii→jj→kk and fixed ikj tile order; identical
//     inputs produce bit-identical output. The accumulation order differs
//     from the unblocked orderings, so results match them only up to
//     floating-point rounding (see the bench verification tolerance).

package gemm

import "github.com/rtreacy87/Matrix-Computations/matrix"

// Block edge defaults, in elements. A tile working set is three blocks
// (A, B, C sub-blocks) of blockSize² float64s each:
// 3·64²·8 B = 96 KiB — sized for L1; 3·128²·8 B = 384 KiB — sized for L2.
const (
	// BlockSizeL1 targets L1-resident tiles.
	BlockSizeL1 = 64

	// BlockSizeL2 targets L2-resident tiles; use for matrices well beyond
	// 1024×1024 where L1 tiles thrash on the outer sweeps.
	BlockSizeL2 = 128

	// DefaultBlockSize is the edge used when a driver does not care.
	DefaultBlockSize = BlockSizeL1
)

// blockSizes is the benchmark ladder exercised by drivers and tests.
var blockSizes = []int{32, 64, 128, 256}

// BlockSizes returns the standard ladder of block edges ({32, 64, 128, 256})
// used by the benchmark and verification suites. The returned slice is a
// copy; callers may mutate it freely.
func BlockSizes() []int {
	out := make([]int, len(blockSizes))
	copy(out, blockSizes)

	return out
}

// MultiplyBlocked computes C += A·B with square cache tiles of edge
// blockSize.
//
// Algorithm:
//  1. Iterate block-row origin ii over [0, m) in steps of blockSize.
//  2. Nested: block-column origin jj over [0, n).
//  3. Nested: block-depth origin kk over [0, r).
//  4. Clip the tile to matrix bounds: iMax = min(ii+blockSize, m), and
//     likewise jMax, kMax — the final tile along a non-divisible dimension
//     is truncated, never padded.
//  5. Within the tile, apply ikj order:
//     C(ii:iMax, jj:jMax) += A(ii:iMax, kk:kMax) · B(kk:kMax, jj:jMax).
//
// The outer ii→jj→kk order matches row-major storage of C and A; the inner
// ikj order sweeps all three operands along consecutive addresses. When
// blockSize exceeds every dimension the loop degenerates to a single tile
// and the kernel is exactly MultiplyIKJ.
//
// Errors (checked before any mutation of C):
//   - ErrInvalidBlockSize          (blockSize <= 0).
//   - matrix.ErrNilMatrix          (nil operand).
//   - matrix.ErrDimensionMismatch  (incompatible shapes).
//
// Complexity: O(m·n·r) time, O(1) extra memory.
func MultiplyBlocked(a, b, c *matrix.Dense, blockSize int) error {
	// Reject a nonsensical tile edge first
	if blockSize <= 0 {
		return gemmErrorf(opBlocked, ErrInvalidBlockSize)
	}
	// Validate the GEMM triple before touching C
	if err := matrix.ValidateMulCompatible(a, b, c); err != nil {
		return gemmErrorf(opBlocked, err)
	}
	m, r := a.Shape()
	n := b.Cols()

	var ii, jj, kk int
	var iMax, jMax, kMax int
	for ii = 0; ii < m; ii += blockSize { // block row of C/A
		iMax = min(ii+blockSize, m)
		for jj = 0; jj < n; jj += blockSize { // block column of C/B
			jMax = min(jj+blockSize, n)
			for kk = 0; kk < r; kk += blockSize { // block depth of A/B
				kMax = min(kk+blockSize, r)
				// C(ii:iMax, jj:jMax) += A(ii:iMax, kk:kMax) · B(kk:kMax, jj:jMax)
				multiplyTileIKJ(a, b, c, ii, iMax, kk, kMax, jj, jMax)
			}
		}
	}

	return nil
}

// multiplyTileIKJ accumulates one clipped tile in ikj order.
// Bounds are half-open: i ∈ [i0,i1), k ∈ [k0,k1), j ∈ [j0,j1), all already
// clipped to the matrix shapes by the caller. The inner j loop is a saxpy
// across contiguous row segments of B and C.
func multiplyTileIKJ(a, b, c *matrix.Dense, i0, i1, k0, k1, j0, j1 int) {
	var i, j, k int
	var aik float64
	var ar, br, cr []float64
	for i = i0; i < i1; i++ {
		ar = a.Row(i)
		cr = c.Row(i)
		for k = k0; k < k1; k++ {
			aik = ar[k]
			br = b.Row(k)
			for j = j0; j < j1; j++ {
				cr[j] += aik * br[j]
			}
		}
	}
}

// BlockedKernel adapts MultiplyBlocked to the Kernel signature by fixing
// the block edge — the runtime-selectable counterpart of calling
// MultiplyBlocked(a, b, c, blockSize) directly. The block size is validated
// at call time, not at wrap time, so a bad edge surfaces as an error from
// the kernel rather than a panic here.
func BlockedKernel(blockSize int) Kernel {
	return func(a, b, c *matrix.Dense) error {
		return MultiplyBlocked(a, b, c, blockSize)
	}
}
