// Package gemm implements dense general matrix-matrix multiplication
// (C = C + A·B) in every loop ordering worth benchmarking, plus the
// cache-blocked kernel from Golub & Van Loan, "Matrix Computations",
// Section 1.3.5.
//
// 🚀 Why six orderings of the same three loops?
//
//	The triple loop computing C(i,j) += A(i,k)·B(k,j) can nest its indices
//	in 3! = 6 ways. All six perform exactly m·n·r multiply-adds, yet their
//	wall-clock times differ by integer factors, because each ordering walks
//	row-major storage differently:
//	  • ijk, jik — dot-product forms; the inner k loop strides through
//	    columns of B (one cache line per element).
//	  • ikj, kij — row-oriented gaxpy/outer-product forms; the inner j loop
//	    sweeps rows of B and C contiguously (best for row-major).
//	  • jki, kji — column-oriented forms; every access strides
//	    (worst for row-major, best for Fortran).
//
// ✨ Key features:
//   - MultiplyIJK … MultiplyKJI: the six unblocked orderings, all
//     accumulating into a caller-owned C (never resetting it).
//   - MultiplyBlocked: square cache tiles of a configurable edge, partial
//     tiles clipped at matrix boundaries, ikj ordering inside each tile.
//   - MultiplyIKJSaxpy: ikj with the inner sweep delegated to blas.Axpy,
//     for measuring the cost (or not) of function-call abstraction.
//   - Ordering: a closed enumeration with a single ForOrdering dispatch,
//     so benchmark drivers select kernels at runtime without function
//     pointers.
//
// All kernels validate A (m×r), B (r×n), C (m×n) before touching C and
// fail with matrix.ErrDimensionMismatch on any incompatibility; a failed
// call never partially mutates C.
//
// ⚙️ Usage:
//
//	import "github.com/rtreacy87/Matrix-Computations/gemm"
//
//	// C += A·B with 64×64 cache tiles
//	if err := gemm.MultiplyBlocked(a, b, c, 64); err != nil { ... }
//
//	// or select an ordering at runtime
//	kernel, _ := gemm.ForOrdering(gemm.IKJ)
//	_ = kernel(a, b, c)
//
// Performance: every kernel is O(m·n·r) time, O(1) extra memory. The
// differences are entirely in cache behavior; see the bench package and
// cmd/matbench to observe them.
package gemm
