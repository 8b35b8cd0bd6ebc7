// Package matrixcomputations is a benchmarking suite for observing how
// loop ordering and memory access patterns shape the performance of dense
// matrix arithmetic, following Golub & Van Loan, "Matrix Computations".
//
// 🚀 What is in here?
//
//	Every kernel computes the same textbook arithmetic; the experiments
//	differ only in how the loops traverse row-major storage:
//		• Six GEMM loop orderings: ijk, jik, ikj, jki, kij, kji
//		• Cache-blocked GEMM with partial-tile boundary handling
//		• Row- vs column-oriented gaxpy (matrix-vector)
//		• The function-call-abstraction experiment (ikj via saxpy calls)
//
// ✨ Why bother?
//
//   - All six orderings perform identical flops yet differ by integer
//     factors in wall-clock time — cache lines, not arithmetic, dominate
//   - Blocking compounds the ordering win: tiles keep the working set in
//     cache across the whole (m, n, r) sweep
//   - Measurement beats folklore — run the suites and watch
//
// Under the hood, everything is organized under four packages and one command:
//
//	matrix/ — dense row-major float64 container, sentinels & validators
//	blas/   — level-1 (dot, axpy, norm) and level-2 (gaxpy family) primitives
//	gemm/   — the six orderings, the blocked kernel, runtime dispatch
//	bench/  — timing harness, suite drivers, verification, reports
//	cmd/matbench — CLI driver for every suite
//
// All kernels accumulate (C += A·B, y += A·x), validate dimensions before
// touching outputs, and fail with package sentinels matched via errors.Is.
// Randomness is always an explicit *rand.Rand, so every measurement and
// every test is reproducible from its seed.
//
//	go get github.com/rtreacy87/Matrix-Computations
package matrixcomputations
