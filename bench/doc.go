// Package bench is the wall-clock harness for the kernel experiments: it
// builds random operands, times repeated kernel invocations, derives GFLOPS
// and speedups, and cross-checks every multiply variant against a reference
// ordering.
//
// The harness wraps the plain kernel signatures (gemm.Kernel and
// blas.VectorKernel) without knowing which variant it runs:
//
//	rng := rand.New(rand.NewSource(cfg.Seed))
//	res, err := bench.Measure("ikj", gemm.MultiplyIKJ, 400, 400, 400, 5, rng)
//
// Measurement protocol (per kernel and size):
//  1. Fill A and B once from the caller-seeded RNG; allocate a zero C.
//  2. One untimed warm-up invocation (page-in, cache priming).
//  3. N timed invocations, re-zeroing C before each so every run of an
//     accumulating kernel does identical work; report the mean.
//
// Randomness is explicit: every entry point takes an RNG or a seed, so two
// runs with the same seed measure identical inputs.
//
// Correctness and timing are separate paths: Verify runs each variant once
// against the ijk reference and compares elementwise within Tolerance, so a
// benchmark sweep can trust its kernels without paying for verification
// inside timed loops.
package bench
