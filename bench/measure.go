// SPDX-License-Identifier: MIT
// Package bench: single-kernel measurement.
//
// Protocol:
//   - Operands are filled once, outside the timed region.
//   - One warm-up invocation is discarded.
//   - C is re-zeroed inside the timed loop (the kernels accumulate, so each
//     invocation must start from the same C; the zeroing cost is O(m·n),
//     negligible against the O(m·n·r) multiply, and identical across
//     variants so comparisons stay fair).

package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rtreacy87/Matrix-Computations/blas"
	"github.com/rtreacy87/Matrix-Computations/gemm"
	"github.com/rtreacy87/Matrix-Computations/matrix"
)

// Result is one averaged measurement of one kernel at one size.
type Result struct {
	Name       string        // kernel label, e.g. "ikj" or "blocked-64"
	M, N, R    int           // C is M×N, shared dimension R (R=0 for gaxpy)
	Iterations int           // timed invocations averaged
	AvgTime    time.Duration // mean wall-clock per invocation
	GFLOPS     float64       // 2·M·N·R (or 2·M·N) / AvgTime, in 1e9 flop/s
}

// Flops returns the floating-point operation count of one invocation:
// a multiply-add per (i,j,k) triple for GEMM, per (i,j) pair for gaxpy.
func (r Result) Flops() int64 {
	if r.R > 0 {
		return 2 * int64(r.M) * int64(r.N) * int64(r.R)
	}

	return 2 * int64(r.M) * int64(r.N)
}

// Comparison pairs a control and a candidate measurement at equal size.
// Speedup is Control.AvgTime / Candidate.AvgTime: above 1 the candidate is
// faster, below 1 the control is.
type Comparison struct {
	Control   Result
	Candidate Result
	Speedup   float64
}

// Compare derives the Comparison for a control/candidate pair.
func Compare(control, candidate Result) Comparison {
	var speedup float64
	// Guard the division; a sub-resolution timing yields Speedup 0.
	if candidate.AvgTime > 0 {
		speedup = float64(control.AvgTime) / float64(candidate.AvgTime)
	}

	return Comparison{Control: control, Candidate: candidate, Speedup: speedup}
}

// gflops converts a per-call flop count and mean duration to GFLOPS.
func gflops(flops int64, avg time.Duration) float64 {
	if avg <= 0 {
		return 0
	}

	return float64(flops) / avg.Seconds() / 1e9
}

// Measure times kernel k computing C += A·B with A m×r, B r×n, C m×n.
// Operands are filled uniformly from [-1,1) using rng; C starts (and is
// re-zeroed to) all zeros for every invocation. The first invocation is an
// untimed warm-up; the next iterations invocations are averaged.
//
// Errors:
//   - matrix.ErrInvalidDimensions      (non-positive m, n, or r).
//   - ErrBadConfig                     (iterations <= 0 or nil rng/kernel).
//   - any error returned by the kernel (surfaced from the warm-up call).
//
// Complexity: O(iterations·m·n·r) time, O(m·r + r·n + m·n) memory.
func Measure(name string, k gemm.Kernel, m, n, r, iterations int, rng *rand.Rand) (Result, error) {
	// Validate harness parameters; dimension validation is NewDense's job
	if k == nil || rng == nil || iterations <= 0 {
		return Result{}, ErrBadConfig
	}

	// Allocate the triple
	a, err := matrix.NewDense(m, r)
	if err != nil {
		return Result{}, fmt.Errorf("bench: A: %w", err)
	}
	b, err := matrix.NewDense(r, n)
	if err != nil {
		return Result{}, fmt.Errorf("bench: B: %w", err)
	}
	c, err := matrix.NewDense(m, n)
	if err != nil {
		return Result{}, fmt.Errorf("bench: C: %w", err)
	}

	// Fill inputs once; the same operands serve every invocation
	a.FillRandom(rng)
	b.FillRandom(rng)

	// Warm-up: also surfaces kernel validation errors before timing
	if err = k(a, b, c); err != nil {
		return Result{}, err
	}

	// Timed region
	start := time.Now()
	for iter := 0; iter < iterations; iter++ {
		c.Zero() // each accumulating run starts from the same C
		if err = k(a, b, c); err != nil {
			return Result{}, err
		}
	}
	avg := time.Since(start) / time.Duration(iterations)

	res := Result{Name: name, M: m, N: n, R: r, Iterations: iterations, AvgTime: avg}
	res.GFLOPS = gflops(res.Flops(), avg)

	return res, nil
}

// MeasureGaxpy times a matrix-vector kernel computing y += A·x with A m×n.
// Same protocol as Measure: operands filled once, one warm-up, y re-zeroed
// inside the timed loop.
//
// Errors: matrix.ErrInvalidDimensions, ErrBadConfig, kernel errors.
// Complexity: O(iterations·m·n) time, O(m·n) memory.
func MeasureGaxpy(name string, k blas.VectorKernel, m, n, iterations int, rng *rand.Rand) (Result, error) {
	if k == nil || rng == nil || iterations <= 0 {
		return Result{}, ErrBadConfig
	}

	a, err := matrix.NewDense(m, n)
	if err != nil {
		return Result{}, fmt.Errorf("bench: A: %w", err)
	}
	a.FillRandom(rng)

	// Vector operands: x in [-1,1), y zeroed per run
	x := make([]float64, n)
	for i := range x {
		x[i] = -1 + 2*rng.Float64()
	}
	y := make([]float64, m)

	// Warm-up
	if err = k(a, x, y); err != nil {
		return Result{}, err
	}

	start := time.Now()
	for iter := 0; iter < iterations; iter++ {
		for i := range y {
			y[i] = 0
		}
		if err = k(a, x, y); err != nil {
			return Result{}, err
		}
	}
	avg := time.Since(start) / time.Duration(iterations)

	res := Result{Name: name, M: m, N: n, Iterations: iterations, AvgTime: avg}
	res.GFLOPS = gflops(res.Flops(), avg)

	return res, nil
}
