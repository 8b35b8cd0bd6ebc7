// SPDX-License-Identifier: MIT
// Package bench: correctness sweep.
// Every multiply variant is run once against the same random operands and
// compared elementwise to the ijk reference. The blocked kernel reorders
// floating-point accumulation, so agreement is within Tolerance, not
// bit-exact.

package bench

import (
	"math/rand"

	"github.com/rtreacy87/Matrix-Computations/gemm"
	"github.com/rtreacy87/Matrix-Computations/matrix"
)

// Tolerance is the maximum absolute elementwise difference accepted between
// a variant and the reference ordering at the sizes the suites use.
const Tolerance = 1e-10

// Check is the verification outcome for one variant.
type Check struct {
	Name    string  // variant label
	MaxDiff float64 // max |variant - reference| over all elements
	Pass    bool    // MaxDiff <= Tolerance
}

// Verify runs every unblocked ordering, the ikj-saxpy variant, and the
// blocked kernel at each edge in blockSizes against one random (A, B)
// pair with A m×r and B r×n, comparing each output to the ijk reference.
// Non-square, non-block-divisible (m, r, n) make this a boundary-handling
// test as much as an arithmetic one.
//
// Errors: dimension errors from operand construction, or a kernel failure.
// A tolerance miss is not an error — it is reported as Pass=false.
func Verify(m, r, n int, blockSizes []int, seed int64) ([]Check, error) {
	rng := rand.New(rand.NewSource(seed))

	// One operand pair for the whole sweep
	a, err := matrix.NewDense(m, r)
	if err != nil {
		return nil, err
	}
	b, err := matrix.NewDense(r, n)
	if err != nil {
		return nil, err
	}
	a.FillRandom(rng)
	b.FillRandom(rng)

	// Reference: ijk from a zero C
	ref, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	if err = gemm.MultiplyIJK(a, b, ref); err != nil {
		return nil, err
	}

	// candidates in report order: remaining orderings, saxpy, blocked ladder
	type candidate struct {
		name   string
		kernel gemm.Kernel
	}
	var candidates []candidate
	for _, o := range gemm.Orderings() {
		if o == gemm.IJK {
			continue // the reference does not check itself
		}
		kernel, kerr := gemm.ForOrdering(o)
		if kerr != nil {
			return nil, kerr
		}
		candidates = append(candidates, candidate{name: o.String(), kernel: kernel})
	}
	candidates = append(candidates, candidate{name: "ikj-saxpy", kernel: gemm.MultiplyIKJSaxpy})
	for _, bs := range blockSizes {
		candidates = append(candidates, candidate{name: blockedName(bs), kernel: gemm.BlockedKernel(bs)})
	}

	// Run each candidate from a fresh zero C and compare
	checks := make([]Check, 0, len(candidates))
	for _, cand := range candidates {
		c, cerr := matrix.NewDense(m, n)
		if cerr != nil {
			return nil, cerr
		}
		if cerr = cand.kernel(a, b, c); cerr != nil {
			return nil, cerr
		}
		diff, cerr := matrix.MaxDiff(ref, c)
		if cerr != nil {
			return nil, cerr
		}
		checks = append(checks, Check{Name: cand.name, MaxDiff: diff, Pass: diff <= Tolerance})
	}

	return checks, nil
}
