// SPDX-License-Identifier: MIT
// Package bench: suite drivers, one per original experiment.
// Each driver sweeps Config.Sizes with square operands, handing every
// Measure call a fresh RNG seeded from Config.Seed, so every kernel at a
// given size sees identical inputs regardless of how many kernels ran
// before it.

package bench

import (
	"fmt"
	"math/rand"

	"github.com/rtreacy87/Matrix-Computations/blas"
	"github.com/rtreacy87/Matrix-Computations/gemm"
)

// blockedName labels a blocked kernel by its tile edge, e.g. "blocked-64".
func blockedName(blockSize int) string {
	return fmt.Sprintf("blocked-%d", blockSize)
}

// seededRNG returns a fresh RNG at the seed's initial state. Measure draws
// operand fills from its RNG, so giving every measurement its own RNG from
// the same seed is what makes all kernels in a suite time identical A and B.
func seededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RunOrderings measures the six unblocked GEMM orderings, plus the
// ikj-via-saxpy variant, at every size in cfg.Sizes. Results are grouped by
// size, orderings in gemm.Orderings() order within each group.
//
// Errors: ErrBadConfig, or any measurement failure.
func RunOrderings(cfg Config) ([]Result, error) {
	if err := cfg.validate(false); err != nil {
		return nil, err
	}

	var results []Result
	for _, size := range cfg.Sizes {
		// Fresh RNG per measurement: identical operands for every ordering
		for _, o := range gemm.Orderings() {
			kernel, err := gemm.ForOrdering(o)
			if err != nil {
				return nil, err
			}
			res, err := Measure(o.String(), kernel, size, size, size, cfg.Iterations, seededRNG(cfg.Seed))
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
		// The abstraction experiment rides along on the same operands
		res, err := Measure("ikj-saxpy", gemm.MultiplyIKJSaxpy, size, size, size, cfg.Iterations, seededRNG(cfg.Seed))
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// RunBlocked plays the blocked game: at every size, the best unblocked
// ordering (ikj) is the control, and the blocked kernel at each edge in
// cfg.BlockSizes is a candidate. One Comparison per (size, blockSize).
//
// Errors: ErrBadConfig, or any measurement failure.
func RunBlocked(cfg Config) ([]Comparison, error) {
	if err := cfg.validate(true); err != nil {
		return nil, err
	}

	var comps []Comparison
	for _, size := range cfg.Sizes {
		control, err := Measure("ikj", gemm.MultiplyIKJ, size, size, size, cfg.Iterations, seededRNG(cfg.Seed))
		if err != nil {
			return nil, err
		}
		for _, bs := range cfg.BlockSizes {
			name := blockedName(bs)
			candidate, err := Measure(name, gemm.BlockedKernel(bs), size, size, size, cfg.Iterations, seededRNG(cfg.Seed))
			if err != nil {
				return nil, err
			}
			comps = append(comps, Compare(control, candidate))
		}
	}

	return comps, nil
}

// RunGaxpy compares the two matrix-vector orientations at every size:
// column-oriented is the control, row-oriented the candidate, so a speedup
// above 1 is the row-major storage advantage showing up.
//
// Errors: ErrBadConfig, or any measurement failure.
func RunGaxpy(cfg Config) ([]Comparison, error) {
	if err := cfg.validate(false); err != nil {
		return nil, err
	}

	var comps []Comparison
	for _, size := range cfg.Sizes {
		control, err := MeasureGaxpy(blas.ColumnOriented.String(), blas.GaxpyCol, size, size, cfg.Iterations, seededRNG(cfg.Seed))
		if err != nil {
			return nil, err
		}
		candidate, err := MeasureGaxpy(blas.RowOriented.String(), blas.GaxpyRow, size, size, cfg.Iterations, seededRNG(cfg.Seed))
		if err != nil {
			return nil, err
		}
		comps = append(comps, Compare(control, candidate))
	}

	return comps, nil
}
