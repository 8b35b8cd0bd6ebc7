// SPDX-License-Identifier: MIT
// Package bench: suite configuration.
// DEFAULTS below are the single source of truth for zero-effort runs; the
// cmd/matbench flags override them field by field.

package bench

import (
	"errors"

	"github.com/rtreacy87/Matrix-Computations/gemm"
)

// ErrBadConfig indicates a Config with no sizes, no block sizes (for the
// blocked suite), or a non-positive iteration count.
var ErrBadConfig = errors.New("bench: invalid config")

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultIterations is the number of timed invocations averaged per
	// measurement. Kept small: a 1000×1000 GEMM is already ~2·10⁹
	// floating-point operations per call.
	DefaultIterations = 5

	// DefaultSeed seeds the operand RNG when the caller does not care.
	// Fixed so default runs are reproducible.
	DefaultSeed = 1
)

// defaultSizes is the square-size ladder of the original experiments.
var defaultSizes = []int{100, 200, 400, 800}

// Config groups the shared parameters of a benchmark suite.
//
// Fields:
//   - Sizes      — square matrix sizes to sweep (each size s runs s×s·s×s).
//   - Iterations — timed invocations averaged per measurement.
//   - BlockSizes — tile edges for the blocked suite.
//   - Seed       — RNG seed for operand fills.
type Config struct {
	Sizes      []int
	Iterations int
	BlockSizes []int
	Seed       int64
}

// DefaultConfig returns the configuration used by the original experiment
// drivers: the {100..800} size ladder, the {32,64,128,256} block ladder,
// DefaultIterations and DefaultSeed.
func DefaultConfig() Config {
	return Config{
		Sizes:      append([]int(nil), defaultSizes...),
		Iterations: DefaultIterations,
		BlockSizes: gemm.BlockSizes(),
		Seed:       DefaultSeed,
	}
}

// validate checks the fields every suite depends on; needBlocks adds the
// BlockSizes requirement for the blocked suite.
func (c Config) validate(needBlocks bool) error {
	if len(c.Sizes) == 0 || c.Iterations <= 0 {
		return ErrBadConfig
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return ErrBadConfig
		}
	}
	if needBlocks {
		if len(c.BlockSizes) == 0 {
			return ErrBadConfig
		}
		for _, bs := range c.BlockSizes {
			if bs <= 0 {
				return ErrBadConfig
			}
		}
	}

	return nil
}
