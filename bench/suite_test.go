// Package bench_test: suite driver and verification tests at tiny sizes.
package bench_test

import (
	"testing"

	"github.com/rtreacy87/Matrix-Computations/bench"
	"github.com/rtreacy87/Matrix-Computations/gemm"
	"github.com/stretchr/testify/require"
)

// tinyConfig keeps suite runs fast: one size, one iteration.
func tinyConfig() bench.Config {
	return bench.Config{
		Sizes:      []int{8},
		Iterations: 1,
		BlockSizes: []int{4, 16}, // one dividing, one exceeding the size
		Seed:       1,
	}
}

// TestDefaultConfig pins the documented defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	require.Equal(t, []int{100, 200, 400, 800}, cfg.Sizes)
	require.Equal(t, bench.DefaultIterations, cfg.Iterations)
	require.Equal(t, gemm.BlockSizes(), cfg.BlockSizes)
	require.Equal(t, int64(bench.DefaultSeed), cfg.Seed)
}

// TestRunOrderings_CountAndOrder: six orderings plus ikj-saxpy per size.
func TestRunOrderings_CountAndOrder(t *testing.T) {
	results, err := bench.RunOrderings(tinyConfig())
	require.NoError(t, err)
	require.Len(t, results, 7)

	wantNames := []string{"ijk", "jik", "ikj", "jki", "kij", "kji", "ikj-saxpy"}
	for i, r := range results {
		require.Equal(t, wantNames[i], r.Name)
		require.Equal(t, 8, r.M)
	}
}

// TestRunBlocked_PairsControlAgainstLadder: one comparison per
// (size, blockSize), all against the ikj control.
func TestRunBlocked_PairsControlAgainstLadder(t *testing.T) {
	comps, err := bench.RunBlocked(tinyConfig())
	require.NoError(t, err)
	require.Len(t, comps, 2) // one size × two block sizes

	require.Equal(t, "ikj", comps[0].Control.Name)
	require.Equal(t, "blocked-4", comps[0].Candidate.Name)
	require.Equal(t, "blocked-16", comps[1].Candidate.Name)
}

// TestRunGaxpy_ComparesOrientations: column control vs row candidate.
func TestRunGaxpy_ComparesOrientations(t *testing.T) {
	comps, err := bench.RunGaxpy(tinyConfig())
	require.NoError(t, err)
	require.Len(t, comps, 1)

	require.Equal(t, "column-oriented", comps[0].Control.Name)
	require.Equal(t, "row-oriented", comps[0].Candidate.Name)
}

// TestSuites_RejectBadConfig: empty sizes, bad iterations, and (for the
// blocked suite) missing block sizes all fail with ErrBadConfig.
func TestSuites_RejectBadConfig(t *testing.T) {
	_, err := bench.RunOrderings(bench.Config{Iterations: 1})
	require.ErrorIs(t, err, bench.ErrBadConfig) // no sizes

	_, err = bench.RunOrderings(bench.Config{Sizes: []int{8}})
	require.ErrorIs(t, err, bench.ErrBadConfig) // no iterations

	_, err = bench.RunOrderings(bench.Config{Sizes: []int{-8}, Iterations: 1})
	require.ErrorIs(t, err, bench.ErrBadConfig) // negative size

	cfg := tinyConfig()
	cfg.BlockSizes = nil
	_, err = bench.RunBlocked(cfg)
	require.ErrorIs(t, err, bench.ErrBadConfig) // blocked suite needs a ladder

	cfg = tinyConfig()
	cfg.BlockSizes = []int{0}
	_, err = bench.RunBlocked(cfg)
	require.ErrorIs(t, err, bench.ErrBadConfig) // non-positive block edge
}

// TestVerify_AllVariantsPass runs the full sweep on non-divisible
// shapes and expects every variant inside tolerance.
func TestVerify_AllVariantsPass(t *testing.T) {
	checks, err := bench.Verify(50, 47, 53, gemm.BlockSizes(), 1)
	require.NoError(t, err)

	// 5 non-reference orderings + ikj-saxpy + 4 blocked edges
	require.Len(t, checks, 10)
	for _, ch := range checks {
		require.True(t, ch.Pass, "%s: max diff %g", ch.Name, ch.MaxDiff)
		require.LessOrEqual(t, ch.MaxDiff, bench.Tolerance, ch.Name)
	}
}

// TestVerify_BadShapes surfaces construction errors.
func TestVerify_BadShapes(t *testing.T) {
	_, err := bench.Verify(0, 4, 4, []int{4}, 1)
	require.Error(t, err)
}
