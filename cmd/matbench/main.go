// Command matbench drives the benchmark and verification suites from the
// command line.
//
// Usage:
//
//	matbench orderings --sizes 100,200,400 --iters 5
//	matbench blocked   --sizes 400,800 --block-sizes 32,64,128,256
//	matbench gaxpy     --sizes 1000,2000
//	matbench verify    --sizes 50 --block-sizes 32,64
//
// All timing output goes to stdout through the bench report writers;
// verify exits nonzero when any variant misses the tolerance.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtreacy87/Matrix-Computations/bench"
)

// cfg starts from the suite defaults; flags override individual fields.
var cfg = bench.DefaultConfig()

func main() {
	root := &cobra.Command{
		Use:   "matbench",
		Short: "Benchmark dense matrix-multiply loop orderings and cache blocking",
		Long: "matbench times the six GEMM loop orderings, the cache-blocked kernel,\n" +
			"and the row/column gaxpy pair on random operands, and verifies every\n" +
			"variant against the ijk reference ordering.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes,
		"square matrix sizes to sweep")
	root.PersistentFlags().IntVar(&cfg.Iterations, "iters", cfg.Iterations,
		"timed invocations averaged per measurement")
	root.PersistentFlags().IntSliceVar(&cfg.BlockSizes, "block-sizes", cfg.BlockSizes,
		"tile edges for the blocked kernel")
	root.PersistentFlags().Int64Var(&cfg.Seed, "seed", cfg.Seed,
		"RNG seed for operand fills")

	root.AddCommand(orderingsCmd(), blockedCmd(), gaxpyCmd(), verifyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "matbench:", err)
		os.Exit(1)
	}
}

// orderingsCmd benchmarks the six unblocked orderings plus ikj-saxpy.
func orderingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orderings",
		Short: "Time the six unblocked GEMM loop orderings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := bench.RunOrderings(cfg)
			if err != nil {
				return err
			}

			return bench.WriteResults(cmd.OutOrStdout(), results)
		},
	}
}

// blockedCmd plays ikj (control) against the blocked kernel ladder.
func blockedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocked",
		Short: "Compare the cache-blocked kernel against the best unblocked ordering",
		RunE: func(cmd *cobra.Command, _ []string) error {
			comps, err := bench.RunBlocked(cfg)
			if err != nil {
				return err
			}

			return bench.WriteComparisons(cmd.OutOrStdout(), comps)
		},
	}
}

// gaxpyCmd compares row- and column-oriented matrix-vector multiply.
func gaxpyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gaxpy",
		Short: "Compare row-oriented and column-oriented gaxpy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			comps, err := bench.RunGaxpy(cfg)
			if err != nil {
				return err
			}

			return bench.WriteComparisons(cmd.OutOrStdout(), comps)
		},
	}
}

// verifyCmd cross-checks every variant against the ijk reference. The
// sweep uses deliberately awkward shapes: for each size s it verifies
// (s, s-3, s+3) so no dimension divides the block edges.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify every multiply variant against the ijk reference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			failed := false
			for _, size := range cfg.Sizes {
				m, r, n := size, size-3, size+3
				if r <= 0 {
					m, r, n = size, size, size
				}
				checks, err := bench.Verify(m, r, n, cfg.BlockSizes, cfg.Seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "A %d×%d · B %d×%d:\n", m, r, r, n)
				if err = bench.WriteChecks(cmd.OutOrStdout(), checks); err != nil {
					return err
				}
				for _, ch := range checks {
					if !ch.Pass {
						failed = true
					}
				}
			}
			if failed {
				return fmt.Errorf("verification failed (tolerance %g)", bench.Tolerance)
			}

			return nil
		},
	}
}
