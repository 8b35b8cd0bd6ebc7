package gemm_test

import (
	"math/rand"
	"testing"

	"github.com/rtreacy87/Matrix-Computations/gemm"
	"github.com/rtreacy87/Matrix-Computations/matrix"
)

// benchmarkKernel is a helper that times one multiply variant on square
// size×size operands. Operand setup happens before the timer starts; C is
// re-zeroed inside the loop so every accumulating run does identical work.
func benchmarkKernel(b *testing.B, kernel gemm.Kernel, size int) {
	b.Helper()
	rng := rand.New(rand.NewSource(1)) // fixed operands across variants

	a, err := matrix.NewDense(size, size)
	if err != nil {
		b.Fatalf("A: %v", err)
	}
	bb, err := matrix.NewDense(size, size)
	if err != nil {
		b.Fatalf("B: %v", err)
	}
	c, err := matrix.NewDense(size, size)
	if err != nil {
		b.Fatalf("C: %v", err)
	}
	a.FillRandom(rng)
	bb.FillRandom(rng)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		c.Zero()
		if err = kernel(a, bb, c); err != nil {
			b.Fatalf("kernel failed: %v", err)
		}
	}
}

// The six orderings at 256×256 — large enough that cache behavior, not
// loop overhead, dominates; small enough to keep `go test -bench` usable.

func BenchmarkMultiplyIJK_256(b *testing.B) { benchmarkKernel(b, gemm.MultiplyIJK, 256) }

func BenchmarkMultiplyJIK_256(b *testing.B) { benchmarkKernel(b, gemm.MultiplyJIK, 256) }

func BenchmarkMultiplyIKJ_256(b *testing.B) { benchmarkKernel(b, gemm.MultiplyIKJ, 256) }

func BenchmarkMultiplyJKI_256(b *testing.B) { benchmarkKernel(b, gemm.MultiplyJKI, 256) }

func BenchmarkMultiplyKIJ_256(b *testing.B) { benchmarkKernel(b, gemm.MultiplyKIJ, 256) }

func BenchmarkMultiplyKJI_256(b *testing.B) { benchmarkKernel(b, gemm.MultiplyKJI, 256) }

// The abstraction experiment: ikj with the inner sweep behind a call.
func BenchmarkMultiplyIKJSaxpy_256(b *testing.B) { benchmarkKernel(b, gemm.MultiplyIKJSaxpy, 256) }

// The blocked ladder at 512×512, where tiling starts to pay.

func BenchmarkMultiplyBlocked32_512(b *testing.B) { benchmarkKernel(b, gemm.BlockedKernel(32), 512) }

func BenchmarkMultiplyBlocked64_512(b *testing.B) { benchmarkKernel(b, gemm.BlockedKernel(64), 512) }

func BenchmarkMultiplyBlocked128_512(b *testing.B) {
	benchmarkKernel(b, gemm.BlockedKernel(128), 512)
}

func BenchmarkMultiplyBlocked256_512(b *testing.B) {
	benchmarkKernel(b, gemm.BlockedKernel(256), 512)
}

// Unblocked control at 512×512 for the blocked-vs-ikj comparison.
func BenchmarkMultiplyIKJ_512(b *testing.B) { benchmarkKernel(b, gemm.MultiplyIKJ, 512) }
