// SPDX-License-Identifier: MIT
// Package gemm: runtime kernel selection.
// The original experiments selected variants through raw function pointers;
// here the set is a closed tagged enumeration with one dispatch function,
// preserving runtime selectability for benchmark drivers without exposing
// bare function values in the public surface.

package gemm

import "github.com/rtreacy87/Matrix-Computations/matrix"

// Kernel is the uniform invocation signature shared by every multiply
// variant: C += A·B, mutating c in place, returning nil or a validation
// error. Any timing harness can wrap a Kernel without knowing which
// ordering it runs.
type Kernel func(a, b, c *matrix.Dense) error

// Ordering identifies one multiply variant.
//
// The six unblocked members name the nesting of the index variables
// (outermost first); Blocked is the cache-tiled kernel at DefaultBlockSize.
type Ordering int

const (
	// IJK — dot-product form; inner k loop.
	IJK Ordering = iota
	// JIK — dot-product form by columns of C; inner k loop.
	JIK
	// IKJ — row-oriented gaxpy; inner j loop (best for row-major).
	IKJ
	// JKI — column-oriented gaxpy; inner i loop (worst for row-major).
	JKI
	// KIJ — row-oriented outer product; inner j loop.
	KIJ
	// KJI — column-oriented outer product; inner i loop.
	KJI
	// Blocked — cache-tiled kernel with DefaultBlockSize tiles.
	Blocked
)

// orderingNames is indexed by Ordering; keep in sync with the const block.
var orderingNames = [...]string{"ijk", "jik", "ikj", "jki", "kij", "kji", "blocked"}

// String returns the conventional lowercase name of the ordering.
func (o Ordering) String() string {
	if o < 0 || int(o) >= len(orderingNames) {
		return "unknown"
	}

	return orderingNames[o]
}

// Orderings returns the six unblocked orderings in stable benchmark order.
// Blocked is deliberately excluded: drivers pair it with an explicit block
// size via BlockedKernel.
func Orderings() []Ordering {
	return []Ordering{IJK, JIK, IKJ, JKI, KIJ, KJI}
}

// ForOrdering returns the Kernel implementing o.
// For Blocked the kernel runs at DefaultBlockSize; use BlockedKernel to fix
// a different edge.
//
// Errors: ErrUnknownOrdering for values outside the enumeration.
// Complexity: O(1).
func ForOrdering(o Ordering) (Kernel, error) {
	switch o {
	case IJK:
		return MultiplyIJK, nil
	case JIK:
		return MultiplyJIK, nil
	case IKJ:
		return MultiplyIKJ, nil
	case JKI:
		return MultiplyJKI, nil
	case KIJ:
		return MultiplyKIJ, nil
	case KJI:
		return MultiplyKJI, nil
	case Blocked:
		return BlockedKernel(DefaultBlockSize), nil
	default:
		return nil, ErrUnknownOrdering
	}
}
