// Package matrix provides the dense, row-major float64 container that every
// kernel in this repository computes on.
//
// The package offers:
//
//   - Dense, a fixed-size row-major matrix with bounds-checked At/Set,
//     deep Clone, and deterministic random fill from a caller-owned RNG.
//   - A minimal Matrix interface so drivers can operate generically while
//     kernels fast-path on the flat *Dense storage.
//   - Package-level sentinel errors matched via errors.Is, and central
//     validators shared by the gemm and blas kernels.
//
// Storage is row-major: element (i, j) lives at offset i*cols+j, so walking
// j in the innermost loop touches consecutive memory addresses. The layout
// is the whole point of this repository — every loop-ordering experiment in
// gemm and blas is an experiment in how kernels traverse this buffer.
//
// Matrices are never resized after construction and are exclusively owned
// by their creator; copying is an explicit, full-buffer Clone.
package matrix
