// Package matrix provides a dense, row-major float64 matrix whose arithmetic
// runs across goroutines.
//
// The matrix package provides:
//
//   - Dense: a flat row-major buffer with checked At/Set, Fill, Clone, Equal.
//   - Mul, Add, Sub, Hadamard, Scale, Transpose: each validates shapes before
//     any goroutine starts, allocates a fresh result, splits the result's rows
//     into contiguous chunks (see package parallel) and returns after the join.
//   - Engine: the same kernels on a reusable worker pool.
//
// Operands are never mutated and a failed call never returns a partial result.
// Shape errors satisfy errors.Is(err, ErrDimensionMismatch) and carry both
// operand shapes in a *ShapeError.
package matrix
