// SPDX-License-Identifier: MIT
// Package matrix provides the row-parallel arithmetic kernels:
// element-wise addition, subtraction and product, matrix multiplication,
// transpose, and scalar scaling.
//
// Purpose:
//   - Every kernel validates eagerly, allocates a zeroed result of the
//     validated shape, then hands a chunk worker to a runner that splits the
//     RESULT's rows into disjoint ranges.
//   - Chunk workers read operands and write only rows [start, end) of the result.
//
// Notes:
//   - Package-level functions run on fresh goroutines per call (parallel.Apply).
//   - Engine methods run the same kernels on a reusable parallel.Pool.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/parmatrix/parallel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
)

// runner executes chunk over [0, rows) and returns once every row is written.
type runner func(rows int, chunk func(start, end int)) error

// spawn is the per-call runner: one fresh goroutine per chunk.
func spawn(rows int, chunk func(start, end int)) error {
	parallel.Apply(rows, chunk)
	return nil
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the chunk loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: run a flat loop over rows [start,end) of every chunk.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSub(run runner, a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(opTag, a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.r, a.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	err = run(rows, func(start, end int) {
		for idx := start * cols; idx < end*cols; idx++ {
			res.data[idx] = a.data[idx] + sign*b.data[idx]
		}
	})
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// mul performs C = A × B, parallel over the rows of C.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: per chunk, i→k→j walk with row-major strides.
//
// Behavior highlights:
//   - Each C[i,j] accumulates A[i,k]*B[k,j] in ascending k, independent of how
//     rows are chunked, so results are bit-identical for any worker count.
//   - No zero-skipping: 0*Inf must still produce NaN.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func mul(run runner, a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	err = run(aRows, func(start, end int) {
		var rowOffsetA, rowOffsetB, rowOffsetR int
		var av float64
		for i := start; i < end; i++ {
			rowOffsetA = i * aCols
			rowOffsetR = i * bCols
			for k := 0; k < aCols; k++ {
				av = a.data[rowOffsetA+k]
				rowOffsetB = k * bCols
				for j := 0; j < bCols; j++ {
					res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
				}
			}
		}
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// transpose returns mᵀ, parallel over the rows of the RESULT (columns of m).
// Each chunk writes result rows [start,end) = columns [start,end) of m.
// Complexity: O(r*c).
func transpose(run runner, m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	err = run(cols, func(start, end int) {
		var base int
		for j := start; j < end; j++ {
			base = j * rows
			for i := 0; i < rows; i++ {
				res.data[base+i] = m.data[i*cols+j]
			}
		}
	})
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return res, nil
}

// scale returns alpha*m. NaN/Inf in alpha or m propagate.
func scale(run runner, m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.r, m.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	err = run(rows, func(start, end int) {
		for idx := start * cols; idx < end*cols; idx++ {
			res.data[idx] = m.data[idx] * alpha
		}
	})
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// hadamard computes a ⊙ b (element-wise product) into a fresh Dense.
func hadamard(run runner, a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(opHadamard, a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	rows, cols := a.r, a.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	err = run(rows, func(start, end int) {
		for idx := start * cols; idx < end*cols; idx++ {
			res.data[idx] = a.data[idx] * b.data[idx]
		}
	})
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Split C's rows across goroutines; each writes its own rows.
//
// Errors:
//   - ErrNilMatrix (nil input), *ShapeError / ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; no result is returned on error.
func Add(a, b *Dense) (*Dense, error) { return addSub(spawn, a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract as Add.
func Sub(a, b *Dense) (*Dense, error) { return addSub(spawn, a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Split C's rows across goroutines; i→k→j accumulation per row.
//
// Errors:
//   - ErrNilMatrix (nil input), *ShapeError / ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Cost per chunk is cubic, so an uneven last
//     chunk dominates wall time when rows is not a multiple of the worker count.
func Mul(a, b *Dense) (*Dense, error) { return mul(spawn, a, b) }

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) { return transpose(spawn, m) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) { return scale(spawn, m, alpha) }

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
// Errors: ErrNilMatrix, *ShapeError / ErrDimensionMismatch.
func Hadamard(a, b *Dense) (*Dense, error) { return hadamard(spawn, a, b) }
