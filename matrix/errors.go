// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels (optionally wrapped with an op tag via
// matrixErrorf) and tests match them with errors.Is. User-triggered error
// conditions never panic.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// ERROR PRIORITY: nil operand -> dimension mismatch -> execution (pool closed).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or zero columns are a legal degenerate shape.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub/Hadamard on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDataLength signals a flat buffer whose length is not rows*cols.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrRaggedRows signals row slices of unequal length in NewFromRows.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")
)

// ErrShapeMismatch names the same condition as ErrDimensionMismatch.
var ErrShapeMismatch = ErrDimensionMismatch

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange

// ShapeError reports the operand shapes of a rejected binary operation.
// errors.Is(err, ErrDimensionMismatch) holds for every *ShapeError.
type ShapeError struct {
	Op                   string // operation tag (opMul, opAdd, ...)
	LeftRows, LeftCols   int
	RightRows, RightCols int
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %dx%d vs %dx%d",
		ErrDimensionMismatch, e.LeftRows, e.LeftCols, e.RightRows, e.RightCols)
}

// Is matches the dimension-mismatch sentinel.
func (e *ShapeError) Is(target error) bool { return target == ErrDimensionMismatch }

// newShapeError captures both operand shapes for op.
func newShapeError(op string, a, b *Dense) *ShapeError {
	return &ShapeError{
		Op:       op,
		LeftRows: a.r, LeftCols: a.c,
		RightRows: b.r, RightCols: b.c,
	}
}
