// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for operand checks run before any work starts.
//  - Return plain sentinels (or *ShapeError) so kernels wrap uniformly with matrixErrorf.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b (both non-nil) have equal dimensions.
// Returns a *ShapeError tagged with op on mismatch.
func ValidateSameShape(op string, a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return newShapeError(op, a, b)
	}

	return nil
}

// ValidateBinarySameShape runs NotNil on both operands, then SameShape.
// Used by Add, Sub and Hadamard.
func ValidateBinarySameShape(op string, a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(op, a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows on non-nil inputs.
//
// Errors: ErrNilMatrix, *ShapeError (ErrDimensionMismatch).
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return newShapeError(opMul, a, b)
	}

	return nil
}
