// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep facades minimal by delegating nil/shape/compatibility checks here.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSize rejects non-negative shapes whose element count rows*cols
// does not fit in an int.
func validateSize(rows, cols int) error {
	if cols != 0 && rows > math.MaxInt/cols {
		return fmt.Errorf("%d*%d overflows int: %w", rows, cols, ErrBadShape)
	}

	return nil
}

// validateShape checks the backing-length invariant n == rows*cols.
func validateShape(n, rows, cols int) error {
	if err := validateSize(rows, cols); err != nil {
		return err
	}
	if n != rows*cols {
		return fmt.Errorf("len %d != %d*%d: %w", n, rows, cols, ErrBadShape)
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Numeric](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil, and that
// the rows(a)×cols(b) product is addressable.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadShape.
// Complexity: O(1).
func ValidateMulCompatible[T Numeric](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%d×%d by %d×%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	if err := validateSize(a.r, b.c); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}

	return nil
}
