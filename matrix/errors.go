// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. Panics are reserved for
// programmer errors: invalid options, MustDense and MustMultiply.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with fmt.Errorf("%s: %w", op, ErrX);
// callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape -> dimension mismatch -> worker failure.

var (
	// ErrInvalidDimensions indicates negative row or column counts.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when len(data) != rows*cols at construction.
	ErrBadShape = errors.New("matrix: data length does not match shape")

	// ErrOutOfRange indicates that an index (row, column or element) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: Multiply where
	// a.Cols != b.Rows, or DotProduct of vectors with different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrWorkerFailure indicates that a dispatched job never produced its reply
	// (its worker panicked or the pool was shut down underneath the call).
	// No partial result accompanies this error.
	ErrWorkerFailure = errors.New("matrix: worker failed to reply")
)
