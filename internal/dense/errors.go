// SPDX-License-Identifier: MIT

// Package dense - sentinel errors.
//
// Callers match with errors.Is; every public function wraps these with a
// method tag and, where it exists, the offending coordinate.
package dense

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNaNInf indicates a non-finite entry was rejected.
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")

	// ErrTooManySites indicates a register too wide to materialize.
	ErrTooManySites = errors.New("dense: too many sites")
)
