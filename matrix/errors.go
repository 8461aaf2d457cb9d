// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; MustParse is the single documented exception.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("<Op>: %w", ErrX) through matrixErrorf or
// squareErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil/moved-from -> dimension -> index -> numeric policy -> division.

var (
	// ErrInvalidDimension is returned when a requested dimension is not in
	// [1, MaxDimension]. Constructors validate before allocating.
	ErrInvalidDimension = errors.New("matrix: dimension must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// At/Set/Row and RowView accessors MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different dimension, or a raw
	// value slice whose length is not n*n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivisionByZero signals a divisor whose magnitude is below DivisionEpsilon
	// (scalar division) or exactly zero (modulo).
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrInvalidFormat signals a parse/read failure: empty input, a token count
	// that is not a perfect square, a non-numeric token or a truncated stream.
	ErrInvalidFormat = errors.New("matrix: invalid format")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (Set, ingestion, scalar operands).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil or moved-from (empty) Square was used.
	ErrNilMatrix = errors.New("matrix: nil or empty matrix")
)
