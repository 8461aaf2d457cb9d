// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/dimension/finite checks here.
//  - Return plain sentinel errors tagged with the validator name so call sites
//    can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → NotNil → Dim).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil and not a moved-from value.
//
// Returns ErrNilMatrix if m == nil or its buffer was released by Take.
// Complexity: O(1).
func ValidateNotNil(m *Square) error {
	if m == nil || m.data == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDimension checks that n is a legal dimension in [1, MaxDimension].
// Complexity: O(1).
func ValidateDimension(n int) error {
	if n <= 0 || n > MaxDimension {
		return validatorErrorf("ValidateDimension", fmt.Errorf("%d: %w", n, ErrInvalidDimension))
	}

	return nil
}

// ValidateSameDim ensures a and b have the same dimension.
// Assumes both are non-nil (caller must ensure).
// Complexity: O(1).
func ValidateSameDim(a, b *Square) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameDim", fmt.Errorf("%d != %d: %w", a.n, b.n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinary is the composite guard for every two-operand operation:
// NotNil(a) → NotNil(b) → SameDim(a, b). It runs before any element is touched.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinary(a, b *Square) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameDim(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}

// ValidateFinite returns ErrNaNInf when v is NaN or ±Inf.
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if isNonFinite(v) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// validateAllFinite scans vals and reports the first non-finite offset.
// Complexity: O(len(vals)).
func validateAllFinite(vals []float64) error {
	for i, v := range vals {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("offset %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}
