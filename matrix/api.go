// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructions.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized n×n matrix.
// It is a thin alias of New with an intention-revealing name.
// Complexity: O(n²).
func NewZeros(n int, opts ...Option) (*Square, error) {
	return New(n, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Square, error) {
	o := gatherOptions(opts...)
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return identityLike(newSquare(n, o.validateNaNInf)), nil
}

// ZerosLike returns a zero matrix with m's dimension and numeric policy.
// Complexity: O(n²).
func ZerosLike(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return m.like(), nil
}

// IdentityLike returns I with m's dimension and numeric policy.
// Complexity: O(n²).
func IdentityLike(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return identityLike(m), nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests, examples and package-level variables.
func MustParse(s string) *Square {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}
