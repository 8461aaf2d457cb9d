// SPDX-License-Identifier: MIT
// Package matrix provides the value-returning arithmetic of Square:
// element-wise addition, subtraction, product and modulo, scalar operations,
// matrix multiplication and exponentiation by repeated squaring. All functions
// perform strict fail-fast validation and return a fresh result; operands are
// never mutated.
//
// Notes:
//   - Compound (in-place) forms live in impl_compound.go and delegate here.
//   - All kernels use the central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew          = "New"
	opNewFromSlice = "NewFromSlice"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opHadamard     = "Hadamard"
	opMod          = "Mod"
	opNeg          = "Neg"
	opScale        = "Scale"
	opDiv          = "Div"
	opAddScalar    = "AddScalar"
	opSubScalar    = "SubScalar"
	opModScalar    = "ModScalar"
	opPow          = "Pow"
	opTranspose    = "Transpose"
	opDet          = "Det"
	opTrace        = "Trace"
	opIdentity     = "Identity"
	opParse        = "Parse"
	opRead         = "Read"
	opWrite        = "WriteTo"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Square.
// Implementation:
//   - Stage 1: ValidateBinary (non-nil, equal dimension) before touching data.
//   - Stage 2: single flat loop 0..n²-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add(a, b *Square) (*Square, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return ewAddScaled(a, b, +1), nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Square.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(n²), Space O(n²).
func Sub(a, b *Square) (*Square, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return ewAddScaled(a, b, -1), nil
}

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Complexity: Time O(n²), Space O(n²).
func Hadamard(a, b *Square) (*Square, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return ewZip(a, b, func(x, y float64) float64 { return x * y }), nil
}

// Mod computes the element-wise floating-point remainder C[i,j] = fmod(A[i,j], B[i,j]).
// The sign of each result follows the dividend (not Euclidean modulo).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrDivisionByZero when any divisor cell is exactly 0 (fmod would yield NaN).
//
// Complexity: Time O(n²), Space O(n²).
func Mod(a, b *Square) (*Square, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMod, err)
	}
	if err := ewCheckNonZero(b); err != nil {
		return nil, matrixErrorf(opMod, err)
	}

	return ewZip(a, b, fmod), nil
}

// Neg returns -M (every element sign-flipped).
// Complexity: Time O(n²), Space O(n²).
func Neg(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return ewMap(m, func(v float64) float64 { return -v }), nil
}

// Scale returns a new matrix whose elements are s * m[i,j].
// Scalar multiplication commutes, so s*M and M*s are both this call.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when s is not finite.
//
// Complexity: Time O(n²), Space O(n²).
func Scale(m *Square, s float64) (*Square, error) {
	if err := validateScalarOp(m, s); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return ewMap(m, func(v float64) float64 { return v * s }), nil
}

// Div returns a new matrix whose elements are m[i,j] / s.
// Implementation:
//   - Stage 1: validate m and s; reject |s| < DivisionEpsilon.
//   - Stage 2: flat divide.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrDivisionByZero.
//
// Complexity: Time O(n²), Space O(n²).
func Div(m *Square, s float64) (*Square, error) {
	if err := validateScalarOp(m, s); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if math.Abs(s) < DivisionEpsilon {
		return nil, matrixErrorf(opDiv, fmt.Errorf("divisor %g: %w", s, ErrDivisionByZero))
	}

	return ewMap(m, func(v float64) float64 { return v / s }), nil
}

// AddScalar returns m[i,j] + s for every cell.
// Complexity: Time O(n²), Space O(n²).
func AddScalar(m *Square, s float64) (*Square, error) {
	if err := validateScalarOp(m, s); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}

	return ewMap(m, func(v float64) float64 { return v + s }), nil
}

// SubScalar returns m[i,j] - s for every cell.
// Complexity: Time O(n²), Space O(n²).
func SubScalar(m *Square, s float64) (*Square, error) {
	if err := validateScalarOp(m, s); err != nil {
		return nil, matrixErrorf(opSubScalar, err)
	}

	return ewMap(m, func(v float64) float64 { return v - s }), nil
}

// ModScalar replaces every element with fmod(element, k).
// Floating-point remainder: the sign follows the dividend, so -5 % 4 == -1.
//
// Errors:
//   - ErrNilMatrix; ErrDivisionByZero when k == 0.
//
// Complexity: Time O(n²), Space O(n²).
func ModScalar(m *Square, k int) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opModScalar, err)
	}
	if k == 0 {
		return nil, matrixErrorf(opModScalar, ErrDivisionByZero)
	}
	kf := float64(k)

	return ewMap(m, func(v float64) float64 { return fmod(v, kf) }), nil
}

// validateScalarOp is the composite guard of scalar operations: NotNil → Finite(s).
func validateScalarOp(m *Square, s float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateFinite(s)
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateBinary (non-nil, equal dimension).
//   - Stage 2: i→k→j loops over row-major strides into a zeroed result:
//     row i of C accumulates row k of B scaled by A[i,k]; zero A[i,k] are skipped.
//
// Behavior highlights:
//   - Never writes into an operand, so Mul(a, a) is safe.
//   - Deterministic triple loop; one allocation for C.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Square) (*Square, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulKernel(a, b), nil
}

// mulKernel is the unchecked i-k-j product of two equal-dimension matrices.
func mulKernel(a, b *Square) *Square {
	n := a.n
	res := a.like()
	var (
		i, j, k                      int
		av                           float64
		rowOffsetA, rowOffsetB, rowR int
	)
	for i = 0; i < n; i++ {
		rowOffsetA = i * n
		rowR = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * n
			for j = 0; j < n; j++ {
				res.data[rowR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// Pow raises m to the non-negative integer power p by repeated squaring.
// MAIN DESCRIPTION:
//   - p == 0 yields the identity of the same dimension.
//   - p ≥ 1 starts from res = base = m, consumes one factor (p--), then while
//     p > 0: res *= base when the low bit is set, base *= base, p >>= 1.
//
// Behavior highlights:
//   - O(n³ log p) instead of O(n³ p); m is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n³ log p), Space O(n²).
func Pow(m *Square, p uint) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if p == 0 {
		return identityLike(m), nil
	}

	base := m.Clone()
	res := m.Clone()
	p--
	for p > 0 {
		if p&1 == 1 {
			res = mulKernel(res, base)
		}
		base = mulKernel(base, base)
		p >>= 1
	}

	return res, nil
}

// identityLike builds I with m's dimension and numeric policy.
func identityLike(m *Square) *Square {
	id := m.like()
	for i := 0; i < m.n; i++ {
		id.data[i*m.n+i] = 1
	}

	return id
}
