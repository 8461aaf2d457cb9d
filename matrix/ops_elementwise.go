// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) so the arithmetic
//     facades do not duplicate tight loops.
//   - Keep all loops deterministic and cache-friendly: a single flat walk
//     0..n²-1 over the row-major buffers.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Kernels assume validated operands; facades in impl_arithmetic.go run the
//     validators first so nothing is allocated or touched on error.
//   - No hidden allocations beyond the output Square; O(n²) time and space.

package matrix

import (
	"fmt"
	"math"
)

// ewMap computes out[i] = f(m[i]) over the flat buffer.
// Time: O(n²). Space: O(n²). Deterministic flat loop.
func ewMap(m *Square, f func(v float64) float64) *Square {
	out := m.like()
	for idx, v := range m.data {
		out.data[idx] = f(v)
	}

	return out
}

// ewZip computes out[i] = f(a[i], b[i]). Operands must share the dimension.
// The result inherits a's numeric policy.
// Time: O(n²). Space: O(n²).
func ewZip(a, b *Square, f func(x, y float64) float64) *Square {
	out := a.like()
	bd := b.data
	for idx, x := range a.data {
		out.data[idx] = f(x, bd[idx])
	}

	return out
}

// ewAddScaled computes out[i] = a[i] + sign*b[i] for sign ∈ {+1, -1}.
// Keeping sign as a float avoids a branch inside the hot loop.
// Time: O(n²). Space: O(n²).
func ewAddScaled(a, b *Square, sign float64) *Square {
	out := a.like()
	bd := b.data
	for idx, x := range a.data {
		out.data[idx] = x + sign*bd[idx]
	}

	return out
}

// ewCheckNonZero returns ErrDivisionByZero at the first exactly-zero divisor
// cell of b. Used by element-wise modulo before any output is produced.
// Time: O(n²). Space: O(1).
func ewCheckNonZero(b *Square) error {
	for idx, v := range b.data {
		if v == 0 {
			return fmt.Errorf("divisor (%d,%d): %w", idx/b.n, idx%b.n, ErrDivisionByZero)
		}
	}

	return nil
}

// ewSum returns the aggregate sum of the buffer in flat order.
// Time: O(n²). Space: O(1).
func ewSum(data []float64) float64 {
	s := 0.0
	for _, v := range data {
		s += v
	}

	return s
}

// fmod is the floating-point remainder with the sign of the dividend.
func fmod(x, y float64) float64 { return math.Mod(x, y) }
