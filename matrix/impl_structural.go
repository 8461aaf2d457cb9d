// SPDX-License-Identifier: MIT

// Package matrix - structural transforms: transpose, determinant, trace.
//
// Determinism:
//   - Fixed loop orders; pivot ties resolve to the lowest row index.
//   - Sources are never mutated; the determinant works on a scratch copy.

package matrix

import "math"

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate the result.
//   - Stage 2: data[i*n + j] → res.data[j*n + i].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Transpose(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	n := m.n
	res := m.like()
	var i, j, baseSrc int
	for i = 0; i < n; i++ {
		baseSrc = i * n
		for j = 0; j < n; j++ {
			res.data[j*n+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Det computes the determinant by Gaussian elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduce a scratch copy to upper-triangular form while folding every
//     pivot into a running product; row swaps flip its sign.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); copy the buffer.
//   - Stage 2: for each column k pick the row ≥ k with the largest |a[i,k]|.
//     A pivot below PivotEpsilon means the matrix is singular: return 0 at
//     once without touching the remaining columns.
//   - Stage 3: swap (sign flip), multiply the accumulator by the pivot, scale
//     the pivot row to a leading 1 and eliminate the rows below.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n³), Space O(n²) scratch.
func Det(m *Square) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	tmp := make([]float64, len(m.data))
	copy(tmp, m.data)

	return determinantGauss(m.n, tmp), nil
}

// determinantGauss eliminates tmp (n×n, row-major) in place and returns the
// determinant. A 0×0 matrix has determinant 1 (empty product).
func determinantGauss(n int, tmp []float64) float64 {
	if n == 0 {
		return 1
	}

	det := 1.0
	var (
		i, j, k, piv       int
		pivot, inv, factor float64
		rowK, rowI, rowP   int
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below row k.
		piv = k
		for i = k + 1; i < n; i++ {
			if math.Abs(tmp[i*n+k]) > math.Abs(tmp[piv*n+k]) {
				piv = i
			}
		}
		if math.Abs(tmp[piv*n+k]) < PivotEpsilon {
			return 0
		}

		rowK = k * n
		if piv != k {
			rowP = piv * n
			for j = 0; j < n; j++ {
				tmp[rowK+j], tmp[rowP+j] = tmp[rowP+j], tmp[rowK+j]
			}
			det = -det
		}

		pivot = tmp[rowK+k]
		det *= pivot

		inv = 1.0 / pivot
		for j = k; j < n; j++ {
			tmp[rowK+j] *= inv
		}
		for i = k + 1; i < n; i++ {
			rowI = i * n
			factor = tmp[rowI+k]
			if factor == 0 {
				continue
			}
			for j = k; j < n; j++ {
				tmp[rowI+j] -= factor * tmp[rowK+j]
			}
		}
	}

	return det
}

// Trace returns the sum of the main diagonal.
// Complexity: O(n).
func Trace(m *Square) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	s := ZeroSum
	for i := 0; i < m.n; i++ {
		s += m.data[i*m.n+i]
	}

	return s, nil
}
