// SPDX-License-Identifier: MIT

// Package matrix - relational layer.
//
// All relations compare the aggregate sum of the elements, not the elements
// themselves. Equality is tolerant (|Δ| < DefaultEpsilon); the four ordering
// relations compare the raw sums. Near equal sums this means a.Equal(b) and
// a.Less(b) can both hold. That behavior is kept for compatibility.
//
// Dimensions are not required to match. A nil or moved-from value sums to 0.

package matrix

import "math"

// Sum returns the aggregate sum of all elements.
// Complexity: O(n²).
func (m *Square) Sum() float64 {
	if m == nil {
		return 0
	}

	return ewSum(m.data)
}

// Equal reports |sum(m) - sum(o)| < DefaultEpsilon.
func (m *Square) Equal(o *Square) bool {
	return math.Abs(m.Sum()-o.Sum()) < DefaultEpsilon
}

// NotEqual is !Equal.
func (m *Square) NotEqual(o *Square) bool { return !m.Equal(o) }

// Less reports sum(m) < sum(o).
func (m *Square) Less(o *Square) bool { return m.Sum() < o.Sum() }

// LessOrEqual reports sum(m) <= sum(o).
func (m *Square) LessOrEqual(o *Square) bool { return m.Sum() <= o.Sum() }

// Greater reports sum(m) > sum(o).
func (m *Square) Greater(o *Square) bool { return m.Sum() > o.Sum() }

// GreaterOrEqual reports sum(m) >= sum(o).
func (m *Square) GreaterOrEqual(o *Square) bool { return m.Sum() >= o.Sum() }

// Compare returns 0 when a.Equal(b), otherwise -1 or +1 by the raw sums.
// Suitable for slices.SortFunc.
func Compare(a, b *Square) int {
	if a.Equal(b) {
		return 0
	}
	if a.Sum() < b.Sum() {
		return -1
	}

	return 1
}
