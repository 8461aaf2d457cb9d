// SPDX-License-Identifier: MIT
package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The public constructors never produce n == 0, so the empty-kernel
// convention is only reachable from inside the package.
func TestDeterminantGauss_Empty(t *testing.T) {
	require.Equal(t, 1.0, determinantGauss(0, nil))
}

func TestDeterminantGauss_TinyPivot(t *testing.T) {
	tmp := []float64{1e-13, 0, 0, 1e-13}
	require.Equal(t, 0.0, determinantGauss(2, tmp))
}

func TestIsqrt(t *testing.T) {
	for c, want := range map[int]int{0: 0, 1: 1, 3: 1, 4: 2, 8: 2, 9: 3, 1 << 32: 1 << 16} {
		require.Equal(t, want, isqrt(c), "isqrt(%d)", c)
	}
}
