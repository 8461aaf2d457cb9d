// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/squaremat/matrix"
)

func TestCompare_BySum(t *testing.T) {
	a := MustParse(t, "1 2 3, 4 5 6, 7 8 9") // 45
	b := MustNew(t, 3, matrix.WithFill(1))  // 9
	MustSet(t, b, 1, 2, 42)                 // 50

	require.Equal(t, 45.0, a.Sum())
	require.Equal(t, 50.0, b.Sum())

	require.True(t, a.Less(b))
	require.True(t, a.LessOrEqual(b))
	require.False(t, a.GreaterOrEqual(b))
	require.False(t, a.Greater(b))
	require.True(t, a.NotEqual(b))
	require.False(t, a.Equal(b))
	require.Equal(t, -1, matrix.Compare(a, b))
	require.Equal(t, 1, matrix.Compare(b, a))
}

func TestEqual_IgnoresShapeAndLayout(t *testing.T) {
	a := MustParse(t, "1 2, 3 4")
	b := MustParse(t, "4 3, 2 1")
	c := MustParse(t, "10")
	d := MustNew(t, 5, matrix.WithFill(0.4))

	require.True(t, a.Equal(b))
	require.True(t, a.Equal(c), "sums agree across different dimensions")
	require.True(t, a.Equal(d))
	require.Equal(t, 0, matrix.Compare(a, c))
}

func TestEqual_Tolerance(t *testing.T) {
	a := MustParse(t, "1")
	near := MustParse(t, "1.0000000001")
	far := MustParse(t, "1.00000001")

	require.True(t, a.Equal(near))
	require.False(t, a.NotEqual(near))
	// Ordering uses raw sums, so a pair can be both equal and strictly ordered.
	require.True(t, a.Less(near))

	require.False(t, a.Equal(far))
	require.True(t, a.Less(far))
}

func TestCompare_EmptyOperands(t *testing.T) {
	var empty matrix.Square
	zero := MustNew(t, 2)

	require.True(t, empty.Equal(zero))
	require.True(t, zero.Equal(nil))
	require.True(t, MustParse(t, "-1").Less(&empty))
}
