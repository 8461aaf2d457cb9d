// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Square storage, lifecycle and element access.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/squaremat/matrix"
)

func TestNew_DefaultZero(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		t.Run(fmt.Sprintf("%dx%d", n, n), func(t *testing.T) {
			m := MustNew(t, n)
			require.Equal(t, n, m.Dim())
			var i, j int
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j), "element [%d,%d]", i, j)
				}
			}
		})
	}
}

func TestNew_WithFill(t *testing.T) {
	m := MustNew(t, 3, matrix.WithFill(1.5))
	for _, v := range m.Data() {
		require.Equal(t, 1.5, v)
	}
	require.Equal(t, 13.5, m.Sum())
}

func TestNew_InvalidDimension(t *testing.T) {
	for _, n := range []int{0, -1, matrix.MaxDimension + 1} {
		_, err := matrix.New(n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimension, "n=%d", n)
	}
}

func TestWithFill_PanicsOnNonFinite(t *testing.T) {
	require.Panics(t, func() { matrix.WithFill(math.NaN()) })
	require.Panics(t, func() { matrix.WithFill(math.Inf(1)) })
}

func TestNewFromSlice(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	m, err := matrix.NewFromSlice(2, vals)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	// The input slice is copied, not retained.
	vals[0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewFromSlice(2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromSlice(0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.NewFromSlice(1, []float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err = matrix.NewFromSlice(1, []float64{math.Inf(-1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), -1))
}

func TestAtSet_Bounds(t *testing.T) {
	m := MustParse(t, "1 2, 3 4")
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))

	MustSet(t, m, 1, 0, 9)
	CompareExact(t, [][]float64{{1, 2}, {9, 4}}, m)

	for _, idx := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", idx)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange, "Set%v", idx)
	}
}

func TestAt_ErrorNamesRowOrColumn(t *testing.T) {
	m := MustNew(t, 2)
	_, err := m.At(2, 0)
	require.ErrorContains(t, err, "row 2")
	_, err = m.At(0, 2)
	require.ErrorContains(t, err, "column 2")
}

func TestSet_NumericPolicy(t *testing.T) {
	m := MustNew(t, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))

	lax := MustNew(t, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, lax.Set(0, 0, math.Inf(1)))
}

func TestRowView(t *testing.T) {
	m := MustParse(t, "1 2, 3 4")

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 2, row.Len())
	v, err := row.At(1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	require.NoError(t, row.Set(0, 42))
	require.Equal(t, 42.0, MustAt(t, m, 1, 0), "RowView writes through to the matrix")

	_, err = row.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, row.Set(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, row.Set(0, math.NaN()), matrix.ErrNaNInf)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	a := MustParse(t, "1 2, 3 4")
	b := a.Clone()
	MustSet(t, b, 0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
	require.Equal(t, 100.0, MustAt(t, b, 0, 0))

	var empty *matrix.Square
	require.Nil(t, empty.Clone())
}

func TestAssign(t *testing.T) {
	a := MustParse(t, "1 2, 3 4")
	b := MustParse(t, "1 2 3, 4 5 6, 7 8 9")

	require.NoError(t, a.Assign(b))
	require.Equal(t, 3, a.Dim())
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, a)

	// Deep copy: later writes do not leak across.
	MustSet(t, b, 0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))

	// Self-assignment is a no-op.
	require.NoError(t, a.Assign(a))
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, a)

	require.ErrorIs(t, a.Assign(nil), matrix.ErrNilMatrix)
	require.Equal(t, 3, a.Dim(), "failed Assign leaves the receiver untouched")
}

func TestTake_LeavesSourceEmpty(t *testing.T) {
	src := MustParse(t, "1 2, 3 4")
	var dst matrix.Square

	require.NoError(t, dst.Take(src))
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, &dst)

	require.Equal(t, 0, src.Dim())
	_, err := src.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(src, &dst)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// A moved-from value can be overwritten.
	require.NoError(t, src.Assign(&dst))
	require.Equal(t, 2, src.Dim())

	require.ErrorIs(t, dst.Take(&matrix.Square{}), matrix.ErrNilMatrix)
}

func TestZeroValue_IsEmpty(t *testing.T) {
	var m matrix.Square
	require.Equal(t, 0, m.Dim())
	require.Equal(t, "", m.String())
	require.Equal(t, 0.0, m.Sum())
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	_, err := m.Row(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDoAndApply(t *testing.T) {
	m := MustParse(t, "1 2, 3 4")

	var visited []float64
	m.Do(func(i, j int, v float64) bool {
		visited = append(visited, v)
		return len(visited) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, visited, "Do stops when f returns false")

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v*10 + float64(i+j) }))
	CompareExact(t, [][]float64{{10, 21}, {31, 42}}, m)

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 1 {
			return math.NaN()
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	CompareExact(t, [][]float64{{10, 21}, {31, 42}}, m)
}

func TestIdentityFacades(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	like, err := matrix.IdentityLike(MustNew(t, 2, matrix.WithFill(7)))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {0, 1}}, like)

	z, err := matrix.ZerosLike(id)
	require.NoError(t, err)
	require.Equal(t, 0.0, z.Sum())
	require.Equal(t, 3, z.Dim())

	z, err = matrix.NewZeros(2)
	require.NoError(t, err)
	require.Equal(t, 2, z.Dim())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMustParse_Panics(t *testing.T) {
	require.NotPanics(t, func() { matrix.MustParse("1") })
	require.Panics(t, func() { matrix.MustParse("1 2 3") })
}
