// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
)

// --- ewAddScaled ---------------------------------------------------------------

func TestEwAddScaled_SignAndOperandsUntouched(t *testing.T) {
	t.Parallel()

	a := MustParse(t, "1 2, 3 4")
	b := MustParse(t, "10 20, 30 40")

	plus := matrix.EwAddScaled_TestOnly(a, b, +1)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, plus)

	minus := matrix.EwAddScaled_TestOnly(a, b, -1)
	CompareExact(t, [][]float64{{-9, -18}, {-27, -36}}, minus)

	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, b)
}

// --- ewCheckNonZero -------------------------------------------------------------

func TestEwCheckNonZero_ReportsFirstZero(t *testing.T) {
	t.Parallel()

	if err := matrix.EwCheckNonZero_TestOnly(MustParse(t, "1 -1, 0.5 2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := matrix.EwCheckNonZero_TestOnly(MustParse(t, "1 2 3, 4 5 0, 0 8 9"))
	if !errors.Is(err, matrix.ErrDivisionByZero) {
		t.Fatalf("want ErrDivisionByZero, got %v", err)
	}
	if want := "divisor (1,2): matrix: division by zero"; err.Error() != want {
		t.Fatalf("error text: got %q, want %q", err.Error(), want)
	}
}

// --- ewSum ----------------------------------------------------------------------

func TestEwSum(t *testing.T) {
	t.Parallel()

	if got := matrix.EwSum_TestOnly(nil); got != matrix.ZeroSum {
		t.Fatalf("empty sum: got %v, want %v", got, matrix.ZeroSum)
	}
	if got := matrix.EwSum_TestOnly([]float64{1.5, -0.5, 4}); got != 5 {
		t.Fatalf("sum: got %v, want 5", got)
	}
}
