// SPDX-License-Identifier: MIT

package matrix

// Test bridge for private kernels and the options snapshot.
//
// Purpose:
//   - Expose unexported ew* kernels and the resolved Options to matrix_test only.
//   - Compiled only with the test binary (_test.go suffix), so the production API stays narrow.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with Options; tests catch drift.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Fill           float64
	ValidateNaNInf bool
}

// Panic message exports to avoid magic strings in tests.
const PanicFillInvalid_TestOnly = panicFillInvalid

// GatherOptionsSnapshot_TestOnly resolves opts exactly as constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Fill: o.fill, ValidateNaNInf: o.validateNaNInf}
}

// EwCheckNonZero_TestOnly forwards to the private divisor scan.
func EwCheckNonZero_TestOnly(b *Square) error { return ewCheckNonZero(b) }

// EwSum_TestOnly forwards to the private summation kernel.
func EwSum_TestOnly(data []float64) float64 { return ewSum(data) }

// EwAddScaled_TestOnly forwards to the private a + sign*b kernel.
func EwAddScaled_TestOnly(a, b *Square, sign float64) *Square { return ewAddScaled(a, b, sign) }
