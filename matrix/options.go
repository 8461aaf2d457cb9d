// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and the numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults and tolerances (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a final Options value.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric tolerances.
const (
	// DefaultEpsilon is the absolute tolerance of aggregate-sum equality.
	DefaultEpsilon = 1e-9

	// DivisionEpsilon is the smallest scalar magnitude accepted by Div.
	DivisionEpsilon = 1e-12

	// PivotEpsilon is the magnitude below which a pivot is treated as zero and
	// the determinant short-circuits to 0.
	PivotEpsilon = 1e-12
)

// Construction defaults.
const (
	// DefaultFill is the value every cell of New(n) starts with.
	DefaultFill = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// MaxDimension bounds n so that n*n never overflows int on any platform
	// with 64-bit ints; constructors reject larger values.
	MaxDimension = 1 << 16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFillInvalid = "matrix: WithFill: value must be finite"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	fill           float64 // DefaultFill
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithFill sets the initial value of every cell allocated by New.
// Implementation:
//   - Stage 1: validate v is finite.
//   - Stage 2: return a setter that writes fill into Options.
//
// Errors:
//   - Panics with a stable message when v is NaN or ±Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithFill(v float64) Option {
	if isNonFinite(v) {
		panic(panicFillInvalid)
	}

	return func(o *Options) { o.fill = v }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, Set, RowView.Set, Apply and slice ingestion reject NaN/±Inf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on the created matrix.
// The flag is carried by the value and inherited by results of binary
// operations through their left operand.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		fill:           DefaultFill,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
