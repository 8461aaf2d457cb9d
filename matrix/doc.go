// Package matrix implements Square, a dense n×n matrix of float64 values with
// value semantics.
//
// The package provides:
//
//   - Construction: New (with WithFill), NewFromSlice, NewIdentity, Parse
//     ("1 2, 3 4"), Read (leading dimension, then n² values).
//   - Element access: At/Set with bounds checks, Row for a two-step RowView.
//   - Arithmetic: Add, Sub, Hadamard, Mod, Neg, Scale, Div, AddScalar,
//     SubScalar, ModScalar, Mul (i-k-j loop order) and Pow (repeated squaring),
//     each with a compound *InPlace method that is safe under self-aliasing.
//   - Structure: Transpose, Det (partial-pivot Gaussian elimination), Trace.
//   - Comparison by aggregate sum: Equal (tolerance 1e-9), Less, Greater, ...
//   - Output: String/WriteTo (one line per row), Compact, MarshalText.
//
// Every operation validates its operands before touching any element and
// reports failures through the sentinel errors in errors.go; nothing panics on
// user input (MustParse excepted). Operations never share buffers between
// results and operands: a.MulInPlace(a) squares a.
//
// Square values are not safe for concurrent mutation; distinct values are
// independent.
package matrix
