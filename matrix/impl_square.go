// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*n + c.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: Clone/Assign deep-copy, Take is the only transfer of a buffer.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - New: O(n²) fill; At/Set/Row: O(1); Clone/Assign: O(n²); Take: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxApply  = "Apply"  // method tag used in error wrappers
	ctxRow    = "Row"    // ctor tag for Square.Row
	ctxAssign = "Assign" // method tag used in error wrappers
	ctxTake   = "Take"   // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtCellSep = " "
	_fmtRowSep  = ", "
	_fmtRowEnd  = "\n"
)

// squareErrorf wraps an error with a uniform Square context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Square is a dense n×n matrix of float64 values.
//   - n holds the dimension (n ≥ 1 for every live value; 0 only after Take).
//   - data is a flat buffer of length n*n in row-major order (offset = r*n + c).
//   - validateNaNInf enables NaN/Inf rejection on ingestion (policy from options.go).
//
// The zero value is an empty matrix; every operation on it returns ErrNilMatrix
// until it is overwritten with Assign, Take or UnmarshalText.
type Square struct {
	n              int       // dimension
	data           []float64 // contiguous row-major storage (len == n*n)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on ingestion when true
}

// Compile-time assertions for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square)(nil)

// New creates an n×n matrix with every cell set to the fill value.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimension validation and numeric policy.
//
// Implementation:
//   - Stage 1: resolve options (fill, policy).
//   - Stage 2: validate 1 ≤ n ≤ MaxDimension; else ErrInvalidDimension.
//   - Stage 3: allocate the buffer; fill when the value is non-zero.
//
// Inputs:
//   - n: positive dimension.
//   - opts: WithFill, WithValidateNaNInf / WithNoValidateNaNInf.
//
// Returns:
//   - *Square: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimension (dimension contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int, opts ...Option) (*Square, error) {
	o := gatherOptions(opts...)
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	m := newSquare(n, o.validateNaNInf)
	if o.fill != 0 {
		for i := range m.data {
			m.data[i] = o.fill
		}
	}

	return m, nil
}

// NewFromSlice creates an n×n matrix holding a copy of vals in row-major order.
// Implementation:
//   - Stage 1: validate n, then len(vals) == n*n (ErrDimensionMismatch otherwise).
//   - Stage 2: enforce the numeric policy on every value.
//   - Stage 3: copy into a fresh buffer; vals is never retained.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFromSlice(n int, vals []float64, opts ...Option) (*Square, error) {
	o := gatherOptions(opts...)
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opNewFromSlice, err)
	}
	if len(vals) != n*n {
		return nil, matrixErrorf(opNewFromSlice,
			fmt.Errorf("len %d, want %d: %w", len(vals), n*n, ErrDimensionMismatch))
	}
	if o.validateNaNInf {
		if err := validateAllFinite(vals); err != nil {
			return nil, matrixErrorf(opNewFromSlice, err)
		}
	}

	m := newSquare(n, o.validateNaNInf)
	copy(m.data, vals)

	return m, nil
}

// newSquare allocates a zeroed n×n buffer without validation.
// Callers guarantee 1 ≤ n ≤ MaxDimension.
func newSquare(n int, validateNaNInf bool) *Square {
	return &Square{
		n:              n,
		data:           make([]float64, n*n),
		validateNaNInf: validateNaNInf,
	}
}

// like allocates a zeroed matrix with m's dimension and numeric policy.
func (m *Square) like() *Square { return newSquare(m.n, m.validateNaNInf) }

// adopt moves res's buffer into m. res must not be used afterwards.
// This is the single place where compound operations replace storage.
func (m *Square) adopt(res *Square) {
	m.n = res.n
	m.data = res.data
	res.n, res.data = 0, nil
}

// Dim returns the dimension n. Zero for nil or moved-from values.
// Complexity: O(1).
func (m *Square) Dim() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Data returns a copy of the row-major buffer.
// Complexity: O(n²).
func (m *Square) Data() []float64 {
	if m == nil || m.data == nil {
		return nil
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The row is checked before the column so diagnostics name the first bad index.
// Complexity: O(1).
func (m *Square) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, fmt.Errorf("row %d of %d: %w", row, m.n, ErrOutOfRange)
	}
	if col < 0 || col >= m.n {
		return 0, fmt.Errorf("column %d of %d: %w", col, m.n, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrNilMatrix for nil/moved-from receivers.
//   - ErrOutOfRange when row or col is outside [0, n).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square) At(row, col int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, squareErrorf(ctxAt, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square) Set(row, col int, v float64) error {
	if err := ValidateNotNil(m); err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return squareErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Cloning a nil or moved-from value yields nil.
// Complexity: O(n²).
func (m *Square) Clone() *Square {
	if m == nil || m.data == nil {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Square{
		n:              m.n,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Assign replaces m's contents with a deep copy of src (copy-assignment).
// MAIN DESCRIPTION:
//   - Release the current buffer and copy src; assigning m to itself is a no-op.
//
// Behavior highlights:
//   - The receiver may be empty (moved-from or zero value); src may not.
//   - On error the receiver is left untouched.
//
// Errors:
//   - ErrNilMatrix when m is nil or src is nil/moved-from.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Square) Assign(src *Square) error {
	if m == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	cp := src.Clone()
	m.adopt(cp)
	m.validateNaNInf = src.validateNaNInf

	return nil
}

// Take moves src's buffer into m (move-assignment). After the call src is
// empty: Dim() == 0 and every operation on it fails with ErrNilMatrix until it
// is overwritten. Taking from itself is a no-op.
// Complexity: O(1).
func (m *Square) Take(src *Square) error {
	if m == nil {
		return matrixErrorf(ctxTake, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxTake, err)
	}
	m.validateNaNInf = src.validateNaNInf
	m.adopt(src)

	return nil
}

// String renders n lines of n space-separated values, each line terminated by
// a newline. This is the stream write format; WriteTo emits the same bytes.
// Nil or moved-from values render as the empty string.
// Complexity: O(n²).
func (m *Square) String() string {
	if m == nil || m.data == nil {
		return ""
	}
	var b strings.Builder
	m.render(&b, _fmtCellSep, _fmtRowEnd, true)

	return b.String()
}

// Compact renders the single-line text construction format "1 2, 3 4",
// which Parse reads back into an equal matrix.
// Complexity: O(n²).
func (m *Square) Compact() string {
	if m == nil || m.data == nil {
		return ""
	}
	var b strings.Builder
	m.render(&b, _fmtCellSep, _fmtRowSep, false)

	return b.String()
}

// render writes rows deterministically; rowSep goes between rows and, when
// terminate is set, after the last row as well.
func (m *Square) render(b *strings.Builder, cellSep, rowSep string, terminate bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ {
		if i > 0 {
			b.WriteString(rowSep)
		}
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(cellSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
		}
	}
	if terminate && m.n > 0 {
		b.WriteString(rowSep)
	}
}

// Row returns a bounds-checked accessor bound to row r of m.
// MAIN DESCRIPTION:
//   - Two-step indexing: the row is checked here, the column by RowView.At/Set.
//
// Behavior highlights:
//   - The view owns nothing; writes go straight to m's buffer.
//   - A view taken before a compound operation or Take refers to the old buffer;
//     take a fresh view afterwards.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square) Row(r int) (RowView, error) {
	if err := ValidateNotNil(m); err != nil {
		return RowView{}, matrixErrorf(ctxRow, err)
	}
	if r < 0 || r >= m.n {
		return RowView{}, fmt.Errorf("Square.%s(%d): row of %d: %w", ctxRow, r, m.n, ErrOutOfRange)
	}

	return RowView{
		cells:          m.data[r*m.n : (r+1)*m.n : (r+1)*m.n],
		row:            r,
		validateNaNInf: m.validateNaNInf,
	}, nil
}

// RowView is a non-owning window onto one row of a Square.
type RowView struct {
	cells          []float64 // shares the base buffer, len == n
	row            int       // row index in the base, for diagnostics
	validateNaNInf bool      // inherited base policy
}

// Len returns the number of columns in the row.
func (v RowView) Len() int { return len(v.cells) }

// At reads column c of the row or returns ErrOutOfRange.
// Complexity: O(1).
func (v RowView) At(c int) (float64, error) {
	if c < 0 || c >= len(v.cells) {
		return 0, fmt.Errorf("RowView.At(%d,%d): column %d of %d: %w", v.row, c, c, len(v.cells), ErrOutOfRange)
	}

	return v.cells[c], nil
}

// Set writes column c of the row, honoring the base numeric policy.
// Complexity: O(1).
func (v RowView) Set(c int, val float64) error {
	if c < 0 || c >= len(v.cells) {
		return fmt.Errorf("RowView.Set(%d,%d): column %d of %d: %w", v.row, c, c, len(v.cells), ErrOutOfRange)
	}
	if v.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("RowView.Set(%d,%d): %w", v.row, c, ErrNaNInf)
	}
	v.cells[c] = val

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false. Nil or moved-from values
// visit nothing.
// Complexity: O(n²), Space O(1).
func (m *Square) Do(f func(i, j int, v float64) bool) {
	if m == nil || m.data == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v).
// Implementation:
//   - Stage 1: compute every new value into a scratch buffer, row-major.
//   - Stage 2: reject NaN/Inf if the policy is enabled (abort, receiver untouched).
//   - Stage 3: adopt the scratch buffer.
//
// Behavior highlights:
//   - All-or-nothing: an error leaves m exactly as it was.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when f produced a non-finite value under the policy.
//
// Complexity:
//   - Time O(n²), Space O(n²) scratch.
func (m *Square) Apply(f func(i, j int, v float64) float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxApply, err)
	}
	res := m.like()
	var i, j, base int
	var nv float64
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return squareErrorf(ctxApply, i, j, ErrNaNInf)
			}
			res.data[base+j] = nv
		}
	}
	m.adopt(res)

	return nil
}
