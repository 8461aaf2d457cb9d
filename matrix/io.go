// SPDX-License-Identifier: MIT

// Package matrix - textual I/O.
//
// Formats:
//   - Text construction: numeric tokens separated by any mix of commas and
//     whitespace. Commas are separators only; the row grouping of the source
//     text is ignored and the dimension is inferred from the token count,
//     which must be a perfect square.
//   - Stream write: n lines of n space-separated values, newline-terminated.
//   - Stream read: a leading integer dimension, then exactly n² values.
//
// Numbers are rendered with strconv 'g' and the shortest precision that
// round-trips, so Parse(m.String()) reproduces m exactly.

package matrix

import (
	"encoding"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// readChunk caps the initial capacity Read reserves before values arrive, so a
// large declared dimension on a short stream does not allocate n² up front.
const readChunk = 4096

var (
	_ encoding.TextMarshaler   = (*Square)(nil)
	_ encoding.TextUnmarshaler = (*Square)(nil)
	_ io.WriterTo              = (*Square)(nil)
)

// Parse builds a matrix from the text construction format, e.g. "1 2, 3 4".
// Implementation:
//   - Stage 1: treat commas as whitespace and split into tokens.
//   - Stage 2: reject zero tokens and counts that are not a perfect square.
//   - Stage 3: parse every token as a finite float64, in order, row-major.
//
// Errors:
//   - ErrInvalidFormat (empty, non-square count, non-numeric or non-finite token).
//
// Complexity:
//   - Time O(len(s)), Space O(n²).
func Parse(s string, opts ...Option) (*Square, error) {
	tokens := strings.Fields(strings.ReplaceAll(s, ",", " "))
	count := len(tokens)
	if count == 0 {
		return nil, matrixErrorf(opParse, fmt.Errorf("no tokens: %w", ErrInvalidFormat))
	}
	dim := isqrt(count)
	if dim*dim != count {
		return nil, matrixErrorf(opParse, fmt.Errorf("%d tokens is not a perfect square: %w", count, ErrInvalidFormat))
	}

	vals := make([]float64, count)
	for i, tok := range tokens {
		v, err := parseToken(tok)
		if err != nil {
			return nil, matrixErrorf(opParse, fmt.Errorf("token %d: %w", i, err))
		}
		vals[i] = v
	}

	m, err := NewFromSlice(dim, vals, opts...)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}

// Read consumes one matrix in the stream read format from r.
// MAIN DESCRIPTION:
//   - Scan a dimension token, then exactly n² value tokens, whitespace-separated.
//
// Behavior highlights:
//   - Tokens are pulled one at a time, so consecutive matrices can be read from
//     the same reader. Wrap slow readers in bufio.Reader for throughput.
//
// Errors:
//   - ErrInvalidFormat on a missing, non-integer or non-numeric token and on
//     premature end of input.
//   - ErrInvalidDimension when the declared dimension is not in [1, MaxDimension].
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Read(r io.Reader, opts ...Option) (*Square, error) {
	var tok string
	if _, err := fmt.Fscan(r, &tok); err != nil {
		return nil, matrixErrorf(opRead, fmt.Errorf("dimension: %v: %w", err, ErrInvalidFormat))
	}
	dim, err := strconv.Atoi(tok)
	if err != nil {
		return nil, matrixErrorf(opRead, fmt.Errorf("dimension %q: %w", tok, ErrInvalidFormat))
	}
	if err = ValidateDimension(dim); err != nil {
		return nil, matrixErrorf(opRead, err)
	}

	total := dim * dim
	vals := make([]float64, 0, min(total, readChunk))
	var v float64
	for i := 0; i < total; i++ {
		if _, err = fmt.Fscan(r, &tok); err != nil {
			return nil, matrixErrorf(opRead, fmt.Errorf("value %d of %d: %v: %w", i, total, err, ErrInvalidFormat))
		}
		if v, err = parseToken(tok); err != nil {
			return nil, matrixErrorf(opRead, fmt.Errorf("value %d of %d: %w", i, total, err))
		}
		vals = append(vals, v)
	}

	m, err := NewFromSlice(dim, vals, opts...)
	if err != nil {
		return nil, matrixErrorf(opRead, err)
	}

	return m, nil
}

// WriteTo writes m in the stream write format (see String).
// Implements io.WriterTo.
//
// Errors:
//   - ErrNilMatrix; any error returned by w.
func (m *Square) WriteTo(w io.Writer) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opWrite, err)
	}
	n, err := io.WriteString(w, m.String())
	if err != nil {
		return int64(n), matrixErrorf(opWrite, err)
	}

	return int64(n), nil
}

// Write emits the dimension on its own line followed by m's rows, which is
// exactly what Read consumes.
func Write(w io.Writer, m *Square) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWrite, err)
	}
	if _, err := fmt.Fprintf(w, "%d\n", m.n); err != nil {
		return matrixErrorf(opWrite, err)
	}
	_, err := m.WriteTo(w)

	return err
}

// MarshalText encodes m in the single-line construction format (Compact).
func (m *Square) MarshalText() ([]byte, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MarshalText", err)
	}

	return []byte(m.Compact()), nil
}

// UnmarshalText replaces m with the matrix parsed from text. The receiver may
// be empty; on error it is left untouched.
func (m *Square) UnmarshalText(text []byte) error {
	if m == nil {
		return matrixErrorf("UnmarshalText", ErrNilMatrix)
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return matrixErrorf("UnmarshalText", err)
	}
	m.validateNaNInf = parsed.validateNaNInf
	m.adopt(parsed)

	return nil
}

// parseToken parses one finite decimal float64 token. Hex mantissas and
// digit underscores, which strconv would accept, are rejected.
func parseToken(tok string) (float64, error) {
	if !isDecimalToken(tok) {
		return 0, fmt.Errorf("%q: %w", tok, ErrInvalidFormat)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || isNonFinite(v) {
		return 0, fmt.Errorf("%q: %w", tok, ErrInvalidFormat)
	}

	return v, nil
}

// isDecimalToken reports whether tok uses only decimal float syntax:
// sign, digits, a point and a decimal exponent.
func isDecimalToken(tok string) bool {
	for i := 0; i < len(tok); i++ {
		switch c := tok[i]; {
		case c >= '0' && c <= '9', c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return false
		}
	}

	return true
}

// isqrt returns ⌊√c⌋ for c ≥ 0, corrected for float rounding.
func isqrt(c int) int {
	r := int(math.Sqrt(float64(c)))
	for r*r > c {
		r--
	}
	for (r+1)*(r+1) <= c {
		r++
	}

	return r
}
