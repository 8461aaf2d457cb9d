// SPDX-License-Identifier: MIT

package pipeline

import (
	"math"
	"sort"

	"github.com/katalvlaran/squaremat/matrix"
)

// opSpec describes one op of the script language.
//   - arity: exact number of Args.
//   - eval: pure evaluation on the resolved operands.
//   - inPlace: compound form applied to operands[0]; nil when the op has none.
//   - mutates: eval itself updates operands[0] (set, inc, ...); inplace is rejected.
type opSpec struct {
	arity   int
	eval    func(st Step, ms []*matrix.Square) (Outcome, error)
	inPlace func(st Step, ms []*matrix.Square) error
	mutates bool
}

// ops is the op table, keyed by the name used in scripts.
var ops = map[string]opSpec{
	"add":      {arity: 2, eval: binary(matrix.Add), inPlace: binaryInPlace((*matrix.Square).AddInPlace)},
	"sub":      {arity: 2, eval: binary(matrix.Sub), inPlace: binaryInPlace((*matrix.Square).SubInPlace)},
	"mul":      {arity: 2, eval: binary(matrix.Mul), inPlace: binaryInPlace((*matrix.Square).MulInPlace)},
	"hadamard": {arity: 2, eval: binary(matrix.Hadamard), inPlace: binaryInPlace((*matrix.Square).HadamardInPlace)},
	"mod":      {arity: 2, eval: binary(matrix.Mod), inPlace: binaryInPlace((*matrix.Square).ModInPlace)},

	"neg":       {arity: 1, eval: unary(matrix.Neg)},
	"transpose": {arity: 1, eval: unary(matrix.Transpose)},
	"copy":      {arity: 1, eval: unary(cloneOf)},
	"print":     {arity: 1, eval: unary(cloneOf)},

	"scale":      {arity: 1, eval: withScalar(matrix.Scale), inPlace: withScalarInPlace((*matrix.Square).ScaleInPlace)},
	"div":        {arity: 1, eval: withScalar(matrix.Div), inPlace: withScalarInPlace((*matrix.Square).DivInPlace)},
	"add-scalar": {arity: 1, eval: withScalar(matrix.AddScalar), inPlace: withScalarInPlace((*matrix.Square).AddScalarInPlace)},
	"sub-scalar": {arity: 1, eval: withScalar(matrix.SubScalar), inPlace: withScalarInPlace((*matrix.Square).SubScalarInPlace)},
	"mod-scalar": {
		arity: 1,
		eval: func(st Step, ms []*matrix.Square) (Outcome, error) {
			return matrixOutcome(matrix.ModScalar(ms[0], st.Modulus))
		},
		inPlace: func(st Step, ms []*matrix.Square) error { return ms[0].ModScalarInPlace(st.Modulus) },
	},
	"pow": {
		arity: 1,
		eval: func(st Step, ms []*matrix.Square) (Outcome, error) {
			return matrixOutcome(matrix.Pow(ms[0], st.Power))
		},
	},

	"det":   {arity: 1, eval: scalar(matrix.Det)},
	"trace": {arity: 1, eval: scalar(matrix.Trace)},
	"sum": {arity: 1, eval: scalar(func(m *matrix.Square) (float64, error) {
		if err := matrix.ValidateNotNil(m); err != nil {
			return 0, err
		}
		return m.Sum(), nil
	})},
	"at": {
		arity: 1,
		eval: func(st Step, ms []*matrix.Square) (Outcome, error) {
			v, err := ms[0].At(st.Row, st.Col)
			if err != nil {
				return Outcome{}, err
			}
			return Outcome{Kind: KindScalar, Scalar: v}, nil
		},
	},

	"set": {arity: 1, mutates: true, eval: mutate(func(st Step, m *matrix.Square) error {
		return m.Set(st.Row, st.Col, st.Scalar)
	})},
	"inc":      {arity: 1, mutates: true, eval: mutate(func(_ Step, m *matrix.Square) error { return m.Inc() })},
	"dec":      {arity: 1, mutates: true, eval: mutate(func(_ Step, m *matrix.Square) error { return m.Dec() })},
	"post-inc": {arity: 1, mutates: true, eval: unary(func(m *matrix.Square) (*matrix.Square, error) { return m.PostInc() })},
	"post-dec": {arity: 1, mutates: true, eval: unary(func(m *matrix.Square) (*matrix.Square, error) { return m.PostDec() })},

	"eq": {arity: 2, eval: relation((*matrix.Square).Equal)},
	"ne": {arity: 2, eval: relation((*matrix.Square).NotEqual)},
	"lt": {arity: 2, eval: relation((*matrix.Square).Less)},
	"le": {arity: 2, eval: relation((*matrix.Square).LessOrEqual)},
	"gt": {arity: 2, eval: relation((*matrix.Square).Greater)},
	"ge": {arity: 2, eval: relation((*matrix.Square).GreaterOrEqual)},
}

// OpNames returns the supported op names in sorted order.
func OpNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// matrixOutcome wraps a matrix result, passing err through.
func matrixOutcome(m *matrix.Square, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Kind: KindMatrix, Matrix: m}, nil
}

// binary adapts a pure two-operand op.
func binary(f func(a, b *matrix.Square) (*matrix.Square, error)) func(Step, []*matrix.Square) (Outcome, error) {
	return func(_ Step, ms []*matrix.Square) (Outcome, error) { return matrixOutcome(f(ms[0], ms[1])) }
}

// binaryInPlace adapts a two-operand compound form.
func binaryInPlace(f func(m, b *matrix.Square) error) func(Step, []*matrix.Square) error {
	return func(_ Step, ms []*matrix.Square) error { return f(ms[0], ms[1]) }
}

// unary adapts a pure one-operand op.
func unary(f func(m *matrix.Square) (*matrix.Square, error)) func(Step, []*matrix.Square) (Outcome, error) {
	return func(_ Step, ms []*matrix.Square) (Outcome, error) { return matrixOutcome(f(ms[0])) }
}

// withScalar adapts a pure op taking Step.Scalar.
func withScalar(f func(m *matrix.Square, s float64) (*matrix.Square, error)) func(Step, []*matrix.Square) (Outcome, error) {
	return func(st Step, ms []*matrix.Square) (Outcome, error) { return matrixOutcome(f(ms[0], st.Scalar)) }
}

// withScalarInPlace adapts a compound form taking Step.Scalar.
func withScalarInPlace(f func(m *matrix.Square, s float64) error) func(Step, []*matrix.Square) error {
	return func(st Step, ms []*matrix.Square) error { return f(ms[0], st.Scalar) }
}

// scalar adapts an op that reduces a matrix to one number.
func scalar(f func(m *matrix.Square) (float64, error)) func(Step, []*matrix.Square) (Outcome, error) {
	return func(_ Step, ms []*matrix.Square) (Outcome, error) {
		v, err := f(ms[0])
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: KindScalar, Scalar: v}, nil
	}
}

// mutate applies f to operands[0] and reports a snapshot of the new value.
func mutate(f func(st Step, m *matrix.Square) error) func(Step, []*matrix.Square) (Outcome, error) {
	return func(st Step, ms []*matrix.Square) (Outcome, error) {
		if err := f(st, ms[0]); err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: KindMatrix, Matrix: ms[0].Clone()}, nil
	}
}

// relation adapts a comparison of two matrices.
func relation(f func(a, b *matrix.Square) bool) func(Step, []*matrix.Square) (Outcome, error) {
	return func(_ Step, ms []*matrix.Square) (Outcome, error) {
		return Outcome{Kind: KindBool, Bool: f(ms[0], ms[1])}, nil
	}
}

// cloneOf copies m, failing on nil or moved-from values.
func cloneOf(m *matrix.Square) (*matrix.Square, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Clone(), nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
