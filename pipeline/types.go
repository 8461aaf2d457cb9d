// SPDX-License-Identifier: MIT

// Package pipeline defines the script model and runner configuration for
// evaluating sequences of Square operations described in YAML.
//
// A Script binds names to matrices (Definitions) and then runs Steps in
// order. Each Step names an op, its operand bindings (Args), and the few
// parameters the op needs (Row/Col, Scalar, Modulus, Power). Matrix results
// can be bound to a new name with Into; InPlace applies the compound form of
// the op to Args[0].
//
// Errors (sentinel):
//
//	– ErrUnknownOp       if a step names an op the runner does not know.
//	– ErrUnknownMatrix   if an argument is not bound in the environment.
//	– ErrArity           if a step passes the wrong number of arguments.
//	– ErrBadDefinition   if a matrix definition has an unsupported shape.
//	– ErrBadStep         if a step combines fields the op cannot honor.
//
// Errors raised by the matrix package (ErrDimensionMismatch,
// ErrDivisionByZero, ...) are wrapped with the step index and op and remain
// matchable with errors.Is.
package pipeline

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/squaremat/matrix"
)

// Sentinel errors returned by the pipeline.
var (
	// ErrUnknownOp indicates that a step names an op the runner does not know.
	ErrUnknownOp = errors.New("pipeline: unknown op")

	// ErrUnknownMatrix indicates that a step argument is not a bound name.
	ErrUnknownMatrix = errors.New("pipeline: unknown matrix")

	// ErrArity indicates a wrong number of step arguments.
	ErrArity = errors.New("pipeline: wrong number of arguments")

	// ErrBadDefinition indicates a matrix definition that is neither a text
	// scalar nor one of the supported mappings.
	ErrBadDefinition = errors.New("pipeline: bad matrix definition")

	// ErrBadStep indicates a step whose fields do not fit its op, e.g. inplace
	// on an op without a compound form (mutating ops included) or into on a
	// scalar result.
	ErrBadStep = errors.New("pipeline: bad step")
)

// Script is a decoded pipeline: named matrices, then steps.
type Script struct {
	Matrices Definitions `yaml:"matrices"`
	Steps    []Step      `yaml:"steps"`
}

// Definitions keeps matrix definitions in document order.
type Definitions []NamedDefinition

// NamedDefinition binds Name to the matrix described by Def.
type NamedDefinition struct {
	Name string
	Def  Definition
}

// defKind tags which Definition shape was decoded.
type defKind int

const (
	defText     defKind = iota + 1 // "1 2, 3 4"
	defFill                        // {dim: n, fill: v}
	defIdentity                    // {identity: n}
	defValues                      // {dim: n, values: [...]}
)

// Definition describes how to construct one matrix.
type Definition struct {
	Text     string
	Dim      int
	Fill     float64
	Identity int
	Values   []float64

	kind defKind
}

// TextDefinition returns a Definition that parses text.
func TextDefinition(text string) Definition {
	return Definition{Text: text, kind: defText}
}

// Step is one operation in a Script.
type Step struct {
	Title   string   `yaml:"title"`
	Op      string   `yaml:"op"`
	Args    []string `yaml:"args"`
	Into    string   `yaml:"into"`
	InPlace bool     `yaml:"inplace"`
	Row     int      `yaml:"row"`
	Col     int      `yaml:"col"`
	Scalar  float64  `yaml:"scalar"`
	Modulus int      `yaml:"modulus"`
	Power   uint     `yaml:"power"`
}

// Kind classifies an Outcome value.
type Kind int

const (
	KindMatrix Kind = iota + 1
	KindScalar
	KindBool
)

// Outcome is the recorded result of one step.
//   - Matrix is a snapshot: later steps never modify it.
//   - Label is the step title, or a generated "op(args)" when untitled.
type Outcome struct {
	Index  int
	Op     string
	Label  string
	Kind   Kind
	Matrix *matrix.Square
	Scalar float64
	Bool   bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithOutput makes the runner render every outcome to w as it is produced.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithMatrixOptions forwards construction options (fill, numeric policy) to
// every matrix the runner builds from definitions.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(r *Runner) { r.matrixOpts = append(r.matrixOpts, opts...) }
}
