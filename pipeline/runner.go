// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/squaremat/matrix"
)

// Runner evaluates Scripts. A Runner holds configuration only; every Run
// starts from a fresh environment, so one Runner may serve sequential runs.
type Runner struct {
	logger     *zap.Logger
	out        io.Writer
	matrixOpts []matrix.Option
}

// NewRunner builds a Runner. Defaults: no-op logger, no rendered output.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Run binds s.Matrices in document order and then evaluates s.Steps.
//
// Behavior highlights:
//   - ctx is checked before each step; a running step is never interrupted.
//   - The first failing step stops the run. Outcomes of the steps that
//     completed are returned together with the error.
//   - With WithOutput, each outcome is rendered as soon as it is produced.
//
// Errors:
//   - ErrBadDefinition, ErrUnknownOp, ErrUnknownMatrix, ErrArity, ErrBadStep;
//     matrix errors and ctx.Err(), wrapped with the step index and op.
func (r *Runner) Run(ctx context.Context, s *Script) ([]Outcome, error) {
	if s == nil {
		return nil, fmt.Errorf("pipeline: nil script: %w", ErrBadDefinition)
	}
	env, err := r.bind(s.Matrices)
	if err != nil {
		r.logger.Error("binding matrices failed", zap.Error(err))
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(s.Steps))
	for i, st := range s.Steps {
		if err = ctx.Err(); err != nil {
			r.logger.Warn("run cancelled", zap.Int("step", i), zap.Error(err))
			return outcomes, fmt.Errorf("pipeline: before step %d: %w", i, err)
		}

		out, stepErr := r.step(env, i, st)
		if stepErr != nil {
			r.logger.Error("step failed",
				zap.Int("step", i),
				zap.String("op", st.Op),
				zap.Strings("args", st.Args),
				zap.Error(stepErr))
			return outcomes, fmt.Errorf("pipeline: step %d (%s): %w", i, st.Op, stepErr)
		}
		r.logger.Debug("step done",
			zap.Int("step", i),
			zap.String("op", st.Op),
			zap.Strings("args", st.Args),
			zap.Bool("inplace", st.InPlace),
			zap.String("into", st.Into))

		if r.out != nil {
			if err = out.Render(r.out); err != nil {
				return outcomes, fmt.Errorf("pipeline: render step %d: %w", i, err)
			}
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

// bind builds every definition into a fresh environment.
func (r *Runner) bind(defs Definitions) (map[string]*matrix.Square, error) {
	env := make(map[string]*matrix.Square, len(defs))
	for _, nd := range defs {
		m, err := nd.Def.Build(r.matrixOpts...)
		if err != nil {
			return nil, fmt.Errorf("pipeline: matrix %q: %w", nd.Name, err)
		}
		env[nd.Name] = m
		r.logger.Debug("matrix bound", zap.String("name", nd.Name), zap.Int("dim", m.Dim()))
	}

	return env, nil
}

// step evaluates one step against env.
// Implementation:
//   - Stage 1: look up the op, check arity, resolve Args.
//   - Stage 2: evaluate (compound form when InPlace is set; mutating ops reject InPlace).
//   - Stage 3: bind a copy of a matrix result to Into.
func (r *Runner) step(env map[string]*matrix.Square, idx int, st Step) (Outcome, error) {
	spec, ok := ops[st.Op]
	if !ok {
		return Outcome{}, fmt.Errorf("%q: %w", st.Op, ErrUnknownOp)
	}
	if len(st.Args) != spec.arity {
		return Outcome{}, fmt.Errorf("got %d, want %d: %w", len(st.Args), spec.arity, ErrArity)
	}
	ms := make([]*matrix.Square, len(st.Args))
	for i, name := range st.Args {
		m, found := env[name]
		if !found {
			return Outcome{}, fmt.Errorf("%q: %w", name, ErrUnknownMatrix)
		}
		ms[i] = m
	}

	var (
		out Outcome
		err error
	)
	switch {
	case st.InPlace:
		if spec.mutates {
			return Outcome{}, fmt.Errorf("%s already updates %s; drop inplace: %w", st.Op, st.Args[0], ErrBadStep)
		}
		if spec.inPlace == nil {
			return Outcome{}, fmt.Errorf("%s has no in-place form: %w", st.Op, ErrBadStep)
		}
		if err = spec.inPlace(st, ms); err != nil {
			return Outcome{}, err
		}
		out = Outcome{Kind: KindMatrix, Matrix: ms[0].Clone()}
	default:
		if out, err = spec.eval(st, ms); err != nil {
			return Outcome{}, err
		}
	}

	if st.Into != "" {
		if out.Kind != KindMatrix {
			return Outcome{}, fmt.Errorf("into %q on a non-matrix result: %w", st.Into, ErrBadStep)
		}
		env[st.Into] = out.Matrix.Clone()
	}

	out.Index = idx
	out.Op = st.Op
	out.Label = st.Title
	if out.Label == "" {
		out.Label = defaultLabel(st)
	}

	return out, nil
}

// defaultLabel renders an untitled step as "op(a, b)".
func defaultLabel(st Step) string {
	return st.Op + "(" + strings.Join(st.Args, ", ") + ")"
}

// Render writes o in the section format used by the CLI:
//
//	=== label ===          label = 10          label: true
//	1 2
//	3 4
//
// Every section is followed by a blank line.
func (o Outcome) Render(w io.Writer) error {
	var err error
	switch o.Kind {
	case KindMatrix:
		_, err = fmt.Fprintf(w, "=== %s ===\n%s\n", o.Label, o.Matrix.String())
	case KindScalar:
		_, err = fmt.Fprintf(w, "%s = %s\n\n", o.Label, strconv.FormatFloat(o.Scalar, 'g', -1, 64))
	case KindBool:
		_, err = fmt.Fprintf(w, "%s: %t\n\n", o.Label, o.Bool)
	default:
		_, err = fmt.Fprintf(w, "%s\n\n", o.Label)
	}

	return err
}
