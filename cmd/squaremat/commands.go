package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/squaremat/pipeline"
)

//go:embed demo.yaml
var demoScript []byte

// calcOps are the binary ops accepted by calc.
var calcOps = []string{"add", "sub", "mul", "hadamard", "mod", "eq", "ne", "lt", "le", "gt", "ge"}

// execute runs s and renders every outcome to the command's stdout.
func (a *app) execute(cmd *cobra.Command, s *pipeline.Script) error {
	r := pipeline.NewRunner(
		pipeline.WithLogger(a.logger),
		pipeline.WithOutput(cmd.OutOrStdout()),
	)
	outs, err := r.Run(cmd.Context(), s)
	if err != nil {
		return err
	}
	a.logger.Debug("script finished", zap.String("command", cmd.Name()), zap.Int("steps", len(outs)))

	return nil
}

// single wraps one step over text-defined matrices named M, N, ... in order.
func single(step pipeline.Step, texts ...string) *pipeline.Script {
	s := &pipeline.Script{Steps: []pipeline.Step{step}}
	for i, text := range texts {
		s.Matrices = append(s.Matrices, pipeline.NamedDefinition{
			Name: string(rune('M' + i)),
			Def:  pipeline.TextDefinition(text),
		})
	}

	return s
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every operation on a few sample matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := pipeline.Decode(bytes.NewReader(demoScript))
			if err != nil {
				return fmt.Errorf("demo script: %w", err)
			}
			return a.execute(cmd, s)
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "Run a pipeline script",
		Long: `Runs a YAML pipeline script and prints every step's result.

Script layout:
  matrices:
    A: "1 2, 3 4"                   # text
    B: {dim: 2, fill: 1}            # constant fill
    I: {identity: 2}                # identity
    R: {dim: 2, values: [1,2,3,4]}  # row-major values
  steps:
    - {title: "A * B", op: mul, args: [A, B]}
    - {op: scale, args: [A], scalar: 2, inplace: true}
    - {op: det, args: [A]}

Ops: ` + strings.Join(pipeline.OpNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := pipeline.Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("script loaded",
				zap.String("path", args[0]),
				zap.Int("matrices", len(s.Matrices)),
				zap.Int("steps", len(s.Steps)))
			return a.execute(cmd, s)
		},
	}
}

func (a *app) detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det [matrix]",
		Short: "Print the determinant of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(cmd, single(pipeline.Step{Title: "det", Op: "det", Args: []string{"M"}}, args[0]))
		},
	}
}

func (a *app) transposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose [matrix]",
		Short: "Print the transpose of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(cmd, single(pipeline.Step{Title: "transpose", Op: "transpose", Args: []string{"M"}}, args[0]))
		},
	}
}

func (a *app) powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow [matrix] [power]",
		Short: "Raise a matrix to a non-negative integer power",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := strconv.ParseUint(args[1], 10, 0)
			if err != nil {
				return fmt.Errorf("power %q: want a non-negative integer", args[1])
			}
			step := pipeline.Step{Title: "pow " + args[1], Op: "pow", Args: []string{"M"}, Power: uint(p)}
			return a.execute(cmd, single(step, args[0]))
		},
	}
}

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [matrix] [op] [matrix]",
		Short: "Apply a binary op to two matrices",
		Long:  "Applies one of " + strings.Join(calcOps, ", ") + " to two matrices.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[1]
			if !slices.Contains(calcOps, op) {
				return fmt.Errorf("calc: %q: %w", op, pipeline.ErrUnknownOp)
			}
			step := pipeline.Step{Title: op, Op: op, Args: []string{"M", "N"}}
			return a.execute(cmd, single(step, args[0], args[2]))
		},
	}
}
