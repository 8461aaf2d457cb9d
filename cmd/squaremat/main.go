// Command squaremat evaluates square-matrix expressions and pipeline scripts.
//
// Usage:
//
//	squaremat demo                          # built-in walkthrough
//	squaremat run script.yaml               # any pipeline script
//	squaremat det "4 7, 2 6"
//	squaremat transpose "1 2, 3 4"
//	squaremat pow "1 1, 1 0" 10
//	squaremat calc "1 2, 3 4" mul "5 6, 7 8"
//
// Pass -v/--verbose for debug logging on stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// newRootCmd builds a fresh command tree; tests build one per case.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "squaremat",
		Short: "Dense square-matrix calculator",
		Long: `squaremat evaluates operations on dense n×n matrices.

Matrices are written as numbers separated by spaces and commas, e.g. "1 2, 3 4";
the dimension is inferred from the number count, which must be a perfect square.
Put "--" before a matrix that starts with a minus sign.
Scripts chain many operations; see "squaremat run --help".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.demoCmd(),
		a.runCmd(),
		a.detCmd(),
		a.transposeCmd(),
		a.powCmd(),
		a.calcCmd(),
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
