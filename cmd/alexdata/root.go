// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/config"
)

// app holds state shared by the commands of one invocation.
type app struct {
	verbose bool
	level   zap.AtomicLevel
	logger  *zap.Logger

	strands int
	caps    int
	word    string
	gen     config.Generate
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "alexdata",
		Short: "Alexander polynomial and Alexander data of braid kernels",
		Long: `alexdata tracks the strands of a braid word, closes it as a kernel
(loops on the lower n-2k positions, caps above them) and computes the
coloured Burau matrix, the Alexander polynomial and the Alexander data.

Words are signed generator indices: 3 is σ3, -4 is σ4^-1. The generator
flags (--torus, --plait, --random, ...) append built material after --word.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		a.trackCmd(),
		a.classesCmd(),
		a.burauCmd(),
		a.polyCmd(),
		a.dataCmd(),
		a.batchCmd(),
	)

	return root
}

// initLogger builds the production logger unless one was injected, then
// loads .env if present.
func (a *app) initLogger() error {
	if a.logger == nil {
		config := zap.NewProductionConfig()
		if a.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.level = config.Level
		a.logger = logger
	} else {
		a.level = zap.NewAtomicLevel()
	}
	if err := godotenv.Load(); err != nil {
		a.logger.Debug("no .env file found, using process environment")
	}

	return nil
}

// kernelFlags registers -n, -k, -w and the word generator flags on cmd.
func (a *app) kernelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&a.strands, "strands", "n", 0, "Number of strands (>= 2)")
	f.IntVarP(&a.caps, "caps", "k", 0, "Number of caps (0 <= k <= n/2)")
	f.StringVarP(&a.word, "word", "w", "", `Braid word, e.g. "3,2,-4"`)
	f.IntVar(&a.gen.HalfTwists, "half-twists", 0, "Append this many half twists")
	f.IntVar(&a.gen.FullTwists, "full-twists", 0, "Append this many full twists")
	f.IntVar(&a.gen.Torus, "torus", 0, "Append the (n, m) torus cycle (negative m uses inverses)")
	f.IntVar(&a.gen.Plait, "plait", 0, "Append this many plait rows")
	f.IntVar(&a.gen.Random, "random", 0, "Append this many random generators")
	f.Int64Var(&a.gen.Seed, "seed", 0, "Seed for --random")
	f.BoolVar(&a.gen.Mirror, "mirror", false, "Negate every generator of the finished word")
	_ = cmd.MarkFlagRequired("strands")
}

func (a *app) kernel() (*braid.Kernel, error) {
	ops, err := braid.ParseWord(a.word)
	if err != nil {
		return nil, err
	}
	job := config.Job{Strands: a.strands, Caps: a.caps, Word: ops}
	if a.gen != (config.Generate{}) {
		job.Generate = &a.gen
	}
	k, err := job.Kernel()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("kernel parsed",
		zap.Int("strands", k.Strands()),
		zap.Int("caps", k.Caps()),
		zap.Stringer("word", k.Word()),
	)

	return k, nil
}
