// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/alexdata/alexander"
	"github.com/katalvlaran/alexdata/batch"
	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/config"
)

func (a *app) trackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Print bottom, top and undercrossing labels of a braid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kernel()
			if err != nil {
				return err
			}
			tr := braid.Track(k.Braid())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bottom: %v\n", tr.Bottom)
			fmt.Fprintf(out, "top:    %v\n", tr.Top)
			fmt.Fprintf(out, "under:  %v\n", tr.Under)
			return nil
		},
	}
	a.kernelFlags(cmd)

	return cmd
}

func (a *app) classesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Print the closure equivalence classes and relabelled crossings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kernel()
			if err != nil {
				return err
			}
			_, cl, err := braid.Analyze(k)
			if err != nil {
				return err
			}
			writeClasses(cmd.OutOrStdout(), cl)
			return nil
		},
	}
	a.kernelFlags(cmd)

	return cmd
}

func writeClasses(w io.Writer, cl *braid.Closure) {
	for i, c := range cl.Classes {
		parts := make([]string, len(c))
		for j, m := range c {
			parts[j] = fmt.Sprintf("(%d,%+d)", m.Strand, m.Sign)
		}
		fmt.Fprintf(w, "class %d [%s]: %s\n", i+1, alexander.LabelVar(c.Representative()), strings.Join(parts, " "))
	}
	fmt.Fprintf(w, "labels: %v\n", cl.Labels)
}

func (a *app) burauCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burau",
		Short: "Print the reduced coloured Burau matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := a.kernel()
			if err != nil {
				return err
			}
			_, cl, err := braid.Analyze(k)
			if err != nil {
				return err
			}
			red, err := alexander.ReducedBurau(k.Braid(), cl.Labels)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), red)
			return nil
		},
	}
	a.kernelFlags(cmd)

	return cmd
}

func (a *app) polyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poly",
		Short: "Print the Alexander polynomial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.compute()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Polynomial)
			return nil
		},
	}
	a.kernelFlags(cmd)

	return cmd
}

func (a *app) dataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Print U, V and the normalised coefficient table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.compute()
			if err != nil {
				return err
			}
			writeData(cmd.OutOrStdout(), res.Data)
			return nil
		},
	}
	a.kernelFlags(cmd)

	return cmd
}

func writeData(w io.Writer, d *alexander.Invariant) {
	fmt.Fprintf(w, "U: %s\n", d.U)
	fmt.Fprintf(w, "V: %s\n", d.V)
	fmt.Fprint(w, "table:\n", d.Table)
}

func (a *app) compute() (*alexander.Result, error) {
	k, err := a.kernel()
	if err != nil {
		return nil, err
	}

	return alexander.Compute(k, alexander.WithLogger(a.logger))
}

func (a *app) batchCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate every job of a YAML job file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			if !a.verbose {
				lvl, _ := cfg.Level()
				a.level.SetLevel(lvl)
			}
			a.logger.Debug("jobs loaded", zap.String("path", path), zap.Int("jobs", len(cfg.Jobs)))

			jobs, err := cfg.BatchJobs()
			if err != nil {
				return err
			}
			outcomes, err := batch.Evaluate(cmd.Context(), jobs,
				batch.WithWorkers(cfg.Workers),
				batch.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, o := range outcomes {
				fmt.Fprintf(out, "== %s (n=%d, k=%d)\n", o.Job.Name, o.Job.Strands, o.Job.Caps)
				if o.Err != nil {
					failed++
					fmt.Fprintf(out, "error: %v\n", o.Err)
					continue
				}
				fmt.Fprintf(out, "poly: %s\n", o.Result.Polynomial)
				writeData(out, o.Result.Data)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "alexdata.yaml", "YAML job file")

	return cmd
}
