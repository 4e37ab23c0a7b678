// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/emer/stdp/config"
	"github.com/emer/stdp/record"
	"github.com/emer/stdp/sim"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stdpsim",
		Short:         "Spiking network simulator with STDP learning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newDefaultsCmd())
	return root
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf := &config.Config{}
			cf.Defaults()
			return cf.Write(cmd.OutOrStdout())
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		cfgPath  string
		out      string
		seed     uint64
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation",
		Long: `Run a simulation from the default configuration, overridden by
the YAML file given with --config and then by the other flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf := &config.Config{}
			cf.Defaults()
			if cfgPath != "" {
				var err error
				if cf, err = config.Load(cfgPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("out") {
				cf.Out = out
			}
			if flags.Changed("seed") {
				cf.Net.Seed = seed
			}
			if flags.Changed("log-level") {
				cf.LogLevel = logLevel
			}
			return runSim(cmd.Context(), cmd, cf)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "CSV file to save the step log to")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for connectivity and weights")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: info, debug or trace")
	return cmd
}

// runSim runs the configured simulation, logging a summary and
// saving the step log if cf.Out is set.
func runSim(ctx context.Context, cmd *cobra.Command, cf *config.Config) error {
	logger := newLogger(cf.LogLevel, cmd.ErrOrStderr())
	axis, iPre, iPost, err := cf.Inputs()
	if err != nil {
		return err
	}
	return sim.WithNetwork(&cf.Net, func(nt *sim.Network) error {
		logger.Debug("network built", "size", nt.SizeReport())
		lg := record.NewLog(nt)
		wt0 := meanOf(nt.Prjn.Conn.Wt)
		rn, err := nt.Run(axis, iPre, iPost)
		if err != nil {
			return err
		}
		npre, npost := 0, 0
		for rn.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := rn.Output()
			lg.Record(o)
			ns, nr := nt.Pre.NSpikes(), nt.Post.NSpikes()
			npre += ns
			npost += nr
			if ns+nr > 0 {
				logger.Log(ctx, LevelTrace, "spike", "step", o.Step, "pre", o.PreSpike, "post", o.PostSpike, "wt", o.Wt)
			}
		}
		if err := rn.Err(); err != nil {
			return err
		}
		logger.Info("run complete", "steps", rn.Index(), "pre_spikes", npre, "post_spikes", npost,
			"edges", nt.Prjn.Conn.NEdges(), "wt_mean_start", wt0, "wt_mean_end", meanOf(nt.Prjn.Conn.Wt))
		if cf.Out == "" {
			return nil
		}
		f, err := os.Create(cf.Out)
		if err != nil {
			return err
		}
		if err := lg.WriteCSV(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", cf.Out, err)
		}
		logger.Info("saved step log", "file", cf.Out, "rows", lg.Table.Rows)
		return f.Close()
	})
}

func meanOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}
