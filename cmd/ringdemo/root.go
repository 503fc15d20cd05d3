// File: cmd/ringdemo/root.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-ring/adapters"
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/internal/demo"
	"github.com/momentics/hioload-ring/ring"
)

// app carries state resolved once in PersistentPreRunE.
type app struct {
	configPath string
	cfg        *control.Config
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "ringdemo",
		Short:         "Exercise fixed-capacity ring buffers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.Int("capacity", control.DefaultConfig().Capacity, "capacity of demo buffers")
	flags.String("log-level", control.DefaultConfig().LogLevel, "log level")
	flags.Bool("trace", false, "log every buffer operation")

	root.AddCommand(
		a.basicsCommand(),
		a.evaluateCommand(),
		a.statsCommand(),
	)
	return root
}

// setup loads the config file, then lets explicitly set flags override it.
func (a *app) setup(flags *pflag.FlagSet) error {
	cfg, err := control.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if flags.Changed("capacity") {
		cfg.Capacity, _ = flags.GetInt("capacity")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("trace") {
		cfg.Trace, _ = flags.GetBool("trace")
	}
	if cfg.Trace {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := control.NewLogger(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded", zap.Any("config", cfg.Snapshot()))
	return nil
}

// options returns the buffer options for a buffer named name, adding extra tracers.
func (a *app) options(name string, extra ...api.Tracer) []ring.Option {
	tracers := api.MultiTracer(extra)
	if a.cfg.Trace {
		tracers = append(tracers, control.NewLogTracer(a.logger, name))
	}
	if len(tracers) == 0 {
		return nil
	}
	return []ring.Option{ring.WithTracer(tracers)}
}

func (a *app) basicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "basics",
		Short: "Construct, fill, copy and convert buffers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Basics(cmd.OutOrStdout(), a.cfg.Capacity, a.options("basics")...)
		},
	}
}

func (a *app) evaluateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Apply predicates to every buffered element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Evaluate(cmd.OutOrStdout(), a.cfg.Capacity, a.options("evaluate")...)
		},
	}
}

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Run every walkthrough and print buffer metrics as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := adapters.NewControlAdapter(a.cfg)
			opts := a.options("stats", ctrl.Tracer())
			if err := demo.Basics(io.Discard, a.cfg.Capacity, opts...); err != nil {
				return err
			}
			if err := demo.Evaluate(io.Discard, a.cfg.Capacity, opts...); err != nil {
				return err
			}

			window := ring.New[int](a.cfg.Capacity, opts...)
			for i := 1; i <= 2*a.cfg.Capacity; i++ {
				window.Insert(i)
			}
			window.Remove()
			ctrl.WatchRing("window", window)

			out, err := yaml.Marshal(map[string]any{
				"config": ctrl.GetConfig(),
				"stats":  ctrl.Stats(),
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
