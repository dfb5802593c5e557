// SPDX-License-Identifier: MIT

// Package cli wires the balancing library into the chembalance command.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/config"
)

// version is the application version.
var version = "0.1.0"

// app holds per-invocation state shared by subcommands.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree with its own viper instance, so tests can run commands in parallel.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "chembalance",
		Short: "Balance chemical reaction equations.",
		Long: `chembalance computes the smallest positive integer coefficients that
conserve every element of a reaction such as "C5H12 + O2 -> CO2 + H2O"
and prints the balanced equation.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringP(config.KeyConfig, "c", "", "config file (default is $HOME/.chembalance.yaml or ./.chembalance.yaml)")
	pf.StringP(config.KeyDivider, "d", "", `side divider (default "->")`)
	pf.Bool(config.KeyStrict, false, "only accept element symbols of the periodic table")
	pf.StringP(config.KeyFormat, "o", "", "output format: text, json or yaml (default text)")
	pf.BoolP(config.KeyVerbose, "v", false, "enable debug logging on stderr")

	for _, key := range []string{config.KeyConfig, config.KeyDivider, config.KeyStrict, config.KeyFormat, config.KeyVerbose} {
		flag := pf.Lookup(key)
		_ = a.v.BindPFlag(key, flag)
	}

	root.AddCommand(a.newBalanceCommand(), a.newCheckCommand(), a.newBatchCommand())

	return root
}

// Execute runs the root command with process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// init resolves configuration and the logger once flags are parsed.
func (a *app) init(stderr io.Writer) error {
	// Unchanged flags fall through to env, file and then config defaults.
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded",
		"divider", cfg.Divider, "strict", cfg.Strict, "format", cfg.Format,
		"concurrency", cfg.Concurrency, "file", a.v.ConfigFileUsed())

	return nil
}

// options returns balance options for the resolved configuration.
func (a *app) options() []balance.Option {
	return append(a.cfg.BalanceOptions(), balance.WithLogger(a.logger))
}
