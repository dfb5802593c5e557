// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/config"
)

// errSomeFailed signals a non-zero exit after per-item errors were printed.
var errSomeFailed = errors.New("one or more equations failed")

func (a *app) newBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance EQUATION...",
		Short: "Balance one or more equations",
		Example: `  chembalance balance "C5H12 + O2 -> CO2 + H2O"
  chembalance balance -d "=" "H2 + O2 = H2O"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]item, 0, len(args))
			failed := false
			for _, eq := range args {
				res, err := balance.Balance(eq, a.options()...)
				if err != nil {
					failed = true
					items = append(items, item{Input: eq, Error: err.Error()})
					continue
				}
				items = append(items, item{
					Input:        eq,
					Output:       res.Output,
					Coefficients: res.Coefficients,
					Vocabulary:   res.Vocabulary,
				})
			}

			if err := a.printItems(cmd, items); err != nil {
				return err
			}
			if failed {
				return errSomeFailed
			}
			return nil
		},
	}
}

// printItems writes balanced equations, one per line in text mode; errors go to stderr.
func (a *app) printItems(cmd *cobra.Command, items []item) error {
	if a.cfg.Format != config.FormatText {
		return encode(cmd.OutOrStdout(), a.cfg.Format, items)
	}
	for _, it := range items {
		if it.Error != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", it.Input, it.Error)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), it.Output)
	}

	return nil
}
