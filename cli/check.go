// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/config"
)

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check EQUATION...",
		Short:   "Verify that annotated equations conserve every element",
		Example: `  chembalance check "C5H12 + 8O2 -> 5CO2 + 6H2O"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]*balance.Report, 0, len(args))
			failed := false
			for _, eq := range args {
				rep, err := balance.Verify(eq, a.options()...)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", eq, err)
					failed = true
					continue
				}
				failed = failed || !rep.Balanced
				reports = append(reports, rep)
			}

			if a.cfg.Format != config.FormatText {
				if err := encode(cmd.OutOrStdout(), a.cfg.Format, reports); err != nil {
					return err
				}
			} else {
				for _, rep := range reports {
					if err := rep.Err(); err != nil {
						fmt.Fprintf(cmd.OutOrStdout(), "UNBALANCED  %s  (%v)\n", rep.Text, err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "ok          %s\n", rep.Text)
				}
			}
			if failed {
				return errSomeFailed
			}
			return nil
		},
	}
}
