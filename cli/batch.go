// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/config"
)

// commentPrefix marks ignored lines in batch input.
const commentPrefix = "#"

func (a *app) newBatchCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Balance every equation of a file, one per line, in parallel",
		Long: `Reads one equation per line from --file (or stdin with "-").
Blank lines and lines starting with "#" are skipped. Results keep input order.`,
		Example: `  chembalance batch --file reactions.txt -o json
  cat reactions.txt | chembalance batch -f - -j 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeFn, err := openInput(cmd, file)
			if err != nil {
				return err
			}
			defer closeFn()

			lines, err := readEquations(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			a.logger.Debug("batch loaded", "file", file, "equations", len(lines))

			outcomes, err := balance.Batch(cmd.Context(), lines, a.options()...)
			if err != nil {
				return err
			}

			items := make([]item, len(outcomes))
			failed := false
			for i, oc := range outcomes {
				items[i] = item{Input: oc.Input}
				if oc.Err != nil {
					items[i].Error = oc.Err.Error()
					failed = true
					continue
				}
				items[i].Output = oc.Result.Output
				items[i].Coefficients = oc.Result.Coefficients
				items[i].Vocabulary = oc.Result.Vocabulary
			}
			if err = a.printItems(cmd, items); err != nil {
				return err
			}
			if failed {
				return errSomeFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", `input file, "-" for stdin`)
	cmd.Flags().IntP(config.KeyConcurrency, "j", 0, "maximum equations balanced at once (default 8)")
	// Unchanged, the flag yields to env, file and defaults.
	_ = a.v.BindPFlag(config.KeyConcurrency, cmd.Flags().Lookup(config.KeyConcurrency))

	return cmd
}

func openInput(cmd *cobra.Command, file string) (io.Reader, func(), error) {
	if file == "" || file == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// readEquations returns the non-blank, non-comment lines of r, trimmed.
func readEquations(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		out = append(out, line)
	}

	return out, sc.Err()
}
