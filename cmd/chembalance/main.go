// SPDX-License-Identifier: MIT

// Command chembalance balances chemical reaction equations.
package main

import (
	"os"

	"github.com/katalvlaran/chembalance/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
