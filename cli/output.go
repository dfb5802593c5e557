// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chembalance/config"
)

// encode writes v as JSON or YAML; text is handled by the callers.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("cli: unsupported structured format %q", format)
	}
}

// item is one line of structured output for balance and batch.
type item struct {
	Input        string   `json:"input" yaml:"input"`
	Output       string   `json:"output,omitempty" yaml:"output,omitempty"`
	Coefficients []int64  `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	Vocabulary   []string `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty"`
	Error        string   `json:"error,omitempty" yaml:"error,omitempty"`
}
