// SPDX-License-Identifier: MIT

// Package config loads CLI settings from flags, environment and an optional
// YAML file, and validates them.
//
// Precedence (highest first): flags bound to the viper instance,
// CHEMBALANCE_* environment variables, the config file, Defaults().
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/chembalance/balance"
	"github.com/katalvlaran/chembalance/formula"
)

const (
	// FileName is the config file base name searched in $HOME and ".".
	FileName = ".chembalance"
	// EnvPrefix prefixes environment overrides, e.g. CHEMBALANCE_DIVIDER.
	EnvPrefix = "CHEMBALANCE"
)

// Keys shared by flags, env and file.
const (
	KeyConfig      = "config"
	KeyDivider     = "divider"
	KeyStrict      = "strict"
	KeyFormat      = "format"
	KeyConcurrency = "concurrency"
	KeyVerbose     = "verbose"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	Divider     string `mapstructure:"divider" yaml:"divider" validate:"required,divider"`
	Strict      bool   `mapstructure:"strict" yaml:"strict"`
	Format      string `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml"`
	Concurrency int    `mapstructure:"concurrency" yaml:"concurrency" validate:"min=1,max=256"`
	Verbose     bool   `mapstructure:"verbose" yaml:"verbose"`
}

// validate caches struct info; safe for concurrent use after init.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("divider", func(fl validator.FieldLevel) bool {
		return formula.ValidDivider(fl.Field().String())
	})
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Divider:     formula.DefaultDivider,
		Format:      FormatText,
		Concurrency: balance.DefaultConcurrency,
	}
}

// Validate checks c against its struct tags.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load resolves the configuration from v. A config file named by the
// KeyConfig value must exist; otherwise $HOME/.chembalance.yaml and
// ./.chembalance.yaml are tried and their absence is not an error.
func Load(v *viper.Viper) (Config, error) {
	d := Defaults()
	v.SetDefault(KeyDivider, d.Divider)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyConcurrency, d.Concurrency)
	v.SetDefault(KeyVerbose, d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// BalanceOptions maps c onto balance options.
func (c Config) BalanceOptions() []balance.Option {
	opts := []balance.Option{
		balance.WithDivider(c.Divider),
		balance.WithConcurrency(c.Concurrency),
	}
	if c.Strict {
		opts = append(opts, balance.WithKnownElements())
	}

	return opts
}
