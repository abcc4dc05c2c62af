// Package config loads poker-equity settings from flags, POKER_EQUITY_*
// environment variables and an optional config file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/behrlich/poker-equity/pkg/equity"
)

// EnvPrefix prefixes every environment variable the loader reads
const EnvPrefix = "POKER_EQUITY"

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

type Config struct {
	Method     string
	Iterations int
	Workers    int
	Seed       uint64
	Seeded     bool // a seed was given; otherwise sampling is unseeded
	Debug      bool
	Format     string
	ConfigFile string

	args []string
}

// Load parses args and layers the result as flags > environment > config
// file > defaults. Positional arguments are available from Args.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("poker-equity", flag.ContinueOnError)
	fs.String("method", "enumeration", "equity method: enumeration or montecarlo")
	fs.Int("iterations", 100_000, "Monte Carlo trials")
	fs.Int("workers", runtime.NumCPU(), "parallel workers")
	fs.Uint64("seed", 0, "seed for reproducible Monte Carlo runs (unseeded when not given)")
	fs.Bool("debug", false, "enable debug logging")
	fs.String("format", FormatTable, "output format: table, json or yaml")
	fs.StringVar(&c.ConfigFile, "config", "", "path to a YAML or JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetDefault("method", "enumeration")
	v.SetDefault("iterations", 100_000)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("debug", false)
	v.SetDefault("format", FormatTable)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %q: %w", c.ConfigFile, err)
		}
	}

	// Flags given on the command line override everything else
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			v.Set(f.Name, f.Value.String())
		}
	})

	c.Method = v.GetString("method")
	c.Iterations = v.GetInt("iterations")
	c.Workers = v.GetInt("workers")
	c.Seeded = v.IsSet("seed")
	c.Seed = v.GetUint64("seed")
	c.Debug = v.GetBool("debug")
	c.Format = strings.ToLower(v.GetString("format"))
	c.args = fs.Args()

	return c.Validate()
}

// Args returns the positional arguments left after flag parsing
func (c *Config) Args() []string {
	return c.args
}

// Validate checks values that the flag types alone cannot
func (c *Config) Validate() error {
	var errs []error
	if _, err := equity.ParseMethod(c.Method); err != nil {
		errs = append(errs, err)
	}
	if c.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations must be positive, got %d", c.Iterations))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("unknown format %q (want table, json or yaml)", c.Format))
	}
	return errors.Join(errs...)
}

// EquityMethod returns the configured method
func (c *Config) EquityMethod() (equity.Method, error) {
	return equity.ParseMethod(c.Method)
}

// CalculatorOptions translates the settings into calculator options
func (c *Config) CalculatorOptions() []equity.Option {
	opts := []equity.Option{equity.WithWorkers(c.Workers)}
	if c.Seeded {
		opts = append(opts, equity.WithSeed(c.Seed))
	}
	return opts
}
