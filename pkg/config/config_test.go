package config

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behrlich/poker-equity/pkg/equity"
)

func TestLoad_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Load([]string{"AsAh|KsKh|-"}))

	assert.Equal(t, "enumeration", cfg.Method)
	assert.Equal(t, 100_000, cfg.Iterations)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.False(t, cfg.Seeded)
	assert.False(t, cfg.Debug)
	assert.Equal(t, FormatTable, cfg.Format)
	assert.Equal(t, []string{"AsAh|KsKh|-"}, cfg.Args())

	method, err := cfg.EquityMethod()
	require.NoError(t, err)
	assert.Equal(t, equity.Enumeration, method)
	assert.Len(t, cfg.CalculatorOptions(), 1)
}

func TestLoad_Flags(t *testing.T) {
	var cfg Config
	err := cfg.Load([]string{
		"-method", "mc",
		"-iterations", "5000",
		"-workers", "3",
		"-seed", "42",
		"-debug",
		"-format", "JSON",
		"eval", "AhKhQhJhTh",
	})
	require.NoError(t, err)

	assert.Equal(t, "mc", cfg.Method)
	assert.Equal(t, 5000, cfg.Iterations)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Seeded)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, []string{"eval", "AhKhQhJhTh"}, cfg.Args())

	method, err := cfg.EquityMethod()
	require.NoError(t, err)
	assert.Equal(t, equity.MonteCarlo, method)

	calc := equity.NewCalculator(cfg.CalculatorOptions()...)
	assert.Equal(t, 3, calc.Workers())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("POKER_EQUITY_ITERATIONS", "777")
	t.Setenv("POKER_EQUITY_SEED", "9")
	t.Setenv("POKER_EQUITY_FORMAT", "yaml")

	var cfg Config
	require.NoError(t, cfg.Load(nil))

	assert.Equal(t, 777, cfg.Iterations)
	assert.True(t, cfg.Seeded)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, FormatYAML, cfg.Format)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"method: montecarlo\niterations: 2000\nworkers: 2\nformat: json\n"), 0o644))

	t.Setenv("POKER_EQUITY_ITERATIONS", "3000")
	t.Setenv("POKER_EQUITY_WORKERS", "5")

	var cfg Config
	require.NoError(t, cfg.Load([]string{"-config", path, "-workers", "7"}))

	assert.Equal(t, "montecarlo", cfg.Method) // file over default
	assert.Equal(t, 3000, cfg.Iterations)     // env over file
	assert.Equal(t, 7, cfg.Workers)           // flag over env
	assert.Equal(t, FormatJSON, cfg.Format)   // file over default
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"bad integer", []string{"-iterations", "many"}},
		{"zero iterations", []string{"-iterations", "0"}},
		{"zero workers", []string{"-workers", "0"}},
		{"unknown method", []string{"-method", "guess"}},
		{"unknown format", []string{"-format", "xml"}},
		{"missing config file", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			assert.Error(t, cfg.Load(tt.args))
		})
	}
}

func TestLoad_Help(t *testing.T) {
	var cfg Config
	assert.ErrorIs(t, cfg.Load([]string{"-h"}), flag.ErrHelp)
}
