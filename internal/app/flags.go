package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	lifesim "sparselife/pkg/sims/life"

	"github.com/caarlos0/env/v11"
)

// Config represents the command-line parameters shared by every front end.
// Values are resolved as defaults, then LIFE_* environment variables, then
// flags.
type Config struct {
	Sim     string  `env:"LIFE_SIM"`
	Rows    int     `env:"LIFE_ROWS"`
	Cols    int     `env:"LIFE_COLS"`
	Pattern string  `env:"LIFE_PATTERN"`
	Density float64 `env:"LIFE_DENSITY"`
	Scale   int     `env:"LIFE_SCALE"`
	TPS     int     `env:"LIFE_TPS"`
	Seed    int64   `env:"LIFE_SEED"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Rows:    192,
		Cols:    256,
		Pattern: "soup",
		Density: 0.5,
		Scale:   4,
		TPS:     30,
		Seed:    42,
	}
}

// LoadEnv overrides fields from LIFE_* environment variables. Unset
// variables leave the current values in place.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: "+strings.Join(lifesim.Patterns(), ", "))
	fs.Float64Var(&c.Density, "density", c.Density, "chance of a random cell starting alive")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// SimParams returns the factory configuration map for the selected sim.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"rows":    strconv.Itoa(c.Rows),
		"cols":    strconv.Itoa(c.Cols),
		"pattern": c.Pattern,
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
	}
}
