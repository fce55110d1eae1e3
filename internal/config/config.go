// Package config loads runtime settings from TETRALIFE_* environment
// variables and command-line flags, flags taking precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"tetralife/internal/core"
	rng "tetralife/pkg/core"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "TETRALIFE_"

// Config represents the runtime parameters shared by the binaries.
type Config struct {
	UniverseSize int    `env:"UNIVERSE_SIZE" envDefault:"20"`
	TPS          int    `env:"TPS" envDefault:"2"`
	SavesDir     string `env:"SAVES_DIR" envDefault:"saves"`
	Seed         int64  `env:"SEED"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Development  bool   `env:"DEVELOPMENT"`
	Scale        int    `env:"SCALE" envDefault:"24"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{UniverseSize: 20, TPS: 2, SavesDir: "saves", LogLevel: "info", Scale: 24}
}

// FromEnv parses the process environment over the defaults.
func FromEnv() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// FromMap parses environ instead of the process environment.
func FromMap(environ map[string]string) (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet. Current values
// become the flag defaults.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.UniverseSize, "size", c.UniverseSize, "cubes along each axis")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.StringVar(&c.SavesDir, "saves", c.SavesDir, "directory holding save slots")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "genesis seed (0 draws a random one)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&c.Development, "dev", c.Development, "human-readable logs")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per tetrahedron in the window")
}

// Validate reports settings no session can run with.
func (c Config) Validate() error {
	var errs []error
	if c.UniverseSize <= 0 {
		errs = append(errs, fmt.Errorf("universe size must be positive, got %d", c.UniverseSize))
	}
	if c.TPS < core.MinTPS || c.TPS > core.MaxTPS {
		errs = append(errs, fmt.Errorf("tps must be between %d and %d, got %d", core.MinTPS, core.MaxTPS, c.TPS))
	}
	if c.SavesDir == "" {
		errs = append(errs, errors.New("saves directory must be set"))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	return errors.Join(errs...)
}

// ResolveSeed returns the configured seed, drawing a random one when it is 0.
func (c Config) ResolveSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	return rng.NewSeed()
}
