// Package config resolves process configuration for the reduced binary:
// listen address, log level, and the documented UMAP defaults. Grounded
// on the teacher's own CLI flag-parsing idiom, generalized from a
// one-shot CLI run to a long-lived service's startup configuration:
// Parse registers every flag on its own flag.FlagSet on each call.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/cosmograph/reduce/umap"
)

const cliname = "reduced"

// Config holds the resolved process configuration.
type Config struct {
	Addr     string
	LogLevel string

	DefaultNeighbors   int
	DefaultMinDist     float64
	DefaultSpread      float64
	DefaultRandomState int64
}

// Default returns the documented defaults, before flags or environment
// variables are applied.
func Default() Config {
	return Config{
		Addr:               ":8080",
		LogLevel:           "info",
		DefaultNeighbors:   umap.DefaultNeighbors,
		DefaultMinDist:     umap.DefaultMinDist,
		DefaultSpread:      umap.DefaultSpread,
		DefaultRandomState: umap.DefaultRandomState,
	}
}

// Parse resolves Config from command-line flags (args, typically
// os.Args[1:]), falling back to environment variables and then the
// documented defaults. Flags take precedence over the environment.
func Parse(args []string) (Config, error) {
	cfg := Default()
	applyEnv(&cfg)

	fs := flag.NewFlagSet(cliname, flag.ContinueOnError)
	addr := fs.String("addr", cfg.Addr, "HTTP listen address")
	logLevel := fs.String("log-level", cfg.LogLevel, "zerolog level: debug, info, warn, error")
	neighbors := fs.Int("default-neighbors", cfg.DefaultNeighbors, "default n_neighbors when a request omits it")
	minDist := fs.Float64("default-min-dist", cfg.DefaultMinDist, "default min_dist when a request omits it")
	spread := fs.Float64("default-spread", cfg.DefaultSpread, "default spread when a request omits it")
	randomState := fs.Int64("default-random-state", cfg.DefaultRandomState, "default random_state when a request omits it")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Addr = *addr
	cfg.LogLevel = *logLevel
	cfg.DefaultNeighbors = *neighbors
	cfg.DefaultMinDist = *minDist
	cfg.DefaultSpread = *spread
	cfg.DefaultRandomState = *randomState

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REDUCED_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("REDUCED_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the resolved configuration for obviously invalid
// values before the server starts listening.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	if c.DefaultNeighbors < 2 {
		return fmt.Errorf("default-neighbors must be >= 2, got %d", c.DefaultNeighbors)
	}
	return nil
}
