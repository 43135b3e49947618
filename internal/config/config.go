package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration. Everything has a
// working default; only a configured DATABASE_URL changes behavior (artifact
// persistence).
type Config struct {
	Simulation SimulationConfig
	Paths      PathConfig
	Database   DatabaseConfig
	Render     RenderConfig
}

// SimulationConfig holds the deterministic simulation parameters
type SimulationConfig struct {
	Seed           int64
	PopulationSize int
	SampleSize     int
}

// PathConfig holds output locations for presentation artifacts
type PathConfig struct {
	OutputDir string
}

// DatabaseConfig holds the optional artifact-ledger connection
type DatabaseConfig struct {
	URL string
}

// RenderConfig holds Graphviz settings
type RenderConfig struct {
	DotBinary string
}

// Load reads configuration from the environment, with .env support
func Load() (*Config, error) {
	// .env is optional; missing file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Simulation: SimulationConfig{
			Seed:           42,
			PopulationSize: 10000,
			SampleSize:     2000,
		},
		Paths: PathConfig{
			OutputDir: "out",
		},
	}

	var err error
	if v := os.Getenv("SEED"); v != "" {
		cfg.Simulation.Seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", v, err)
		}
	}
	if v := os.Getenv("POPULATION_SIZE"); v != "" {
		cfg.Simulation.PopulationSize, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid POPULATION_SIZE %q: %w", v, err)
		}
	}
	if v := os.Getenv("SAMPLE_SIZE"); v != "" {
		cfg.Simulation.SampleSize, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SAMPLE_SIZE %q: %w", v, err)
		}
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Paths.OutputDir = v
	}
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Render.DotBinary = os.Getenv("DOT_BINARY")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks parameter sanity
func (c *Config) Validate() error {
	if c.Simulation.PopulationSize <= 0 {
		return fmt.Errorf("population size must be positive, got %d", c.Simulation.PopulationSize)
	}
	if c.Simulation.SampleSize <= 0 {
		return fmt.Errorf("sample size must be positive, got %d", c.Simulation.SampleSize)
	}
	if c.Simulation.SampleSize > c.Simulation.PopulationSize {
		return fmt.Errorf("sample size %d exceeds population size %d",
			c.Simulation.SampleSize, c.Simulation.PopulationSize)
	}
	return nil
}
