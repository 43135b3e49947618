package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("Expected default seed 42, got %d", cfg.Simulation.Seed)
	}
	if cfg.Simulation.PopulationSize != 10000 {
		t.Errorf("Expected default population 10000, got %d", cfg.Simulation.PopulationSize)
	}
	if cfg.Paths.OutputDir != "out" {
		t.Errorf("Expected default output dir 'out', got %q", cfg.Paths.OutputDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEED", "7")
	t.Setenv("POPULATION_SIZE", "500")
	t.Setenv("SAMPLE_SIZE", "100")
	t.Setenv("OUTPUT_DIR", "artifacts")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Simulation.Seed)
	}
	if cfg.Simulation.PopulationSize != 500 {
		t.Errorf("Expected population 500, got %d", cfg.Simulation.PopulationSize)
	}
	if cfg.Paths.OutputDir != "artifacts" {
		t.Errorf("Expected output dir 'artifacts', got %q", cfg.Paths.OutputDir)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("Expected error for malformed SEED")
	}
}

func TestValidate_SampleExceedsPopulation(t *testing.T) {
	t.Setenv("SEED", "")
	t.Setenv("POPULATION_SIZE", "100")
	t.Setenv("SAMPLE_SIZE", "200")
	if _, err := Load(); err == nil {
		t.Error("Expected error when sample exceeds population")
	}
}
