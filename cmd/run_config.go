package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/piket-sim/piket-sim/sim"
	"github.com/piket-sim/piket-sim/sim/export"
)

// RunConfig represents a run YAML file. Every field is optional; missing
// fields keep their default.
type RunConfig struct {
	Items   int             `yaml:"items"`
	Workers int             `yaml:"workers"`
	Start   string          `yaml:"start"`
	Seed    int64           `yaml:"seed"`
	Stages  sim.StageRanges `yaml:"stages"`
}

// DefaultRunConfig returns the duty roster defaults.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Items:   sim.DefaultTotalItems,
		Workers: sim.DefaultWorkerCapacity,
		Start:   export.DefaultStartClock,
		Seed:    sim.DefaultSeed,
		Stages:  sim.DefaultStageRanges(),
	}
}

// LoadRunConfig parses a run YAML file over DefaultRunConfig.
// Uses strict field checking: typos must cause errors.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing run config: %w", err)
	}
	return cfg, nil
}

// SimConfig returns the engine parameters of the run.
func (c RunConfig) SimConfig() sim.SimConfig {
	return sim.NewSimConfig(c.Items, c.Workers)
}

// Validate checks the engine parameters, the stage ranges and the start time.
func (c RunConfig) Validate() error {
	if err := c.SimConfig().Validate(); err != nil {
		return err
	}
	if err := c.Stages.Validate(); err != nil {
		return err
	}
	if _, err := export.ParseClock(c.Start); err != nil {
		return err
	}
	return nil
}
