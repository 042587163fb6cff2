package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/piket-sim/piket-sim/sim"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadRunConfig_FullFile(t *testing.T) {
	// GIVEN a run file setting every field
	path := writeConfig(t, `
items: 60
workers: 3
start: "06:30"
seed: 7
stages:
  side_dish: {min: 10, max: 20}
  transport: {min: 5, max: 15}
  rice: {min: 10, max: 25}
`)

	// WHEN loaded
	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)

	// THEN every field is taken from the file
	want := RunConfig{
		Items:   60,
		Workers: 3,
		Start:   "06:30",
		Seed:    7,
		Stages: sim.StageRanges{
			SideDish:  sim.StageRange{Min: 10, Max: 20},
			Transport: sim.StageRange{Min: 5, Max: 15},
			Rice:      sim.StageRange{Min: 10, Max: 25},
		},
	}
	assert.Equal(t, want, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRunConfig_PartialFile_KeepsDefaults(t *testing.T) {
	path := writeConfig(t, "workers: 4\nstages:\n  transport: {min: 25, max: 40}\n")

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)

	want := DefaultRunConfig()
	want.Workers = 4
	want.Stages.Transport = sim.StageRange{Min: 25, Max: 40}
	assert.Equal(t, want, cfg)
}

func TestLoadRunConfig_EmptyFile_Defaults(t *testing.T) {
	cfg, err := LoadRunConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultRunConfig(), cfg)
}

func TestLoadRunConfig_UnknownField_Rejected(t *testing.T) {
	// typos must cause errors
	_, err := LoadRunConfig(writeConfig(t, "worker: 4\n"))
	assert.Error(t, err)
}

func TestLoadRunConfig_MissingFile(t *testing.T) {
	_, err := LoadRunConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *RunConfig)
		invalid bool // wraps ErrInvalidConfiguration
	}{
		{"zero items", func(c *RunConfig) { c.Items = 0 }, true},
		{"zero workers", func(c *RunConfig) { c.Workers = 0 }, true},
		{"bad stage", func(c *RunConfig) { c.Stages.Rice.Max = 1 }, true},
		{"stage longer than a day", func(c *RunConfig) { c.Stages.SideDish.Max = sim.MaxStageSeconds + 1 }, true},
		{"bad start", func(c *RunConfig) { c.Start = "seven" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, sim.ErrInvalidConfiguration))
		})
	}
	assert.NoError(t, DefaultRunConfig().Validate())
}
