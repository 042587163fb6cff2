package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned before any simulation state is created
// when the run parameters cannot describe a valid roster.
var ErrInvalidConfiguration = errors.New("invalid configuration")

const (
	DefaultTotalItems     = 180
	DefaultWorkerCapacity = 7
	DefaultSeed           = 42
)

// SimConfig groups the parameters of one run.
type SimConfig struct {
	TotalItems     int // number of ompreng to fill (must be >= 1)
	WorkerCapacity int // number of students on duty (must be >= 1)
}

// NewSimConfig creates a SimConfig. Arguments are stored as given; call Validate.
func NewSimConfig(totalItems, workerCapacity int) SimConfig {
	return SimConfig{
		TotalItems:     totalItems,
		WorkerCapacity: workerCapacity,
	}
}

// DefaultSimConfig returns the roster defaults: 180 ompreng, 7 students.
func DefaultSimConfig() SimConfig {
	return NewSimConfig(DefaultTotalItems, DefaultWorkerCapacity)
}

// Validate returns an error wrapping ErrInvalidConfiguration when either
// count is below one.
func (c SimConfig) Validate() error {
	if c.TotalItems < 1 {
		return fmt.Errorf("total items must be >= 1, got %d: %w", c.TotalItems, ErrInvalidConfiguration)
	}
	if c.WorkerCapacity < 1 {
		return fmt.Errorf("worker capacity must be >= 1, got %d: %w", c.WorkerCapacity, ErrInvalidConfiguration)
	}
	return nil
}
