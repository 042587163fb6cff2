package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSimConfig_FieldEquivalence(t *testing.T) {
	got := NewSimConfig(10, 3)
	want := SimConfig{TotalItems: 10, WorkerCapacity: 3}
	assert.Equal(t, want, got)
}

func TestDefaultSimConfig(t *testing.T) {
	assert.Equal(t, SimConfig{TotalItems: 180, WorkerCapacity: 7}, DefaultSimConfig())
	assert.NoError(t, DefaultSimConfig().Validate())
}

func TestSimConfig_Validate_RejectsNonPositive(t *testing.T) {
	for _, cfg := range []SimConfig{{0, 1}, {1, 0}, {-1, -1}} {
		err := cfg.Validate()
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "%+v: got %v", cfg, err)
	}
	assert.NoError(t, NewSimConfig(1, 1).Validate())
}
