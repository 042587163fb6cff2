package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformSampler_StaysInRangeAndHitsEndpoints(t *testing.T) {
	// GIVEN the default ranges
	s := seededSampler(t, 42)

	tests := []struct {
		name     string
		draw     func() int64
		min, max int64
	}{
		{"side dish", s.SideDishTime, 30, 60},
		{"transport", s.TransportTime, 20, 60},
		{"rice", s.RiceTime, 30, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[int64]bool)
			for i := 0; i < 10000; i++ {
				v := tt.draw()
				require.GreaterOrEqual(t, v, tt.min)
				require.LessOrEqual(t, v, tt.max)
				seen[v] = true
			}
			// inclusive on both ends
			assert.True(t, seen[tt.min], "never drew %d", tt.min)
			assert.True(t, seen[tt.max], "never drew %d", tt.max)
			assert.Len(t, seen, int(tt.max-tt.min+1))
		})
	}
}

func TestUniformSampler_SameKey_SameSequence(t *testing.T) {
	a := seededSampler(t, 99)
	b := seededSampler(t, 99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.SideDishTime(), b.SideDishTime())
		require.Equal(t, a.TransportTime(), b.TransportTime())
		require.Equal(t, a.RiceTime(), b.RiceTime())
	}
}

func TestUniformSampler_DegenerateRange_IsConstant(t *testing.T) {
	ranges := StageRanges{
		SideDish:  StageRange{Min: 5, Max: 5},
		Transport: StageRange{Min: 1, Max: 1},
		Rice:      StageRange{Min: 9, Max: 9},
	}
	s, err := NewUniformSampler(NewPartitionedRNG(NewSimulationKey(1)), ranges)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s.SideDishTime())
	assert.Equal(t, int64(1), s.TransportTime())
	assert.Equal(t, int64(9), s.RiceTime())
	assert.Equal(t, ranges, s.Ranges())
}

func TestStageRanges_Validate(t *testing.T) {
	valid := DefaultStageRanges()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *StageRanges)
	}{
		{"zero min", func(r *StageRanges) { r.SideDish.Min = 0 }},
		{"max below min", func(r *StageRanges) { r.Transport = StageRange{Min: 40, Max: 20} }},
		{"negative rice", func(r *StageRanges) { r.Rice = StageRange{Min: -5, Max: 10} }},
		{"zero value", func(r *StageRanges) { *r = StageRanges{} }},
		{"max above one day", func(r *StageRanges) { r.Transport.Max = MaxStageSeconds + 1 }},
		{"max near int64 limit", func(r *StageRanges) { r.SideDish = StageRange{Min: 1, Max: math.MaxInt64} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultStageRanges()
			tt.mutate(&r)
			err := r.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)

			_, err = NewUniformSampler(NewPartitionedRNG(NewSimulationKey(1)), r)
			assert.Error(t, err)
		})
	}
}

func TestStageRanges_Validate_AcceptsOneDay(t *testing.T) {
	r := DefaultStageRanges()
	r.Rice = StageRange{Min: 1, Max: MaxStageSeconds}
	assert.NoError(t, r.Validate())
}

func TestNewUniformSampler_NilRNG_Panics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewUniformSampler(nil, DefaultStageRanges())
	})
}

func TestFixedSampler_ReturnsConfiguredValues(t *testing.T) {
	assert.Equal(t, int64(30), roster.SideDishTime())
	assert.Equal(t, int64(20), roster.TransportTime())
	assert.Equal(t, int64(30), roster.RiceTime())
}
