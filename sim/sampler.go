package sim

import (
	"fmt"
	"math/rand"
)

// DurationSampler produces the three stage durations for one item.
// Each call is independent of every other call. Implementations must return
// whole seconds >= 1; the engine panics on anything smaller.
type DurationSampler interface {
	SideDishTime() int64
	TransportTime() int64
	RiceTime() int64
}

// MaxStageSeconds caps any single stage at one day.
const MaxStageSeconds = 86400

// StageRange is an inclusive [Min, Max] range of whole seconds.
type StageRange struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

func (r StageRange) validate(stage string) error {
	if r.Min < 1 {
		return fmt.Errorf("%s range min must be >= 1, got %d: %w", stage, r.Min, ErrInvalidConfiguration)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s range max %d is below min %d: %w", stage, r.Max, r.Min, ErrInvalidConfiguration)
	}
	if r.Max > MaxStageSeconds {
		return fmt.Errorf("%s range max %d exceeds %d s: %w", stage, r.Max, MaxStageSeconds, ErrInvalidConfiguration)
	}
	return nil
}

// StageRanges groups the duration range of every stage.
type StageRanges struct {
	SideDish  StageRange `yaml:"side_dish"`
	Transport StageRange `yaml:"transport"`
	Rice      StageRange `yaml:"rice"`
}

// DefaultStageRanges returns the roster's measured ranges:
// side dish [30,60]s, transport [20,60]s, rice [30,60]s.
func DefaultStageRanges() StageRanges {
	return StageRanges{
		SideDish:  StageRange{Min: 30, Max: 60},
		Transport: StageRange{Min: 20, Max: 60},
		Rice:      StageRange{Min: 30, Max: 60},
	}
}

// Validate checks every stage range. Errors wrap ErrInvalidConfiguration.
func (r StageRanges) Validate() error {
	if err := r.SideDish.validate("side_dish"); err != nil {
		return err
	}
	if err := r.Transport.validate("transport"); err != nil {
		return err
	}
	return r.Rice.validate("rice")
}

// UniformSampler draws each stage duration uniformly from its inclusive range,
// one PartitionedRNG stream per stage.
// Thread-safety: NOT thread-safe.
type UniformSampler struct {
	rng       *PartitionedRNG
	sideDish  *rand.Rand
	transport *rand.Rand
	rice      *rand.Rand
	ranges    StageRanges
}

// NewUniformSampler creates a sampler over the stage streams of rng. Returns
// an error wrapping ErrInvalidConfiguration if any range is invalid.
func NewUniformSampler(rng *PartitionedRNG, ranges StageRanges) (*UniformSampler, error) {
	if rng == nil {
		panic("NewUniformSampler: rng must not be nil")
	}
	if err := ranges.Validate(); err != nil {
		return nil, err
	}
	return &UniformSampler{
		rng:       rng,
		sideDish:  rng.ForSubsystem(SubsystemSideDish),
		transport: rng.ForSubsystem(SubsystemTransport),
		rice:      rng.ForSubsystem(SubsystemRice),
		ranges:    ranges,
	}, nil
}

// NewSeededSampler creates a UniformSampler on a fresh PartitionedRNG for key.
func NewSeededSampler(key SimulationKey, ranges StageRanges) (*UniformSampler, error) {
	return NewUniformSampler(NewPartitionedRNG(key), ranges)
}

func draw(rng *rand.Rand, r StageRange) int64 {
	return r.Min + rng.Int63n(r.Max-r.Min+1)
}

// SideDishTime samples the side-dish fill duration.
func (s *UniformSampler) SideDishTime() int64 { return draw(s.sideDish, s.ranges.SideDish) }

// TransportTime samples the transport duration.
func (s *UniformSampler) TransportTime() int64 { return draw(s.transport, s.ranges.Transport) }

// RiceTime samples the rice fill duration.
func (s *UniformSampler) RiceTime() int64 { return draw(s.rice, s.ranges.Rice) }

// Key returns the SimulationKey the stage streams were derived from.
func (s *UniformSampler) Key() SimulationKey { return s.rng.Key() }

// Ranges returns the ranges the sampler draws from.
func (s *UniformSampler) Ranges() StageRanges { return s.ranges }

// FixedSampler returns the same durations on every call.
type FixedSampler struct {
	SideDish  int64
	Transport int64
	Rice      int64
}

func (s FixedSampler) SideDishTime() int64  { return s.SideDish }
func (s FixedSampler) TransportTime() int64 { return s.Transport }
func (s FixedSampler) RiceTime() int64      { return s.Rice }
