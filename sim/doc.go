// Package sim provides the discrete-event simulation engine for the ompreng
// (meal tray) duty roster.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - item.go: ItemProcess lifecycle (waiting → side_dish → transport → rice → done)
//   - event.go: Event types that drive the simulation (grant, stage completion)
//   - pool.go: the bounded worker pool with its FIFO wait queue
//   - simulator.go: the event loop and the per-item transitions
//
// # Time
//
// Simulated time is an int64 count of seconds since the run began. The clock
// only moves when the event loop pops the next event. Events scheduled for the
// same second execute in the order they were scheduled.
//
// # Randomness
//
// Stage durations come from a DurationSampler. The production UniformSampler
// draws from a PartitionedRNG stream keyed by a SimulationKey, so a fixed seed
// reproduces a run bit-for-bit. Tests inject FixedSampler instead.
//
// Sub-packages:
//   - sim/trace/: optional per-event trace recording and summary
//   - sim/export/: CSV/JSON output and wall-clock projection of offsets
package sim
