// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/piket-sim/piket-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, the worker pool,
// the items and the event loop.
//
// Thread-safety: NOT thread-safe. Independent Simulators share no state and
// may run on separate goroutines.
type Simulator struct {
	Clock int64
	// EventQueue holds grant and stage-completion events ordered by (time, seq)
	EventQueue *EventQueue
	// Pool is the set of students on duty; items queue here for a worker
	Pool *WorkerPool
	// Items are indexed by Index-1
	Items []*ItemProcess
	// Results collects one record per finished item, in completion order
	Results *ResultTable
	// Trace is nil unless the caller enables event tracing
	Trace *trace.SimulationTrace

	sampler     DurationSampler
	eventCount  int
	busySeconds int64
}

// NewSimulator validates cfg and creates a simulator with all items waiting at
// time 0. No state is created when cfg is invalid. Panics on a nil sampler.
func NewSimulator(cfg SimConfig, sampler DurationSampler) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sampler == nil {
		panic("NewSimulator: sampler must not be nil")
	}
	items := make([]*ItemProcess, cfg.TotalItems)
	for i := range items {
		items[i] = NewItemProcess(i + 1)
	}
	return &Simulator{
		Clock:      0,
		EventQueue: NewEventQueue(),
		Pool:       NewWorkerPool(cfg.WorkerCapacity),
		Items:      items,
		Results:    &ResultTable{records: make([]ItemRecord, 0, cfg.TotalItems)},
		sampler:    sampler,
	}, nil
}

// Run is the synchronous entry point: it builds a simulator for totalItems and
// workerCapacity, runs it to completion and returns the full table.
func Run(totalItems, workerCapacity int, sampler DurationSampler) (*ResultTable, error) {
	s, err := NewSimulator(NewSimConfig(totalItems, workerCapacity), sampler)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

// Schedule pushes an event onto the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	if ev.Timestamp() < sim.Clock {
		panic(fmt.Sprintf("Schedule: %T at %d precedes clock %d", ev, ev.Timestamp(), sim.Clock))
	}
	sim.EventQueue.Schedule(ev)
}

// Run issues every item's acquire request in index order, then processes events
// until none remain. Returns the result table once every item is done.
func (sim *Simulator) Run() *ResultTable {
	logrus.Infof("Starting simulation: %d items, %d workers", len(sim.Items), sim.Pool.Capacity())
	for _, it := range sim.Items {
		if it.State != StateWaiting {
			continue
		}
		granted := sim.Pool.Acquire(it)
		sim.traceEvent(it, trace.KindAcquire, "", 0)
		if granted {
			sim.Schedule(&GrantEvent{time: sim.Clock, Item: it})
		}
	}

	for sim.EventQueue.Len() > 0 {
		// get the next event to be simulated
		ev := sim.EventQueue.PopNext()
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t %06d] Executing %T", sim.Clock, ev)
		ev.Execute(sim)
		sim.eventCount++
	}

	if sim.Results.Len() != len(sim.Items) {
		panic(fmt.Sprintf("Run: event queue drained with %d of %d items done", sim.Results.Len(), len(sim.Items)))
	}
	logrus.Infof("[t %06d] Simulation ended after %d events", sim.Clock, sim.eventCount)
	return sim.Results
}

// EventsProcessed returns the number of events executed so far.
func (sim *Simulator) EventsProcessed() int {
	return sim.eventCount
}

// BusySeconds returns the total worker-seconds spent on finished items.
func (sim *Simulator) BusySeconds() int64 {
	return sim.busySeconds
}

// startItem handles a grant: waiting → side_dish.
func (sim *Simulator) startItem(it *ItemProcess) {
	if it.State != StateWaiting {
		panic(fmt.Sprintf("startItem: item %d is %s, not waiting", it.Index, it.State))
	}
	it.Start = sim.Clock
	sim.traceEvent(it, trace.KindGrant, "", 0)
	sim.enterStage(it, StateSideDish)
}

// enterStage samples the duration of stage and schedules its completion.
func (sim *Simulator) enterStage(it *ItemProcess, stage ItemState) {
	var d int64
	switch stage {
	case StateSideDish:
		d = sim.sampler.SideDishTime()
		it.SideDish = d
	case StateTransport:
		d = sim.sampler.TransportTime()
		it.Transport = d
	case StateRice:
		d = sim.sampler.RiceTime()
		it.Rice = d
	default:
		panic(fmt.Sprintf("enterStage: %q is not a timed stage", stage))
	}
	if d < 1 {
		panic(fmt.Sprintf("enterStage: sampler returned non-positive %s duration %d", stage, d))
	}
	it.State = stage
	sim.traceEvent(it, trace.KindStage, string(stage), d)
	sim.Schedule(&StageCompleteEvent{time: sim.Clock + d, Item: it, Stage: stage})
}

// completeStage advances it past stage, finishing it after rice.
func (sim *Simulator) completeStage(it *ItemProcess, stage ItemState) {
	if it.State != stage {
		panic(fmt.Sprintf("completeStage: item %d is %s, expected %s", it.Index, it.State, stage))
	}
	next := stage.next()
	if next == StateDone {
		sim.finishItem(it)
		return
	}
	sim.enterStage(it, next)
}

// finishItem handles rice → done: records End, releases the worker, hands it
// to the next waiter in the same instant and appends the record.
func (sim *Simulator) finishItem(it *ItemProcess) {
	it.End = sim.Clock
	it.State = StateDone
	sim.busySeconds += it.End - it.Start

	if next := sim.Pool.Release(); next != nil {
		sim.Schedule(&GrantEvent{time: sim.Clock, Item: next})
	}
	sim.traceEvent(it, trace.KindRelease, "", 0)
	sim.Results.append(it.Record())
}

func (sim *Simulator) traceEvent(it *ItemProcess, kind trace.EventKind, stage string, d int64) {
	if !sim.Trace.Enabled() {
		return
	}
	sim.Trace.RecordEvent(trace.EventRecord{
		Clock:    sim.Clock,
		Item:     it.Index,
		Kind:     kind,
		Stage:    stage,
		Duration: d,
		Busy:     sim.Pool.InUse(),
		Queued:   sim.Pool.QueueLen(),
	})
}
