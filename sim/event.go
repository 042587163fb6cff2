package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (in simulated seconds) and an Execute
// method that advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	Execute(*Simulator)
}

// GrantEvent hands a worker to an item. Scheduled at time 0 for items whose
// acquire succeeded immediately, and at release time for the next waiter.
type GrantEvent struct {
	time int64        // Simulation time of the grant
	Item *ItemProcess // The item receiving the worker
}

// Timestamp returns the scheduled time of the GrantEvent.
func (e *GrantEvent) Timestamp() int64 {
	return e.time
}

// Execute starts the item's first stage.
func (e *GrantEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Grant: item %d at %d s", e.Item.Index, e.time)
	sim.startItem(e.Item)
}

// StageCompleteEvent fires when the stage an item entered has run for its
// sampled duration.
type StageCompleteEvent struct {
	time  int64        // Scheduled completion time
	Item  *ItemProcess // The item whose stage is ending
	Stage ItemState    // The stage that ends
}

// Timestamp returns the scheduled time of the StageCompleteEvent.
func (e *StageCompleteEvent) Timestamp() int64 {
	return e.time
}

// Execute moves the item on to its next stage, or finishes it.
func (e *StageCompleteEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< StageComplete: item %d %s at %d s", e.Item.Index, e.Stage, e.time)
	sim.completeStage(e.Item, e.Stage)
}
