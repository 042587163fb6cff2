// Defines the ItemProcess struct that models one ompreng moving through the roster.
// Tracks the sampled stage durations and the start/end timestamps of its worker hold.

package sim

import (
	"fmt"
)

// ItemState represents the lifecycle state of an item.
type ItemState string

const (
	StateWaiting   ItemState = "waiting"
	StateSideDish  ItemState = "side_dish"
	StateTransport ItemState = "transport"
	StateRice      ItemState = "rice"
	StateDone      ItemState = "done"
)

// Busy reports whether an item in this state is holding a worker.
func (s ItemState) Busy() bool {
	return s == StateSideDish || s == StateTransport || s == StateRice
}

// next returns the stage that follows s. StateRice is followed by StateDone.
func (s ItemState) next() ItemState {
	switch s {
	case StateWaiting:
		return StateSideDish
	case StateSideDish:
		return StateTransport
	case StateTransport:
		return StateRice
	case StateRice:
		return StateDone
	}
	panic(fmt.Sprintf("ItemState.next: no state follows %q", s))
}

// ItemProcess models a single item's lifecycle in the simulation.
// Durations are filled in as each stage is entered; Start and End are
// only meaningful once the item has been granted a worker and finished.
type ItemProcess struct {
	Index int // 1-based item number

	State ItemState // waiting, side_dish, transport, rice, done

	SideDish  int64 // sampled side-dish fill duration (s)
	Transport int64 // sampled transport duration (s)
	Rice      int64 // sampled rice fill duration (s)

	Start int64 // clock when the worker was granted
	End   int64 // clock when the rice stage completed
}

// NewItemProcess creates an item in the waiting state.
func NewItemProcess(index int) *ItemProcess {
	return &ItemProcess{Index: index, State: StateWaiting}
}

// Record returns the immutable result row of a finished item.
func (it *ItemProcess) Record() ItemRecord {
	if it.State != StateDone {
		panic(fmt.Sprintf("Record: item %d is %s, not done", it.Index, it.State))
	}
	return ItemRecord{
		Index:     it.Index,
		SideDish:  it.SideDish,
		Transport: it.Transport,
		Rice:      it.Rice,
		Total:     it.End - it.Start,
		Start:     it.Start,
		End:       it.End,
	}
}

// This method returns a human-readable string representation of an ItemProcess.
func (it ItemProcess) String() string {
	return fmt.Sprintf("Item: (Index: %d, State: %s, Start: %d)", it.Index, it.State, it.Start)
}
