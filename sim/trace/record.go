// Package trace provides per-event trace recording for roster simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventKind names the kind of transition an EventRecord captures.
type EventKind string

const (
	// KindAcquire is an item asking for a worker, granted or not.
	KindAcquire EventKind = "acquire"
	// KindGrant is a worker handed to an item.
	KindGrant EventKind = "grant"
	// KindStage is an item entering a timed stage.
	KindStage EventKind = "stage"
	// KindRelease is an item giving its worker back.
	KindRelease EventKind = "release"
)

// EventRecord captures a single item transition.
type EventRecord struct {
	Clock    int64
	Item     int
	Kind     EventKind
	Stage    string // stage entered (KindStage only)
	Duration int64  // sampled stage duration (KindStage only)
	Busy     int    // workers held after the transition
	Queued   int    // items waiting after the transition
}
