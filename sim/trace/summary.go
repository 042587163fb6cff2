package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents    int
	Acquires       int
	Grants         int
	Releases       int
	PeakBusy       int
	PeakQueueDepth int
	StageSeconds   map[string]int64 // stage name → summed sampled duration
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		StageSeconds: make(map[string]int64),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for _, e := range st.Events {
		switch e.Kind {
		case KindAcquire:
			summary.Acquires++
		case KindGrant:
			summary.Grants++
		case KindRelease:
			summary.Releases++
		case KindStage:
			summary.StageSeconds[e.Stage] += e.Duration
		}
		summary.PeakBusy = max(summary.PeakBusy, e.Busy)
		summary.PeakQueueDepth = max(summary.PeakQueueDepth, e.Queued)
	}

	return summary
}
