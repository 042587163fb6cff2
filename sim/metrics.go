// Aggregates a finished ResultTable into roster-level statistics.

package sim

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the aggregate statistics of one run. Durations are seconds.
type Summary struct {
	Items   int `json:"items"`
	Workers int `json:"workers"`

	MeanTotal   float64 `json:"mean_total_s"`
	StdDevTotal float64 `json:"stddev_total_s"`
	MinTotal    int64   `json:"min_total_s"`
	MaxTotal    int64   `json:"max_total_s"`
	P50Total    float64 `json:"p50_total_s"`
	P90Total    float64 `json:"p90_total_s"`
	P99Total    float64 `json:"p99_total_s"`

	MeanWait float64 `json:"mean_wait_s"` // mean Start; every item arrives at 0
	Makespan int64   `json:"makespan_s"`  // final clock, max End

	ThroughputPerHour float64 `json:"throughput_per_hour"`
	Utilization       float64 `json:"utilization"` // busy worker-seconds / (workers × makespan)
}

// Summarize computes a Summary over table for a pool of workers.
// Safe for a nil or empty table (returns zero-value statistics).
func Summarize(table *ResultTable, workers int) Summary {
	s := Summary{Items: table.Len(), Workers: workers}
	if s.Items == 0 {
		return s
	}

	records := table.Records()
	totals := make([]float64, len(records))
	waits := make([]float64, len(records))
	var busy int64
	s.MinTotal = math.MaxInt64
	for i, r := range records {
		totals[i] = float64(r.Total)
		waits[i] = float64(r.Start)
		busy += r.Total
		s.MinTotal = min(s.MinTotal, r.Total)
		s.MaxTotal = max(s.MaxTotal, r.Total)
		s.Makespan = max(s.Makespan, r.End)
	}
	sort.Float64s(totals)

	s.MeanTotal = stat.Mean(totals, nil)
	if len(totals) > 1 {
		s.StdDevTotal = stat.StdDev(totals, nil)
	}
	s.P50Total = stat.Quantile(0.50, stat.Empirical, totals, nil)
	s.P90Total = stat.Quantile(0.90, stat.Empirical, totals, nil)
	s.P99Total = stat.Quantile(0.99, stat.Empirical, totals, nil)
	s.MeanWait = stat.Mean(waits, nil)

	if s.Makespan > 0 {
		s.ThroughputPerHour = float64(s.Items) / float64(s.Makespan) * 3600
		if workers > 0 {
			s.Utilization = float64(busy) / (float64(workers) * float64(s.Makespan))
		}
	}
	return s
}

// Print writes the summary in the CLI's report layout.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Ompreng              : %d\n", s.Items)
	fmt.Fprintf(w, "Workers              : %d\n", s.Workers)
	if s.Items == 0 {
		return
	}
	fmt.Fprintf(w, "Mean Duration        : %.1f s (stddev %.1f)\n", s.MeanTotal, s.StdDevTotal)
	fmt.Fprintf(w, "Duration p50/p90/p99 : %.0f / %.0f / %.0f s\n", s.P50Total, s.P90Total, s.P99Total)
	fmt.Fprintf(w, "Mean Wait            : %.1f s\n", s.MeanWait)
	fmt.Fprintf(w, "Makespan             : %d s\n", s.Makespan)
	fmt.Fprintf(w, "Throughput           : %.2f ompreng/hour\n", s.ThroughputPerHour)
	fmt.Fprintf(w, "Worker Utilization   : %.1f%%\n", s.Utilization*100)
}
