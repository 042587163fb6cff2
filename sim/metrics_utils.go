// sim/metrics_utils.go
package sim

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultHistogramBins matches the roster report's duration chart.
const DefaultHistogramBins = 30

// Bin is one histogram bucket over [Lower, Upper).
type Bin struct {
	Lower float64 `json:"lower_s"`
	Upper float64 `json:"upper_s"`
	Count int     `json:"count"`
}

// DurationHistogram buckets the total durations of table into bins of equal
// width spanning [min, max+1). Returns nil for an empty table or bins < 1.
func DurationHistogram(table *ResultTable, bins int) []Bin {
	if table.Len() == 0 || bins < 1 {
		return nil
	}
	records := table.Records()
	totals := make([]float64, len(records))
	for i, r := range records {
		totals[i] = float64(r.Total)
	}
	sort.Float64s(totals)

	// stat.Histogram needs the last divider strictly above the largest value;
	// whole-second totals make max+1 a clean upper edge.
	dividers := floats.Span(make([]float64, bins+1), totals[0], totals[len(totals)-1]+1)
	counts := stat.Histogram(nil, dividers, totals, nil)

	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Lower: dividers[i], Upper: dividers[i+1], Count: int(counts[i])}
	}
	return out
}

// ProgressPoint is one item on the completion curve.
type ProgressPoint struct {
	Index int   `json:"index"`
	End   int64 `json:"end_s"`
}

// CompletionProgress returns (index, end) pairs in completion-time order.
func CompletionProgress(table *ResultTable) []ProgressPoint {
	records := table.ByEnd()
	out := make([]ProgressPoint, len(records))
	for i, r := range records {
		out[i] = ProgressPoint{Index: r.Index, End: r.End}
	}
	return out
}
