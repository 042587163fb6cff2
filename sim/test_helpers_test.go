package sim

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// roster is the fixed (30, 20, 30) sampler used by the worked scenarios.
var roster = FixedSampler{SideDish: 30, Transport: 20, Rice: 30}

// mustRun runs totalItems on workers with sampler and fails the test on error.
func mustRun(t *testing.T, totalItems, workers int, sampler DurationSampler) *ResultTable {
	t.Helper()
	table, err := Run(totalItems, workers, sampler)
	require.NoError(t, err)
	require.NotNil(t, table)
	return table
}

// seededSampler returns a UniformSampler over the default ranges.
func seededSampler(t *testing.T, seed int64) *UniformSampler {
	t.Helper()
	s, err := NewSeededSampler(NewSimulationKey(seed), DefaultStageRanges())
	require.NoError(t, err)
	return s
}

// peakOverlap returns the largest number of [Start, End) holds open at once.
// Holds ending at t are closed before holds starting at t are opened.
func peakOverlap(records []ItemRecord) int {
	type edge struct {
		at    int64
		delta int
	}
	edges := make([]edge, 0, 2*len(records))
	for _, r := range records {
		edges = append(edges, edge{r.Start, +1}, edge{r.End, -1})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].at != edges[j].at {
			return edges[i].at < edges[j].at
		}
		return edges[i].delta < edges[j].delta
	})
	open, peak := 0, 0
	for _, e := range edges {
		open += e.delta
		peak = max(peak, open)
	}
	return peak
}
