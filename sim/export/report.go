package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	sim "github.com/piket-sim/piket-sim/sim"
)

// Report is the JSON document written by --results-json.
type Report struct {
	Seed        int64               `json:"seed"`
	StartClock  string              `json:"start_clock"`
	FinishClock string              `json:"finish_clock"`
	Summary     sim.Summary         `json:"summary"`
	Histogram   []sim.Bin           `json:"histogram"`
	Progress    []sim.ProgressPoint `json:"progress"`
	Records     []sim.ItemRecord    `json:"records"`
}

// NewReport assembles a Report for table. Records are sorted by item index.
func NewReport(table *sim.ResultTable, workers int, seed int64, start time.Duration, bins int) Report {
	summary := sim.Summarize(table, workers)
	return Report{
		Seed:        seed,
		StartClock:  ClockTime(start, 0),
		FinishClock: ClockTime(start, summary.Makespan),
		Summary:     summary,
		Histogram:   sim.DurationHistogram(table, bins),
		Progress:    sim.CompletionProgress(table),
		Records:     table.ByIndex(),
	}
}

// SaveJSON writes the report to path as indented JSON.
func (r Report) SaveJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logrus.Infof("Wrote report to %s", path)
	return nil
}
