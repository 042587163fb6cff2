package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/piket-sim/piket-sim/sim"
	"github.com/piket-sim/piket-sim/sim/export"
	"github.com/piket-sim/piket-sim/sim/trace"
)

var (
	sweepFrom int // Smallest worker count to simulate
	sweepTo   int // Largest worker count to simulate
)

// SweepRow is the outcome of one worker count in a sweep.
type SweepRow struct {
	Workers int
	Summary sim.Summary
}

// sweepCmd runs the same seed once per worker count
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare finish times across a range of worker counts",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveRunConfig(cmd)
		start, err := export.ParseClock(cfg.Start)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		rows, err := sweepWorkers(cfg, sweepFrom, sweepTo)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		printSweep(os.Stdout, rows, start)
	},
}

// sweepWorkers simulates cfg for every worker count in [from, to].
func sweepWorkers(cfg RunConfig, from, to int) ([]SweepRow, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("sweep range [%d, %d] must satisfy 1 <= from <= to: %w", from, to, sim.ErrInvalidConfiguration)
	}
	rows := make([]SweepRow, 0, to-from+1)
	for w := from; w <= to; w++ {
		cfg.Workers = w
		s, err := simulate(cfg, trace.TraceLevelNone)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("sweep: %d workers finished at %d s", w, s.Clock)
		rows = append(rows, SweepRow{Workers: w, Summary: sim.Summarize(s.Results, w)})
	}
	return rows, nil
}

func printSweep(w io.Writer, rows []SweepRow, start time.Duration) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "workers\tmakespan_s\tfinish\tmean_total_s\tmean_wait_s\tutilization")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.1f\t%.1f\t%.1f%%\n",
			r.Workers, r.Summary.Makespan, export.ClockTime(start, r.Summary.Makespan),
			r.Summary.MeanTotal, r.Summary.MeanWait, r.Summary.Utilization*100)
	}
	_ = tw.Flush()
}

func init() {
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 1, "Smallest worker count")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 10, "Largest worker count")
}
