package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/piket-sim/piket-sim/sim"
	"github.com/piket-sim/piket-sim/sim/export"
	"github.com/piket-sim/piket-sim/sim/trace"
)

var (
	// CLI flags shared by run and sweep
	totalItems     int    // Number of ompreng to fill
	workerCapacity int    // Number of students on duty
	startClock     string // Time of day the roster starts (HH:MM)
	seed           int64  // Seed for stage duration sampling
	logLevel       string // Log verbosity level
	configPath     string // Optional run YAML

	// CLI flags for run output
	resultsCSVPath  string // Where to write the per-item table
	resultsJSONPath string // Where to write the JSON report
	histogramBins   int    // Buckets in the duration histogram
	traceLevel      string // Event trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "piket-sim",
	Short: "Discrete-event simulator for the ompreng duty roster",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ompreng simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := resolveRunConfig(cmd)
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}
		start, err := export.ParseClock(cfg.Start)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Starting simulation with %d ompreng, %d workers, seed=%d, start=%s",
			cfg.Items, cfg.Workers, cfg.Seed, cfg.Start)
		wallStart := time.Now()

		s, err := simulate(cfg, trace.TraceLevel(traceLevel))
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		printRunReport(os.Stdout, s, start)

		if resultsCSVPath != "" {
			if err := export.SaveCSV(resultsCSVPath, s.Results, start); err != nil {
				logrus.Fatalf("%v", err)
			}
		}
		if resultsJSONPath != "" {
			report := export.NewReport(s.Results, cfg.Workers, cfg.Seed, start, histogramBins)
			if err := report.SaveJSON(resultsJSONPath); err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		logrus.Infof("Simulation complete in %s.", time.Since(wallStart))
	},
}

// resolveRunConfig loads --config if given and lets explicitly set flags win.
func resolveRunConfig(cmd *cobra.Command) RunConfig {
	cfg := DefaultRunConfig()
	if configPath != "" {
		loaded, err := LoadRunConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		cfg = loaded
	}
	applyFlagOverrides(&cfg, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("%v", err)
	}
	return cfg
}

// applyFlagOverrides copies flag values into cfg for every flag the user set.
// Flag defaults must not overwrite values loaded from YAML.
func applyFlagOverrides(cfg *RunConfig, changed func(name string) bool) {
	if changed("items") {
		cfg.Items = totalItems
	}
	if changed("workers") {
		cfg.Workers = workerCapacity
	}
	if changed("start") {
		cfg.Start = startClock
	}
	if changed("seed") {
		cfg.Seed = seed
	}
}

// simulate runs cfg to completion. cfg must already be valid.
func simulate(cfg RunConfig, level trace.TraceLevel) (*sim.Simulator, error) {
	sampler, err := sim.NewSeededSampler(sim.NewSimulationKey(cfg.Seed), cfg.Stages)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Sampling stage durations with key %d", sampler.Key())
	s, err := sim.NewSimulator(cfg.SimConfig(), sampler)
	if err != nil {
		return nil, err
	}
	if level == trace.TraceLevelEvents {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: level})
	}
	s.Run()
	return s, nil
}

func printRunReport(w io.Writer, s *sim.Simulator, start time.Duration) {
	summary := sim.Summarize(s.Results, s.Pool.Capacity())
	summary.Print(w)
	fmt.Fprintf(w, "Finished At          : %s\n", export.ClockTime(start, summary.Makespan))
	if s.Trace.Enabled() {
		ts := trace.Summarize(s.Trace)
		fmt.Fprintln(w, "=== Event Trace ===")
		fmt.Fprintf(w, "Events               : %d\n", ts.TotalEvents)
		fmt.Fprintf(w, "Peak Busy Workers    : %d\n", ts.PeakBusy)
		fmt.Fprintf(w, "Peak Queue Depth     : %d\n", ts.PeakQueueDepth)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().IntVar(&totalItems, "items", sim.DefaultTotalItems, "Number of ompreng to fill")
	rootCmd.PersistentFlags().IntVar(&workerCapacity, "workers", sim.DefaultWorkerCapacity, "Number of students on duty")
	rootCmd.PersistentFlags().StringVar(&startClock, "start", export.DefaultStartClock, "Time of day the roster starts (HH:MM)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", sim.DefaultSeed, "Seed for stage duration sampling")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Run YAML file (flags set on the command line take precedence)")

	runCmd.Flags().StringVar(&resultsCSVPath, "results-csv", "", "Write the per-item table to this CSV file")
	runCmd.Flags().StringVar(&resultsJSONPath, "results-json", "", "Write the summary, histogram and table to this JSON file")
	runCmd.Flags().IntVar(&histogramBins, "histogram-bins", sim.DefaultHistogramBins, "Number of buckets in the duration histogram")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Event trace level (none, events)")

	// Attach `run` and `sweep` as subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
