package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/amc-sim/amc-sim/sim"
)

var (
	// CLI flags for the SNR sweep
	snrMin     float64 // Sweep start (dB)
	snrMax     float64 // Sweep end (dB)
	snrStep    float64 // Sweep step (dB)
	logLevel   string  // Log verbosity level
	targetBLER float64 // Target BLER for the target-bler strategy
	bandwidth  float64 // Channel bandwidth (MHz)
	mcsTable   string  // Built-in MCS table name
	mcsFile    string  // Optional YAML file with custom MCS tables
	csvOut     string  // Optional CSV output path

	// CLI flags for HARQ Chase Combining
	harqEnabled bool    // Enable the simplified HARQ model
	harqMaxRetx int     // Max retransmissions per block
	harqGainDB  float64 // SNR combining gain per attempt (dB)

	// CLI flags for the threshold search
	searchLo  float64 // Search lower bound (dB)
	searchHi  float64 // Search upper bound (dB)
	searchTol float64 // Bisection precision (dB)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "amc-sim",
	Short: "AMC strategy simulator and throughput evaluator",
}

// buildConfig assembles the simulation configuration from CLI flags.
func buildConfig() (sim.SimulationConfig, error) {
	cfg := sim.NewSimulationConfig()
	cfg.Sweep = sim.SweepConfig{SNRMinDB: snrMin, SNRMaxDB: snrMax, SNRStepDB: snrStep}
	cfg.TargetBLER = targetBLER
	cfg.BandwidthMHz = bandwidth
	cfg.MCSTableName = mcsTable
	cfg.HARQ = sim.HARQConfig{Enabled: harqEnabled, MaxRetx: harqMaxRetx, GainDB: harqGainDB}
	cfg.Search.SNRLoDB = searchLo
	cfg.Search.SNRHiDB = searchHi
	cfg.Search.ToleranceDB = searchTol
	cfg.Strategies = sim.DefaultStrategyConfigs(targetBLER)

	if mcsFile != "" {
		table, err := LoadMCSTable(mcsFile, mcsTable)
		if err != nil {
			return cfg, err
		}
		if table != nil {
			cfg.Table = table
		}
	}
	return cfg, nil
}

// runCmd executes the sweep using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the AMC strategy sweep",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting sweep: table=%s snr=[%.1f,%.1f] step=%.2f targetBLER=%.2f bandwidth=%.0fMHz harq=%v",
			cfg.MCSTableName, snrMin, snrMax, snrStep, targetBLER, bandwidth, harqEnabled)

		startTime := time.Now()

		s := sim.NewSimulator(cfg)
		result, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		result.Print()

		if csvOut != "" {
			f, err := os.Create(csvOut)
			if err != nil {
				logrus.Fatalf("Cannot create CSV file: %v", err)
			}
			defer f.Close()
			if err := sim.WriteCSV(f, result); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Wrote per-sample results to %s", csvOut)
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&mcsTable, "mcs-table", "LTE", "MCS table name (built-in or from --mcs-file)")
	pf.StringVar(&mcsFile, "mcs-file", "", "YAML file with custom MCS tables")
	pf.Float64Var(&targetBLER, "target-bler", 0.10, "Target BLER for threshold search")
	pf.Float64Var(&searchLo, "search-snr-min", -10.0, "Threshold search lower bound (dB)")
	pf.Float64Var(&searchHi, "search-snr-max", 35.0, "Threshold search upper bound (dB)")
	pf.Float64Var(&searchTol, "search-tolerance", 0.1, "Threshold search precision (dB)")

	// Sweep configs
	runCmd.Flags().Float64Var(&snrMin, "snr-min", -5.0, "Sweep start SNR (dB)")
	runCmd.Flags().Float64Var(&snrMax, "snr-max", 30.0, "Sweep end SNR (dB)")
	runCmd.Flags().Float64Var(&snrStep, "snr-step", 0.5, "Sweep step (dB)")
	runCmd.Flags().Float64Var(&bandwidth, "bandwidth", 20.0, "Channel bandwidth (MHz)")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "Write per-sample results to a CSV file")

	// HARQ configs
	runCmd.Flags().BoolVar(&harqEnabled, "harq", false, "Enable the simplified HARQ Chase-Combining model")
	runCmd.Flags().IntVar(&harqMaxRetx, "harq-retx", 4, "Max HARQ retransmissions per block")
	runCmd.Flags().Float64Var(&harqGainDB, "harq-gain", 3.0, "HARQ SNR combining gain per attempt (dB)")

	rootCmd.AddCommand(runCmd)
}
