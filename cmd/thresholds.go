package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/amc-sim/amc-sim/sim"
)

var thresholdsMargin float64 // Extra margin column applied to each threshold

// thresholdsCmd prints the per-MCS SNR threshold table for the target BLER.
var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Print the per-MCS SNR thresholds for a target BLER",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := buildConfigForTable()
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		table, err := cfg.ResolveTable()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := table.Validate(); err != nil {
			logrus.Fatalf("%v", err)
		}

		model := sim.NewBLERModel(table, cfg.Search.Slope)
		tt, err := sim.BuildThresholdTable(table, model, cfg.TargetBLER, cfg.Search)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		fmt.Printf("SNR thresholds for table %s at target BLER %.2f\n", table.Name, cfg.TargetBLER)
		out := tablewriter.NewWriter(os.Stdout)
		out.SetHeader([]string{"MCS", "Modulation", "SE (bits/s/Hz)", "SNR Threshold (dB)", "BLER"})
		for _, r := range tt.Results {
			if !r.Reachable {
				out.Append([]string{
					fmt.Sprintf("%d", r.MCSIndex), r.Modulation,
					fmt.Sprintf("%.4f", r.SpectralEfficiency), "unreachable", "-",
				})
				continue
			}
			out.Append([]string{
				fmt.Sprintf("%d", r.MCSIndex),
				r.Modulation,
				fmt.Sprintf("%.4f", r.SpectralEfficiency),
				fmt.Sprintf("%.1f", r.SNRThreshold+thresholdsMargin),
				fmt.Sprintf("%.1f%%", r.ActualBLER*100),
			})
		}
		out.Render()
	},
}

// buildConfigForTable assembles just enough configuration for table-centric
// subcommands (no sweep parameters).
func buildConfigForTable() (sim.SimulationConfig, error) {
	cfg := sim.NewSimulationConfig()
	cfg.TargetBLER = targetBLER
	cfg.MCSTableName = mcsTable
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

func init() {
	thresholdsCmd.Flags().Float64Var(&thresholdsMargin, "margin", 0.0, "Extra SNR margin added to each displayed threshold (dB)")
	rootCmd.AddCommand(thresholdsCmd)
}
