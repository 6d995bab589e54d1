package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/amc-sim/amc-sim/sim"
)

// tablesCmd lists the MCS tables available to the simulator.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List available MCS tables",
	Run: func(cmd *cobra.Command, args []string) {
		out := tablewriter.NewWriter(os.Stdout)
		out.SetHeader([]string{"Name", "Source", "Entries", "Peak SE (bits/s/Hz)"})

		for _, name := range sim.MCSTableNames() {
			t, err := sim.GetMCSTable(name)
			if err != nil {
				continue
			}
			appendTableRow(out, t, "built-in")
		}

		if mcsFile != "" {
			cfg, err := loadMCSTablesConfig(mcsFile)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			for name := range cfg.Tables {
				t, err := LoadMCSTable(mcsFile, name)
				if err != nil {
					logrus.Fatalf("%v", err)
				}
				appendTableRow(out, t, mcsFile)
			}
		}

		out.Render()
	},
}

func appendTableRow(out *tablewriter.Table, t *sim.MCSTable, source string) {
	peak := t.Entries[t.Len()-1].SpectralEfficiency
	out.Append([]string{
		t.Name, source,
		fmt.Sprintf("%d", t.Len()),
		fmt.Sprintf("%.4f", peak),
	})
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
