package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/marcus/devtrail/internal/export"
	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a timeframe of the log to a JSON file",
	Long: `Writes entries from the lookback window to a standalone JSON file
with summary statistics, suitable for feeding into reviews or
work-summary tooling.`,
	GroupID: "view",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := store.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		timeframe, _ := cmd.Flags().GetInt("timeframe")
		outFile, _ := cmd.Flags().GetString("output")

		envelope := export.Build(doc, timeframe, time.Now())

		data, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if err := os.WriteFile(outFile, append(data, '\n'), 0644); err != nil {
			output.Error("cannot write %s: %v", outFile, err)
			return err
		}

		output.Success("exported %d entries (%d days) to %s",
			envelope.Statistics.TotalEntries, timeframe, outFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Int("timeframe", 365, "Number of days to look back")
	exportCmd.Flags().StringP("output", "o", "devtrail-export.json", "Output JSON file")
}
