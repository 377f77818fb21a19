package cmd

import (
	"fmt"

	"github.com/marcus/devtrail/internal/models"
	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List recent log entries",
	GroupID: "view",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := store.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		tag, _ := cmd.Flags().GetString("tag")
		limit, _ := cmd.Flags().GetInt("limit")

		entries := filterEntries(doc.Logs, tag, limit)

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(entries)
		}

		if len(entries) == 0 {
			fmt.Println("no entries")
			return nil
		}
		for i := range entries {
			fmt.Println(output.FormatEntry(&entries[i]))
		}
		return nil
	},
}

// filterEntries keeps entries carrying tag (when set) and trims to the
// last limit entries, preserving chronological order.
func filterEntries(logs []models.LogEntry, tag string, limit int) []models.LogEntry {
	entries := []models.LogEntry{}
	for _, e := range logs {
		if tag != "" && !entryHasTag(&e, tag) {
			continue
		}
		entries = append(entries, e)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

func entryHasTag(e *models.LogEntry, tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntP("limit", "n", 10, "Max entries to show (0 for all)")
	listCmd.Flags().String("tag", "", "Only entries carrying this tag")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
