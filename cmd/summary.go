package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/marcus/devtrail/internal/export"
	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/store"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Short:   "Markdown digest of recent work",
	Long:    `Renders the last N days of log entries as a grouped-by-day digest.`,
	GroupID: "view",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := store.Load(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}

		days, _ := cmd.Flags().GetInt("days")
		md := summaryMarkdown(export.Build(doc, days, time.Now()))

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			fmt.Println(md)
			return nil
		}

		rendered, err := output.RenderMarkdown(md)
		if err != nil {
			output.Error("cannot render summary: %v", err)
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}

// summaryMarkdown formats an export window as markdown, entries grouped
// by calendar day (UTC).
func summaryMarkdown(doc *export.Document) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Work log, last %d days\n\n", doc.TimeframeDays)

	if doc.Statistics.TotalEntries == 0 {
		sb.WriteString("No entries in this window.\n")
		return sb.String()
	}

	var lastDay string
	for _, e := range doc.Entries {
		t, err := e.Time()
		if err != nil {
			continue
		}
		day := t.Format("2006-01-02")
		if day != lastDay {
			fmt.Fprintf(&sb, "## %s\n\n", day)
			lastDay = day
		}
		fmt.Fprintf(&sb, "- **%s** %s", t.Format("15:04"), e.Message)
		if len(e.Tags) > 0 {
			fmt.Fprintf(&sb, " _(%s)_", strings.Join(e.Tags, ", "))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\n---\n\n%d entries over %d active days",
		doc.Statistics.TotalEntries, doc.Statistics.ActiveDays)
	if len(doc.Statistics.EntriesByTag) > 0 {
		sb.WriteString(". Tags: ")
		sb.WriteString(formatTagCounts(doc.Statistics.EntriesByTag))
	}
	sb.WriteString("\n")

	return sb.String()
}

// formatTagCounts renders tag counts as "auth (3), testing (1)", most
// frequent first, ties alphabetical.
func formatTagCounts(counts map[string]int) string {
	tags := make([]string, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = fmt.Sprintf("%s (%d)", t, counts[t])
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Int("days", 7, "Lookback window in days")
	summaryCmd.Flags().Bool("plain", false, "Print raw markdown without terminal rendering")
}
