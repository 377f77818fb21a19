package cmd

import (
	"time"

	"github.com/marcus/devtrail/internal/entry"
	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/reminder"
	"github.com/marcus/devtrail/internal/store"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log -m <message> [-t tags] [-y]",
	Short: "Record a work log entry",
	Long: `Appends a timestamped entry to the log, then commits and pushes it
when the devtrail directory is a git repository.

Examples:
  devtrail log -m "Reviewed the billing migration"
  devtrail log -m "Fixed flaky auth test" -t "auth,testing"
  devtrail log -m "Forgot to log this yesterday" -y`,
	GroupID: "core",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		message, _ := cmd.Flags().GetString("message")
		tags, _ := cmd.Flags().GetString("tags")
		yesterday, _ := cmd.Flags().GetBool("yesterday")

		return runLog(getBaseDir(), message, tags, yesterday, time.Now())
	},
}

// runLog validates input, appends the entry, publishes, and resets the
// reminder clock. Split from the cobra handler so tests can drive it
// with a fixed directory and time.
func runLog(baseDir, message, tags string, yesterday bool, now time.Time) error {
	e, err := entry.Build(message, tags, yesterday, now)
	if err != nil {
		output.Error("%v", err)
		return err
	}

	doc, err := store.Append(baseDir, e)
	if err != nil {
		output.Error("%v", err)
		return err
	}
	output.Success("logged entry %d: %s", len(doc.Logs), e.Message)

	publishLog(baseDir, e.Message)

	if err := reminder.Touch(baseDir, now); err != nil {
		output.Warning("cannot update reminder state: %v", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringP("message", "m", "", "Entry message (required)")
	logCmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	logCmd.Flags().BoolP("yesterday", "y", false, "Backdate to yesterday at 18:00 UTC")
	logCmd.MarkFlagRequired("message")
}
