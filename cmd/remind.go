package cmd

import (
	"fmt"
	"time"

	"github.com/marcus/devtrail/internal/notify"
	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/reminder"
	"github.com/marcus/devtrail/internal/shell"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Check whether a log reminder is due",
	Long: `Reports how long ago the last entry was logged and whether the
reminder threshold has elapsed. With --notify, fires a desktop
notification when due; useful from cron or a login script.`,
	GroupID: "core",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		if freq, _ := cmd.Flags().GetInt64("frequency"); freq > 0 {
			if err := reminder.SetFrequency(baseDir, freq); err != nil {
				output.Error("%v", err)
				return err
			}
			output.Success("reminder frequency set to %s", (time.Duration(freq) * time.Second).String())
			return nil
		}

		state, err := reminder.Load(baseDir)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		now := time.Now()
		elapsed, logged := reminder.Elapsed(state, now)
		if !logged {
			fmt.Println("no entries logged yet")
			return nil
		}

		fmt.Printf("last log: %s ago (reminder every %s)\n",
			elapsed.Round(time.Second), (time.Duration(state.Frequency) * time.Second).String())

		if !reminder.Due(state, now) {
			fmt.Println("state: idle")
			return nil
		}

		fmt.Println("state: due")
		if doNotify, _ := cmd.Flags().GetBool("notify"); doNotify {
			if err := (notify.Desktop{}).Notify(shell.NotifyTitle, shell.NotifyBody); err != nil {
				output.Warning("cannot send notification: %v", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)

	remindCmd.Flags().Bool("notify", false, "Send a desktop notification when due")
	remindCmd.Flags().Int64("frequency", 0, "Set the reminder frequency in seconds and exit (overrides the config.json value)")
}
