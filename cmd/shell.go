package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/marcus/devtrail/internal/models"
	"github.com/marcus/devtrail/internal/notify"
	"github.com/marcus/devtrail/internal/reminder"
	"github.com/marcus/devtrail/internal/shell"
	"github.com/marcus/devtrail/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive logging loop",
	Long: `Runs a prompt loop: shows when you last logged, nags with a desktop
notification when a reminder is due, and records entries until you
enter "q".`,
	GroupID: "core",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("shell requires a terminal; use 'devtrail log -m ...' for scripted input")
		}

		baseDir := getBaseDir()

		var notifier notify.Notifier = notify.Desktop{}
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			notifier = notify.Discard{}
		}

		sh := &shell.Shell{
			In:        os.Stdin,
			Out:       os.Stdout,
			Store:     fileStore{baseDir},
			Publisher: gitPublisher{baseDir},
			Notifier:  notifier,
			Reminder:  fileReminder{baseDir},
		}
		return sh.Run()
	},
}

// fileStore adapts the store package to the shell's Store interface.
type fileStore struct{ baseDir string }

func (s fileStore) Append(e models.LogEntry) error {
	_, err := store.Append(s.baseDir, e)
	return err
}

func (s fileStore) Last() (*models.LogEntry, error) {
	return store.Last(s.baseDir)
}

// gitPublisher adapts the publish sequence to the shell's Publisher
// interface.
type gitPublisher struct{ baseDir string }

func (p gitPublisher) Publish(message string) error {
	return tryPublish(p.baseDir, message)
}

// fileReminder adapts the reminder package to the shell's Reminder
// interface. Load failures count as Idle; a broken state file should
// not block logging.
type fileReminder struct{ baseDir string }

func (r fileReminder) Due(now time.Time) bool {
	state, err := reminder.Load(r.baseDir)
	if err != nil {
		return false
	}
	return reminder.Due(state, now)
}

func (r fileReminder) Touch(now time.Time) error {
	return reminder.Touch(r.baseDir, now)
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().Bool("quiet", false, "Suppress desktop notifications")
}
