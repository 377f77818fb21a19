package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/marcus/devtrail/internal/config"
	"github.com/marcus/devtrail/internal/git"
	"github.com/marcus/devtrail/internal/models"
	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/reminder"
	"github.com/marcus/devtrail/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the devtrail directory",
	Long: `Creates the devtrail directory with an empty log and walks through
the reminder and git publish settings. Safe to re-run; existing log
entries are never touched.`,
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		cfg, err := config.Load(baseDir)
		if err != nil {
			output.Warning("cannot read existing config, starting fresh: %v", err)
			cfg = &models.Config{}
		}

		freqStr := strconv.FormatInt(config.Frequency(cfg), 10)
		remote := config.Remote(cfg)
		branch := config.Branch(cfg)
		confirm := true

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Reminder frequency").
					Description("How long without an entry before devtrail nags you").
					Options(
						huh.NewOption("Every 6 hours", "21600"),
						huh.NewOption("Every 12 hours", "43200"),
						huh.NewOption("Every 24 hours", "86400"),
						huh.NewOption("Every 48 hours", "172800"),
					).
					Value(&freqStr),
				huh.NewInput().
					Title("Git remote").
					Description("Remote the log is pushed to").
					Value(&remote),
				huh.NewInput().
					Title("Push branch").
					Value(&branch),
				huh.NewConfirm().
					Title(fmt.Sprintf("Write settings to %s?", baseDir)).
					Value(&confirm),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}
		if !confirm {
			fmt.Println("aborted, nothing written")
			return nil
		}

		freq, err := strconv.ParseInt(freqStr, 10, 64)
		if err != nil || freq <= 0 {
			freq = config.DefaultFrequency
		}

		cfg.Remote = remote
		cfg.Branch = branch
		cfg.Frequency = freq
		if err := config.Save(baseDir, cfg); err != nil {
			output.Error("cannot save config: %v", err)
			return err
		}

		// An existing reminder state keeps its own frequency, so push
		// the chosen one into it as well.
		if err := reminder.SetFrequency(baseDir, freq); err != nil {
			output.Warning("cannot update reminder state: %v", err)
		}

		if err := store.Init(baseDir); err != nil {
			output.Error("cannot create log file: %v", err)
			return err
		}

		output.Success("devtrail initialized at %s", baseDir)
		if !git.IsRepo(baseDir) {
			output.Info("Tip: run 'git init' in %s and add a remote to enable publishing", baseDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
