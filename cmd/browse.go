package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/tui/browse"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Short:   "Scroll the log history in a TUI",
	GroupID: "view",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, _ := cmd.Flags().GetString("tag")

		model := browse.NewModel(getBaseDir(), tag)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			output.Error("%v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().String("tag", "", "Only entries carrying this tag")
}
