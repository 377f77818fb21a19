package cmd

import (
	"fmt"
	"os"

	"github.com/marcus/devtrail/internal/config"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "devtrail",
	Short: "Personal work log with git backup",
	Long: `devtrail - A personal work-logging CLI.

Appends timestamped, tagged entries to a local JSON log and commits and
pushes the log to a git remote when one is configured. Entries always
persist locally first; publishing is best-effort.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "view", Title: "View Commands:"},
		&cobra.Group{ID: "system", Title: "System Commands:"},
	)

	rootCmd.SetHelpCommandGroupID("system")
	rootCmd.SetCompletionCommandGroupID("system")
}

func initBaseDir() {
	var err error
	baseDir, err = config.BaseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine devtrail directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory holding the log and reminder files
func getBaseDir() string {
	return baseDir
}
