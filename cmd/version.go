package cmd

import (
	"fmt"

	"github.com/marcus/devtrail/internal/output"
	ver "github.com/marcus/devtrail/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show the devtrail version",
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := version
		if current == "" {
			current = "dev"
		}
		fmt.Printf("devtrail %s\n", current)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		if ver.IsDevelopmentVersion(current) {
			fmt.Println("development build, skipping update check")
			return nil
		}

		result := ver.Check(current)
		if result.Error != nil {
			output.Warning("update check failed: %v", result.Error)
			return nil
		}
		if !result.HasUpdate {
			fmt.Println("up to date")
			return nil
		}

		fmt.Printf("update available: %s (%s)\n", result.LatestVersion, result.UpdateURL)
		if cmdline := ver.UpdateCommand(result.LatestVersion); cmdline != "" {
			fmt.Printf("  %s\n", cmdline)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("check", false, "Check GitHub releases for a newer version")
}
