package cmd

import (
	"fmt"
	"time"

	"github.com/marcus/devtrail/internal/output"
	"github.com/marcus/devtrail/internal/store"
	"github.com/spf13/cobra"
)

var lastCmd = &cobra.Command{
	Use:     "last",
	Short:   "Show the most recent log entry",
	GroupID: "view",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		last, err := store.Last(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		if last == nil {
			fmt.Println("none")
			return nil
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(last)
		}

		fmt.Print(output.FormatEntryLong(last, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lastCmd)

	lastCmd.Flags().Bool("json", false, "Output as JSON")
}
