package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/planner/internal/integration/snapshot"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example snapshot file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := snapshot.WriteExample(flagFile); err != nil {
			return fmt.Errorf("write example: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", flagFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
