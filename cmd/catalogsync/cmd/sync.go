package cmd

import (
	"fmt"

	"catalogsync/internal/infrastructure/storage/postgres"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a single feed sync pass and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, err := postgres.New(cfg)
		if err != nil {
			return fmt.Errorf("storage init: %w", err)
		}
		defer storage.Close()

		report, err := newSyncService(storage).Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("sync pass: %w", err)
		}

		fmt.Printf("Fetched:   %d\n", report.Fetched)
		fmt.Printf("Succeeded: %d\n", report.Succeeded)
		fmt.Printf("Failed:    %d\n", report.Failed)
		fmt.Printf("Duration:  %s\n", report.FinishedAt.Sub(report.StartedAt))
		for _, item := range report.FailedItems() {
			fmt.Printf("  %s %d (%s): %s\n", item.Kind, item.ExternalID, item.Name, item.Error)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
