// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports status, now, and reset operations against the charm backend.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/workseq/internal/kv"
	"github.com/harperreed/workseq/internal/storage"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:         "sync",
	Aliases:     []string{"s"},
	Short:       "Sync sequences across devices",
	Annotations: map[string]string{skipStoreAnnotation: ""},
	Long: `Sync sequences across devices using Charm Cloud.

Data is E2E encrypted with your SSH key before upload. These commands always
use the charm backend, whatever the configured default is.

COMMANDS:

  status   Show Charm account and local data counts
  now      Sync immediately
  reset    Reset local data and restore from cloud (destructive)

With 'workseq config set backend charm', data syncs after every write.`,
}

// openCharmStore opens the charm backend for sync commands.
func openCharmStore() (*kv.Charm, *storage.Store, error) {
	backend, err := kv.OpenCharm()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open charm backend: %w", err)
	}
	return backend, storage.New(backend, storage.WithLogger(logger)), nil
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, s, err := openCharmStore()
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := backend.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'charm link' to connect this device.")
			return nil
		}

		host := os.Getenv("CHARM_HOST")
		fmt.Println("Charm ID:", id)
		fmt.Println("Server:", host)
		if backend.IsReadOnly() {
			color.Yellow("⚠ Opened read-only (another process holds the database)")
		}
		fmt.Println()

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Sequences: %d\n", len(s.List(nil)))
		fmt.Printf("  Launches:  %d\n", len(s.GetLaunchHistory()))
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, s, err := openCharmStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := backend.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.Green("✓ Sync complete")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local charm data and restore from Charm Cloud.

This is a destructive operation. Use it to fix sync conflicts or reset a
device to the cloud state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will DELETE all local sequence data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		_, _ = fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		backend, s, err := openCharmStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := backend.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("✓ Local data reset and restored from cloud")
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncResetCmd)
	rootCmd.AddCommand(syncCmd)
}
