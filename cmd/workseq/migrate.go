// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Moves sequences and launch history, e.g. from badger to sqlite.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/workseq/internal/config"
	"github.com/harperreed/workseq/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateForce  bool
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:         "migrate",
	Short:       "Copy data between storage backends",
	Annotations: map[string]string{skipStoreAnnotation: ""},
	Long: `Copy sequences and launch history from one backend to another.

Both backends use the configured data directory. The destination must be
empty unless --force is given, in which case its data is replaced.

USAGE:

  workseq migrate --from badger --to sqlite --dry-run
  workseq migrate --from badger --to sqlite
  workseq migrate --from charm --to badger --force

Afterwards switch the default with 'workseq config set backend sqlite'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == "" || migrateTo == "" {
			return fmt.Errorf("both --from and --to are required")
		}
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination are the same backend: %s", migrateFrom)
		}

		srcBackend, err := config.OpenBackend(migrateFrom, cfg.GetDataDir())
		if err != nil {
			return fmt.Errorf("failed to open source %s: %w", migrateFrom, err)
		}
		src := storage.New(srcBackend, storage.WithLogger(logger))
		defer src.Close()

		dstBackend, err := config.OpenBackend(migrateTo, cfg.GetDataDir())
		if err != nil {
			return fmt.Errorf("failed to open destination %s: %w", migrateTo, err)
		}
		dst := storage.New(dstBackend, storage.WithLogger(logger))
		defer dst.Close()

		empty, err := dst.IsEmpty()
		if err != nil {
			return fmt.Errorf("failed to inspect destination: %w", err)
		}
		if !empty && !migrateForce {
			return fmt.Errorf("destination %s already has data (use --force to replace it)", migrateTo)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Printf("  Sequences: %d\n", len(src.List(nil)))
			fmt.Printf("  Launches:  %d\n", len(src.GetLaunchHistory()))
			return nil
		}

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %s → %s", migrateFrom, migrateTo)
		fmt.Printf("  Sequences: %d\n", summary.Sequences)
		fmt.Printf("  Launches:  %d\n", summary.Launches)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "replace existing data in the destination")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
