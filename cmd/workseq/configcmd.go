// ABOUTME: CLI commands for viewing and changing configuration.
// ABOUTME: Reads and writes ~/.config/workseq/config.json.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/workseq/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "View or change configuration",
	Annotations: map[string]string{skipStoreAnnotation: ""},
	Long: `View or change workseq configuration.

KEYS:

  backend     badger (default), sqlite, charm, memory, none
  data_dir    data directory (default ~/.local/share/workseq)
  log_level   debug, info, warn (default), error

EXAMPLES:

  workseq config show
  workseq config set backend sqlite
  workseq config set data_dir ~/Dropbox/workseq`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Println(faint.Sprint("# " + config.GetConfigPath()))
		fmt.Printf("backend:   %s\n", cfg.GetBackend())
		fmt.Printf("data_dir:  %s\n", cfg.GetDataDir())
		fmt.Printf("log_level: %s\n", cfg.GetLogLevel())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reload so flag overrides are not persisted.
		saved, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := saved.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := saved.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s = %s", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
