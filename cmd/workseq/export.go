// ABOUTME: CLI commands for exporting and importing sequence data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/workseq/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportCategory string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export sequences and launch history",
	Long: `Export sequences and launch history in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables with duration estimates

OPTIONS:

  --output, -o     Write to file instead of stdout
  --category, -c   Filter by category (markdown only)

EXAMPLES:

  workseq export json -o backup.json
  workseq export yaml
  workseq export markdown --category warmup`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		case "markdown", "md":
			category, perr := parseCategoryFlag(exportCategory)
			if perr != nil {
				return perr
			}
			var md string
			md, err = store.ExportMarkdown(category)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sequences from a backup",
	Long: `Import sequences and launch history from a JSON or YAML backup.

Files ending in .yaml or .yml are read as YAML, everything else as JSON.
A raw JSON array of sequences (as stored by the browser app) is accepted too.
Sequences whose ID already exists are skipped.

EXAMPLES:

  workseq import backup.json
  workseq import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var summary *storage.ImportSummary
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			summary, err = store.ImportYAML(data)
		default:
			summary, err = store.ImportJSON(data)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		fmt.Printf("  Sequences: %d (skipped %d)\n", summary.Sequences, summary.Skipped)
		fmt.Printf("  Launches:  %d\n", summary.Launches)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportCategory, "category", "c", "", "filter by category (markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
