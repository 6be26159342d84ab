// ABOUTME: CLI commands for deleting sequences.
// ABOUTME: Supports deletion by ID prefix and clearing all sequences.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var clearYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout sequence",
	Long: `Delete a sequence by its ID or ID prefix.

The ID prefix is shown in the first column of 'workseq list' output.
Launch history entries for the sequence are kept; 'workseq recent' shows
them as deleted.

EXAMPLES:

  workseq delete abc12345    # Delete by 8-char prefix
  workseq rm abc1            # Short prefix (if unique)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := findSequence(store, args[0])
		if err != nil {
			return err
		}

		if !store.Delete(seq.ID) {
			return fmt.Errorf("failed to delete sequence %s", shortID(seq.ID))
		}

		color.Yellow("✗ Deleted %s", seq.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(seq.ID)))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all sequences",
	Long: `Delete every stored sequence. Launch history is kept.

This is a DESTRUCTIVE operation. Pass --yes to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			fmt.Print("This will DELETE all sequences. Continue? [y/N]: ")
			var confirm string
			_, _ = fmt.Scanln(&confirm)
			if confirm != "y" && confirm != "Y" {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if !store.ClearAll() {
			return fmt.Errorf("failed to clear sequences")
		}

		color.Yellow("✗ Cleared all sequences")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
