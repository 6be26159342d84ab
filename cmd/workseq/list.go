// ABOUTME: CLI commands for listing and inspecting sequences.
// ABOUTME: Provides list, show and estimate.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/workseq/internal/duration"
	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workout sequences",
	Long: `List stored sequences in the order they were created.

OUTPUT FORMAT:

  Each line shows: ID  CATEGORY  NAME  EXERCISES  ~ESTIMATE

  The ID is an 8-character prefix you can use with other commands.

EXAMPLES:

  workseq list                     # All sequences
  workseq list --category warmup   # Only warm-ups
  workseq ls -c workout            # Only workouts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := parseCategoryFlag(listCategory)
		if err != nil {
			return err
		}

		sequences := store.List(category)
		if len(sequences) == 0 {
			fmt.Println("No sequences found.")
			return nil
		}

		for _, seq := range sequences {
			printSequenceLine(seq)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a sequence with its exercises",
	Long: `Show a sequence's settings, estimated duration and exercises.

EXAMPLES:

  workseq show abc12345`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := findSequence(store, args[0])
		if err != nil {
			return err
		}
		printSequenceDetail(seq)
		return nil
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <id>",
	Short: "Estimate how long a sequence takes",
	Long: `Estimate the total duration of a sequence.

Timed exercises count their duration, repetition exercises count 2 seconds
per repetition. Breaks are added between exercises (not after the last one)
and cycle breaks between cycles (not after the last cycle).

EXAMPLES:

  workseq estimate abc12345`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := findSequence(store, args[0])
		if err != nil {
			return err
		}
		total := duration.TotalSeconds(seq)
		fmt.Printf("%s: %s (%d seconds)\n", seq.Name, color.CyanString(duration.Format(total)), total)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category (workout, warmup)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(estimateCmd)
}
