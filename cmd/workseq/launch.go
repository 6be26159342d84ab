// ABOUTME: CLI commands for starting sequences and viewing launch history.
// ABOUTME: Provides start, recent and history.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/workseq/internal/duration"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:     "start <id>",
	Aliases: []string{"go", "launch"},
	Short:   "Start a sequence",
	Long: `Start a sequence: records the launch and prints the exercises to do.

Only the last 3 launches are kept.

EXAMPLES:

  workseq start abc12345`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := findSequence(store, args[0])
		if err != nil {
			return err
		}

		if !store.RecordLaunch(seq.ID, seq.Name) {
			color.Yellow("⚠ Could not record launch")
		} else {
			color.Green("▶ Started %s", seq.Name)
		}
		fmt.Println()
		printSequenceDetail(seq)
		return nil
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently started sequences",
	Long: `Show recently started sequences, one line per sequence, most recent first.

Sequences deleted since they were started are shown with the name they had
when launched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recent := store.GetRecentLaunches()
		if len(recent) == 0 {
			fmt.Println("No recent launches.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range recent {
			when := faint.Sprint(r.Launch.LaunchedAt.Local().Format("2006-01-02 15:04"))
			if !r.Resolved() {
				fmt.Printf("%s %s %s\n", when, padRight(truncate(r.Launch.SequenceName, 30), 30), color.RedString("(deleted)"))
				continue
			}
			fmt.Printf("%s %s %s %s\n",
				when,
				padRight(truncate(r.Sequence.Name, 30), 30),
				faint.Sprint(shortID(r.Sequence.ID)),
				color.CyanString("~%s", duration.Estimate(r.Sequence)))
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show raw launch history",
	Long:  `Show the stored launch history (at most 3 entries, most recent first), including repeats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history := store.GetLaunchHistory()
		if len(history) == 0 {
			fmt.Println("No launches recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range history {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(l.LaunchedAt.Local().Format("2006-01-02 15:04:05")),
				faint.Sprint(shortID(l.SequenceID)),
				l.SequenceName)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(historyCmd)
}
