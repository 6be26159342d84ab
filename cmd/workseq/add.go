// ABOUTME: CLI commands for creating and editing sequences.
// ABOUTME: Builds sequences from --exercise flags or a YAML definition file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/workseq/internal/duration"
	"github.com/harperreed/workseq/internal/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	seqCategory   string
	seqExercises  []string
	seqBreak      int
	seqCycleBreak int
	seqCycles     int
	seqFile       string
	seqName       string
)

var addCmd = &cobra.Command{
	Use:     "add [name]",
	Aliases: []string{"a", "new"},
	Short:   "Create a workout sequence",
	Long: `Create a workout or warm-up sequence.

EXERCISES:

  Each --exercise is NAME:COUNT for repetitions or NAME:SECONDSs for a timed
  exercise. Exercises run in the order given.

FROM A FILE:

  --file reads a YAML definition:

    name: Morning
    type: workout
    breakDuration: 10
    cycleRepetitions: 2
    exercises:
      - name: Squats
        type: repetitions
        repetitions: 15
      - name: Plank
        type: duration
        duration: 45

EXAMPLES:

  workseq add "Morning" --exercise squats:15 --exercise plank:45s --break 10
  workseq add "Loosen up" --category warmup --exercise "arm circles:30s"
  workseq add "Circuit" -e burpees:10 -e lunges:20 --cycles 3 --cycle-break 60
  workseq add --file morning.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def := &models.CreateSequence{}
		if seqFile != "" {
			data, err := os.ReadFile(seqFile)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			if err := yaml.Unmarshal(data, def); err != nil {
				return fmt.Errorf("invalid sequence file: %w", err)
			}
		}
		if len(args) == 1 {
			def.Name = args[0]
		}
		if err := applySequenceFlags(cmd, def); err != nil {
			return err
		}
		if err := def.Validate(); err != nil {
			return err
		}

		seq := store.Create(def)
		if seq == nil {
			return fmt.Errorf("failed to save sequence %q", def.Name)
		}

		color.Green("✓ Added %s %s", seq.Category, seq.Name)
		fmt.Printf("  %s %d exercises ~%s\n",
			color.New(color.Faint).Sprint(shortID(seq.ID)),
			len(seq.Exercises),
			duration.Estimate(seq))
		return nil
	},
}

// applySequenceFlags copies explicitly set flags onto a definition.
func applySequenceFlags(cmd *cobra.Command, def *models.CreateSequence) error {
	flags := cmd.Flags()
	if flags.Changed("category") {
		c, err := models.ParseCategory(seqCategory)
		if err != nil {
			return err
		}
		def.Category = c
	}
	if flags.Changed("exercise") {
		def.Exercises = def.Exercises[:0]
		for _, spec := range seqExercises {
			ex, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			def.Exercises = append(def.Exercises, ex)
		}
	}
	if flags.Changed("break") {
		def.BreakDurationSeconds = intPtr(seqBreak)
	}
	if flags.Changed("cycle-break") {
		def.CycleBreakDurationSeconds = intPtr(seqCycleBreak)
	}
	if flags.Changed("cycles") {
		def.CycleRepetitions = intPtr(seqCycles)
	}
	return nil
}

var updateCmd = &cobra.Command{
	Use:     "update <id>",
	Aliases: []string{"edit"},
	Short:   "Update a workout sequence",
	Long: `Update a sequence. Only the flags you pass are changed.

Passing --exercise replaces the whole exercise list.

EXAMPLES:

  workseq update abc12345 --name "Evening"
  workseq update abc12345 --break 15 --cycles 2
  workseq update abc12345 -e squats:20 -e "wall sit:60s"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := findSequence(store, args[0])
		if err != nil {
			return err
		}

		def := &models.CreateSequence{
			Name:                      seq.Name,
			Category:                  seq.Category,
			BreakDurationSeconds:      seq.BreakDurationSeconds,
			CycleBreakDurationSeconds: seq.CycleBreakDurationSeconds,
			CycleRepetitions:          seq.CycleRepetitions,
		}
		if cmd.Flags().Changed("name") {
			def.Name = seqName
		}
		if err := applySequenceFlags(cmd, def); err != nil {
			return err
		}
		if err := def.Validate(); err != nil {
			return err
		}

		seq.Name = def.Name
		seq.Category = def.Category
		seq.BreakDurationSeconds = def.BreakDurationSeconds
		seq.CycleBreakDurationSeconds = def.CycleBreakDurationSeconds
		seq.CycleRepetitions = def.CycleRepetitions
		if cmd.Flags().Changed("exercise") {
			seq.Exercises = def.Build(seq.UpdatedAt).Exercises
		}

		if !store.Update(seq) {
			return fmt.Errorf("failed to update sequence %s", shortID(seq.ID))
		}

		color.Green("✓ Updated %s", seq.Name)
		fmt.Printf("  %s %d exercises ~%s\n",
			color.New(color.Faint).Sprint(shortID(seq.ID)),
			len(seq.Exercises),
			duration.Estimate(seq))
		return nil
	},
}

func addSequenceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&seqCategory, "category", "c", "", "category: workout (default) or warmup")
	cmd.Flags().StringArrayVarP(&seqExercises, "exercise", "e", nil, "exercise as NAME:COUNT or NAME:SECONDSs (repeatable)")
	cmd.Flags().IntVarP(&seqBreak, "break", "b", 0, "rest between exercises in seconds")
	cmd.Flags().IntVar(&seqCycleBreak, "cycle-break", 0, "rest between cycles in seconds")
	cmd.Flags().IntVar(&seqCycles, "cycles", 1, "how many times to repeat the exercise list")
}

func intPtr(v int) *int { return &v }

func init() {
	addSequenceFlags(addCmd)
	addCmd.Flags().StringVarP(&seqFile, "file", "f", "", "read the sequence definition from a YAML file")

	addSequenceFlags(updateCmd)
	updateCmd.Flags().StringVarP(&seqName, "name", "n", "", "new name")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
}
