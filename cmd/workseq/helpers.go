// ABOUTME: Shared helpers for CLI commands.
// ABOUTME: Parses exercise flags, resolves ID prefixes and formats output.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/workseq/internal/duration"
	"github.com/harperreed/workseq/internal/models"
	"github.com/harperreed/workseq/internal/storage"
)

// parseExerciseSpec parses NAME:COUNT (repetitions) or NAME:SECONDSs (timed).
func parseExerciseSpec(spec string) (models.CreateExercise, error) {
	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return models.CreateExercise{}, fmt.Errorf("invalid exercise %q (use NAME:COUNT or NAME:SECONDSs)", spec)
	}
	name := strings.TrimSpace(spec[:idx])
	amount := strings.TrimSpace(spec[idx+1:])
	if name == "" {
		return models.CreateExercise{}, fmt.Errorf("invalid exercise %q: name is required", spec)
	}

	kind := models.KindRepetitions
	if strings.HasSuffix(amount, "s") {
		kind = models.KindDuration
		amount = strings.TrimSuffix(amount, "s")
	}

	n, err := strconv.Atoi(amount)
	if err != nil || n < 0 {
		return models.CreateExercise{}, fmt.Errorf("invalid amount in exercise %q", spec)
	}

	ex := models.CreateExercise{Name: name, Kind: kind}
	if kind == models.KindDuration {
		ex.DurationSeconds = &n
	} else {
		ex.Repetitions = &n
	}
	return ex, nil
}

// findSequence looks a sequence up by full ID or unique ID prefix.
func findSequence(s *storage.Store, idOrPrefix string) (*models.WorkoutSequence, error) {
	if seq := s.GetByID(idOrPrefix); seq != nil {
		return seq, nil
	}

	var match *models.WorkoutSequence
	for _, seq := range s.List(nil) {
		if !strings.HasPrefix(seq.ID, idOrPrefix) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("ambiguous sequence prefix: %s", idOrPrefix)
		}
		match = seq
	}
	if match == nil {
		return nil, fmt.Errorf("sequence not found: %s", idOrPrefix)
	}
	return match, nil
}

func parseCategoryFlag(value string) (*models.Category, error) {
	if value == "" {
		return nil, nil
	}
	c, err := models.ParseCategory(value)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func printSequenceLine(seq *models.WorkoutSequence) {
	faint := color.New(color.Faint)
	fmt.Printf("%s %s %s %s %s\n",
		faint.Sprint(shortID(seq.ID)),
		padRight(string(seq.Category), 8),
		padRight(truncate(seq.Name, 30), 30),
		faint.Sprintf("%2d exercises", len(seq.Exercises)),
		color.CyanString("~%s", duration.Estimate(seq)))
}

func printSequenceDetail(seq *models.WorkoutSequence) {
	faint := color.New(color.Faint)
	color.New(color.Bold).Println(seq.Name)
	fmt.Printf("  ID:        %s\n", seq.ID)
	fmt.Printf("  Category:  %s\n", seq.Category)
	fmt.Printf("  Estimate:  %s\n", duration.Estimate(seq))
	if seq.BreakDurationSeconds != nil {
		fmt.Printf("  Break:     %s\n", duration.Format(*seq.BreakDurationSeconds))
	}
	if seq.Cycles() > 1 {
		fmt.Printf("  Cycles:    %d\n", seq.Cycles())
		if seq.CycleBreakDurationSeconds != nil {
			fmt.Printf("  Between:   %s\n", duration.Format(*seq.CycleBreakDurationSeconds))
		}
	}
	fmt.Printf("  Updated:   %s\n", faint.Sprint(seq.UpdatedAt.Local().Format("2006-01-02 15:04")))

	if len(seq.Exercises) == 0 {
		fmt.Println("\n  No exercises.")
		return
	}
	fmt.Println()
	for i, ex := range seq.Exercises {
		fmt.Printf("  %2d. %s %s\n", i+1, padRight(ex.Name, 24), storage.ExerciseAmount(ex))
	}
}

// truncate shortens s to maxLen characters, counting runes.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
