// ABOUTME: Elapsed-time estimation for workout sequences.
// ABOUTME: Sums exercises, intra-cycle breaks and cycle breaks into a "Xmin Ys" string.
package duration

import (
	"fmt"

	"github.com/harperreed/workseq/internal/models"
)

// DefaultSecondsPerRepetition is the assumed time for one repetition.
// Repetition exercises are not timed, so this is an approximation.
const DefaultSecondsPerRepetition = 2

// Estimator computes sequence durations.
type Estimator struct {
	SecondsPerRepetition int
}

// Default is the estimator used by the package-level helpers.
var Default = Estimator{SecondsPerRepetition: DefaultSecondsPerRepetition}

// Estimate returns the formatted duration of seq using Default.
func Estimate(seq *models.WorkoutSequence) string {
	return Default.Estimate(seq)
}

// TotalSeconds returns the duration of seq in seconds using Default.
func TotalSeconds(seq *models.WorkoutSequence) int {
	return Default.TotalSeconds(seq)
}

// Estimate returns the formatted duration of seq.
func (e Estimator) Estimate(seq *models.WorkoutSequence) string {
	return Format(e.TotalSeconds(seq))
}

// CycleSeconds returns the duration of a single pass through the exercise list,
// including the breaks between exercises but not after the last one.
func (e Estimator) CycleSeconds(seq *models.WorkoutSequence) int {
	if seq == nil {
		return 0
	}

	total := 0
	for _, ex := range seq.Exercises {
		if ex.Kind == models.KindDuration {
			total += valueOr(ex.DurationSeconds, 0)
		} else {
			total += valueOr(ex.Repetitions, 0) * e.SecondsPerRepetition
		}
	}

	if n := len(seq.Exercises); n > 1 {
		total += (n - 1) * valueOr(seq.BreakDurationSeconds, 0)
	}
	return total
}

// TotalSeconds returns the duration of all cycles plus the breaks between them.
func (e Estimator) TotalSeconds(seq *models.WorkoutSequence) int {
	if seq == nil {
		return 0
	}

	cycles := valueOr(seq.CycleRepetitions, 1)
	if cycles < 1 {
		cycles = 1
	}
	cycleBreak := valueOr(seq.CycleBreakDurationSeconds, 0)

	return cycles*e.CycleSeconds(seq) + (cycles-1)*cycleBreak
}

// Format renders seconds as "45s", "2min" or "2min 5s".
func Format(total int) string {
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	minutes := total / 60
	seconds := total % 60
	if seconds == 0 {
		return fmt.Sprintf("%dmin", minutes)
	}
	return fmt.Sprintf("%dmin %ds", minutes, seconds)
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
