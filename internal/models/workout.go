// ABOUTME: Exercise, WorkoutSequence and WorkoutLaunch models.
// ABOUTME: Sequences are ordered exercise lists with break and cycle timing.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category classifies a sequence as a regular workout or a warm-up.
type Category string

const (
	CategoryWorkout Category = "workout"
	CategoryWarmup  Category = "warmup"
)

// AllCategories returns all valid categories.
var AllCategories = []Category{CategoryWorkout, CategoryWarmup}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q (use workout or warmup)", s)
}

// ExerciseKind says how an exercise is measured.
type ExerciseKind string

const (
	KindRepetitions ExerciseKind = "repetitions"
	KindDuration    ExerciseKind = "duration"
)

// IsValid reports whether k is a known exercise kind.
func (k ExerciseKind) IsValid() bool {
	return k == KindRepetitions || k == KindDuration
}

// Exercise is one step of a sequence.
// Repetitions is meaningful only for KindRepetitions, DurationSeconds only for KindDuration.
type Exercise struct {
	ID              string
	Name            string
	Kind            ExerciseKind
	Repetitions     *int
	DurationSeconds *int
}

// NewRepetitionExercise creates a repetition-counted exercise with a generated ID.
func NewRepetitionExercise(name string, reps int) Exercise {
	return Exercise{
		ID:          uuid.NewString(),
		Name:        name,
		Kind:        KindRepetitions,
		Repetitions: &reps,
	}
}

// NewTimedExercise creates a duration-based exercise with a generated ID.
func NewTimedExercise(name string, seconds int) Exercise {
	return Exercise{
		ID:              uuid.NewString(),
		Name:            name,
		Kind:            KindDuration,
		DurationSeconds: &seconds,
	}
}

// WorkoutSequence is an ordered list of exercises, optionally repeated in cycles.
type WorkoutSequence struct {
	ID                        string
	Name                      string
	Category                  Category
	Exercises                 []Exercise
	BreakDurationSeconds      *int
	CycleBreakDurationSeconds *int
	CycleRepetitions          *int
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// NewSequence creates an empty sequence with generated UUID and current timestamps.
func NewSequence(name string, category Category) *WorkoutSequence {
	now := time.Now()
	return &WorkoutSequence{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		Exercises: []Exercise{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithExercises appends exercises in execution order.
func (s *WorkoutSequence) WithExercises(ex ...Exercise) *WorkoutSequence {
	s.Exercises = append(s.Exercises, ex...)
	return s
}

// WithBreak sets the rest between consecutive exercises of a cycle.
func (s *WorkoutSequence) WithBreak(seconds int) *WorkoutSequence {
	s.BreakDurationSeconds = &seconds
	return s
}

// WithCycleBreak sets the rest between cycle repetitions.
func (s *WorkoutSequence) WithCycleBreak(seconds int) *WorkoutSequence {
	s.CycleBreakDurationSeconds = &seconds
	return s
}

// WithCycles sets how many times the exercise list is repeated.
func (s *WorkoutSequence) WithCycles(n int) *WorkoutSequence {
	s.CycleRepetitions = &n
	return s
}

// Cycles returns the cycle count, defaulting to 1.
func (s *WorkoutSequence) Cycles() int {
	if s.CycleRepetitions == nil {
		return 1
	}
	return *s.CycleRepetitions
}

// Clone returns a deep copy so callers can mutate it without touching the original.
func (s *WorkoutSequence) Clone() *WorkoutSequence {
	c := *s
	c.Exercises = make([]Exercise, len(s.Exercises))
	for i, e := range s.Exercises {
		c.Exercises[i] = e
		c.Exercises[i].Repetitions = cloneInt(e.Repetitions)
		c.Exercises[i].DurationSeconds = cloneInt(e.DurationSeconds)
	}
	c.BreakDurationSeconds = cloneInt(s.BreakDurationSeconds)
	c.CycleBreakDurationSeconds = cloneInt(s.CycleBreakDurationSeconds)
	c.CycleRepetitions = cloneInt(s.CycleRepetitions)
	return &c
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CreateExercise is an exercise definition without an ID.
type CreateExercise struct {
	Name            string       `json:"name" yaml:"name"`
	Kind            ExerciseKind `json:"type" yaml:"type"`
	Repetitions     *int         `json:"repetitions,omitempty" yaml:"repetitions,omitempty"`
	DurationSeconds *int         `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// CreateSequence is a sequence definition without generated fields.
// Category defaults to workout when empty.
type CreateSequence struct {
	Name                      string           `json:"name" yaml:"name"`
	Category                  Category         `json:"type,omitempty" yaml:"type,omitempty"`
	Exercises                 []CreateExercise `json:"exercises" yaml:"exercises"`
	BreakDurationSeconds      *int             `json:"breakDuration,omitempty" yaml:"breakDuration,omitempty"`
	CycleBreakDurationSeconds *int             `json:"cycleBreakDuration,omitempty" yaml:"cycleBreakDuration,omitempty"`
	CycleRepetitions          *int             `json:"cycleRepetitions,omitempty" yaml:"cycleRepetitions,omitempty"`
}

// Validate checks the definition before it becomes a sequence.
func (c *CreateSequence) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("sequence name is required")
	}
	if c.Category != "" {
		if _, err := ParseCategory(string(c.Category)); err != nil {
			return err
		}
	}
	for i, e := range c.Exercises {
		if e.Name == "" {
			return fmt.Errorf("exercise %d: name is required", i+1)
		}
		if !e.Kind.IsValid() {
			return fmt.Errorf("exercise %d: unknown type %q", i+1, e.Kind)
		}
		if e.Repetitions != nil && *e.Repetitions < 0 {
			return fmt.Errorf("exercise %d: repetitions must not be negative", i+1)
		}
		if e.DurationSeconds != nil && *e.DurationSeconds < 0 {
			return fmt.Errorf("exercise %d: duration must not be negative", i+1)
		}
	}
	if c.CycleRepetitions != nil && *c.CycleRepetitions < 1 {
		return fmt.Errorf("cycle repetitions must be at least 1")
	}
	if c.BreakDurationSeconds != nil && *c.BreakDurationSeconds < 0 {
		return fmt.Errorf("break duration must not be negative")
	}
	if c.CycleBreakDurationSeconds != nil && *c.CycleBreakDurationSeconds < 0 {
		return fmt.Errorf("cycle break duration must not be negative")
	}
	return nil
}

// Build turns the definition into a sequence with generated IDs, stamped at now.
func (c *CreateSequence) Build(now time.Time) *WorkoutSequence {
	category := c.Category
	if category == "" {
		category = CategoryWorkout
	}
	seq := &WorkoutSequence{
		ID:                        uuid.NewString(),
		Name:                      c.Name,
		Category:                  category,
		Exercises:                 make([]Exercise, 0, len(c.Exercises)),
		BreakDurationSeconds:      cloneInt(c.BreakDurationSeconds),
		CycleBreakDurationSeconds: cloneInt(c.CycleBreakDurationSeconds),
		CycleRepetitions:          cloneInt(c.CycleRepetitions),
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	for _, e := range c.Exercises {
		seq.Exercises = append(seq.Exercises, Exercise{
			ID:              uuid.NewString(),
			Name:            e.Name,
			Kind:            e.Kind,
			Repetitions:     cloneInt(e.Repetitions),
			DurationSeconds: cloneInt(e.DurationSeconds),
		})
	}
	return seq
}

// WorkoutLaunch records that a sequence was started.
// SequenceName is captured at launch time and is not kept in sync with renames.
type WorkoutLaunch struct {
	SequenceID   string
	SequenceName string
	LaunchedAt   time.Time
}

// RecentLaunch pairs a launch with the sequence it refers to.
// Sequence is nil when the sequence has since been deleted.
type RecentLaunch struct {
	Launch   WorkoutLaunch
	Sequence *WorkoutSequence
}

// Resolved reports whether the launched sequence still exists.
func (r RecentLaunch) Resolved() bool {
	return r.Sequence != nil
}
