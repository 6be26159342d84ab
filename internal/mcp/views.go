// ABOUTME: JSON views of sequences and launches returned by tools and resources.
// ABOUTME: Adds the formatted duration estimate to every sequence.
package mcp

import (
	"time"

	"github.com/harperreed/workseq/internal/duration"
	"github.com/harperreed/workseq/internal/models"
)

type exerciseView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Repetitions     *int   `json:"repetitions,omitempty"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
}

type sequenceView struct {
	ID                        string         `json:"id"`
	Name                      string         `json:"name"`
	Category                  string         `json:"category"`
	Exercises                 []exerciseView `json:"exercises"`
	BreakDurationSeconds      *int           `json:"break_duration_seconds,omitempty"`
	CycleBreakDurationSeconds *int           `json:"cycle_break_duration_seconds,omitempty"`
	CycleRepetitions          int            `json:"cycle_repetitions"`
	Estimate                  string         `json:"estimate"`
	TotalSeconds              int            `json:"total_seconds"`
	CreatedAt                 string         `json:"created_at"`
	UpdatedAt                 string         `json:"updated_at"`
}

type launchView struct {
	SequenceID   string        `json:"sequence_id"`
	SequenceName string        `json:"sequence_name"`
	LaunchedAt   string        `json:"launched_at"`
	Resolved     bool          `json:"resolved"`
	Sequence     *sequenceView `json:"sequence,omitempty"`
}

func newSequenceView(seq *models.WorkoutSequence) sequenceView {
	v := sequenceView{
		ID:                        seq.ID,
		Name:                      seq.Name,
		Category:                  string(seq.Category),
		Exercises:                 make([]exerciseView, 0, len(seq.Exercises)),
		BreakDurationSeconds:      seq.BreakDurationSeconds,
		CycleBreakDurationSeconds: seq.CycleBreakDurationSeconds,
		CycleRepetitions:          seq.Cycles(),
		Estimate:                  duration.Estimate(seq),
		TotalSeconds:              duration.TotalSeconds(seq),
		CreatedAt:                 seq.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 seq.UpdatedAt.Format(time.RFC3339),
	}
	for _, e := range seq.Exercises {
		v.Exercises = append(v.Exercises, exerciseView{
			ID:              e.ID,
			Name:            e.Name,
			Type:            string(e.Kind),
			Repetitions:     e.Repetitions,
			DurationSeconds: e.DurationSeconds,
		})
	}
	return v
}

func newSequenceViews(sequences []*models.WorkoutSequence) []sequenceView {
	views := make([]sequenceView, 0, len(sequences))
	for _, seq := range sequences {
		views = append(views, newSequenceView(seq))
	}
	return views
}

func newLaunchView(l models.WorkoutLaunch, seq *models.WorkoutSequence) launchView {
	v := launchView{
		SequenceID:   l.SequenceID,
		SequenceName: l.SequenceName,
		LaunchedAt:   l.LaunchedAt.Format(time.RFC3339),
		Resolved:     seq != nil,
	}
	if seq != nil {
		sv := newSequenceView(seq)
		v.Sequence = &sv
	}
	return v
}
