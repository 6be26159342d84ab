// ABOUTME: Stored JSON shape of sequences and launches, plus load-time upgrades.
// ABOUTME: Field names match the browser app's localStorage format for import compatibility.
package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/workseq/internal/models"
)

// exerciseRecord is the persisted form of models.Exercise.
type exerciseRecord struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Repetitions *int   `json:"repetitions,omitempty" yaml:"repetitions,omitempty"`
	Duration    *int   `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// sequenceRecord is the persisted form of models.WorkoutSequence.
// Type holds the category; it may be empty in records written before categories existed.
type sequenceRecord struct {
	ID                 string           `json:"id" yaml:"id"`
	Name               string           `json:"name" yaml:"name"`
	Type               string           `json:"type,omitempty" yaml:"type,omitempty"`
	Exercises          []exerciseRecord `json:"exercises" yaml:"exercises"`
	BreakDuration      *int             `json:"breakDuration,omitempty" yaml:"breakDuration,omitempty"`
	CycleBreakDuration *int             `json:"cycleBreakDuration,omitempty" yaml:"cycleBreakDuration,omitempty"`
	CycleRepetitions   *int             `json:"cycleRepetitions,omitempty" yaml:"cycleRepetitions,omitempty"`
	CreatedAt          time.Time        `json:"createdAt" yaml:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt" yaml:"updatedAt"`
}

// launchRecord is the persisted form of models.WorkoutLaunch.
type launchRecord struct {
	SequenceID   string    `json:"sequenceId" yaml:"sequenceId"`
	SequenceName string    `json:"sequenceName" yaml:"sequenceName"`
	LaunchedAt   time.Time `json:"launchedAt" yaml:"launchedAt"`
}

// recordUpgrade brings an older record up to the current shape.
type recordUpgrade func(r *sequenceRecord)

// sequenceUpgrades run in order on every record when the collection is loaded.
var sequenceUpgrades = []recordUpgrade{
	// v1: sequences had no category and were all regular workouts.
	func(r *sequenceRecord) {
		if r.Type == "" {
			r.Type = string(models.CategoryWorkout)
		}
	},
	// v2: hand-edited or imported data may lack exercise ids. The id is derived
	// from the sequence id and position so every load yields the same value.
	func(r *sequenceRecord) {
		for i := range r.Exercises {
			if r.Exercises[i].ID == "" {
				r.Exercises[i].ID = derivedExerciseID(r.ID, i)
			}
		}
	},
	// v3: exercises without a type are counted as repetitions.
	func(r *sequenceRecord) {
		for i := range r.Exercises {
			if r.Exercises[i].Type == "" {
				r.Exercises[i].Type = string(models.KindRepetitions)
			}
		}
	},
}

func derivedExerciseID(sequenceID string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(sequenceID+"/"+strconv.Itoa(index))).String()
}

func upgradeSequence(r *sequenceRecord) {
	for _, up := range sequenceUpgrades {
		up(r)
	}
}

// decodeSequences parses and upgrades a stored collection.
// Any malformed record fails the whole collection.
func decodeSequences(data []byte) ([]*models.WorkoutSequence, error) {
	var records []sequenceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode sequences: %v", ErrSerialization, err)
	}

	sequences := make([]*models.WorkoutSequence, 0, len(records))
	for i := range records {
		upgradeSequence(&records[i])
		seq, err := sequenceFromRecord(&records[i])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrSerialization, i, err)
		}
		sequences = append(sequences, seq)
	}
	return sequences, nil
}

func encodeSequences(sequences []*models.WorkoutSequence) ([]byte, error) {
	records := make([]sequenceRecord, 0, len(sequences))
	for _, s := range sequences {
		records = append(records, sequenceToRecord(s))
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: encode sequences: %v", ErrSerialization, err)
	}
	return data, nil
}

func decodeLaunches(data []byte) ([]models.WorkoutLaunch, error) {
	var records []launchRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode launch history: %v", ErrSerialization, err)
	}

	launches := make([]models.WorkoutLaunch, 0, len(records))
	for _, r := range records {
		launches = append(launches, models.WorkoutLaunch{
			SequenceID:   r.SequenceID,
			SequenceName: r.SequenceName,
			LaunchedAt:   r.LaunchedAt,
		})
	}
	return launches, nil
}

func encodeLaunches(launches []models.WorkoutLaunch) ([]byte, error) {
	records := make([]launchRecord, 0, len(launches))
	for _, l := range launches {
		records = append(records, launchRecord{
			SequenceID:   l.SequenceID,
			SequenceName: l.SequenceName,
			LaunchedAt:   l.LaunchedAt,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: encode launch history: %v", ErrSerialization, err)
	}
	return data, nil
}

// sequenceFromRecord converts an upgraded record to a models.WorkoutSequence.
func sequenceFromRecord(r *sequenceRecord) (*models.WorkoutSequence, error) {
	category, err := models.ParseCategory(r.Type)
	if err != nil {
		return nil, err
	}

	seq := &models.WorkoutSequence{
		ID:                        r.ID,
		Name:                      r.Name,
		Category:                  category,
		Exercises:                 make([]models.Exercise, 0, len(r.Exercises)),
		BreakDurationSeconds:      r.BreakDuration,
		CycleBreakDurationSeconds: r.CycleBreakDuration,
		CycleRepetitions:          r.CycleRepetitions,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}
	for _, e := range r.Exercises {
		kind := models.ExerciseKind(e.Type)
		if !kind.IsValid() {
			return nil, fmt.Errorf("exercise %q: unknown type %q", e.Name, e.Type)
		}
		seq.Exercises = append(seq.Exercises, models.Exercise{
			ID:              e.ID,
			Name:            e.Name,
			Kind:            kind,
			Repetitions:     e.Repetitions,
			DurationSeconds: e.Duration,
		})
	}
	return seq, nil
}

// sequenceToRecord converts a models.WorkoutSequence to its persisted form.
func sequenceToRecord(s *models.WorkoutSequence) sequenceRecord {
	r := sequenceRecord{
		ID:                 s.ID,
		Name:               s.Name,
		Type:               string(s.Category),
		Exercises:          make([]exerciseRecord, 0, len(s.Exercises)),
		BreakDuration:      s.BreakDurationSeconds,
		CycleBreakDuration: s.CycleBreakDurationSeconds,
		CycleRepetitions:   s.CycleRepetitions,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	for _, e := range s.Exercises {
		r.Exercises = append(r.Exercises, exerciseRecord{
			ID:          e.ID,
			Name:        e.Name,
			Type:        string(e.Kind),
			Repetitions: e.Repetitions,
			Duration:    e.DurationSeconds,
		})
	}
	return r
}
