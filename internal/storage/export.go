// ABOUTME: Export and import of sequences and launch history.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; imports JSON, YAML or raw browser dumps.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/workseq/internal/duration"
	"github.com/harperreed/workseq/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format.
type ExportData struct {
	Version       string           `json:"version" yaml:"version"`
	ExportedAt    time.Time        `json:"exported_at" yaml:"exported_at"`
	Tool          string           `json:"tool" yaml:"tool"`
	Sequences     []sequenceRecord `json:"sequences" yaml:"sequences"`
	LaunchHistory []launchRecord   `json:"launch_history" yaml:"launch_history"`
}

// ImportSummary holds counts of imported entities.
type ImportSummary struct {
	Sequences int
	Skipped   int
	Launches  int
}

// GetAllData retrieves all data for export.
func (s *Store) GetAllData() (*ExportData, error) {
	sequences, err := s.loadSequences()
	if err != nil {
		return nil, fmt.Errorf("load sequences: %w", err)
	}
	launches, err := s.loadLaunches()
	if err != nil {
		return nil, fmt.Errorf("load launch history: %w", err)
	}

	data := &ExportData{
		Version:       "1.0",
		ExportedAt:    s.clock.Now(),
		Tool:          "workseq",
		Sequences:     make([]sequenceRecord, 0, len(sequences)),
		LaunchHistory: make([]launchRecord, 0, len(launches)),
	}
	for _, seq := range sequences {
		data.Sequences = append(data.Sequences, sequenceToRecord(seq))
	}
	for _, l := range launches {
		data.LaunchHistory = append(data.LaunchHistory, launchRecord{
			SequenceID:   l.SequenceID,
			SequenceName: l.SequenceName,
			LaunchedAt:   l.LaunchedAt,
		})
	}
	return data, nil
}

// ImportData appends imported sequences, skipping IDs that already exist,
// and merges launch history keeping the most recent MaxLaunchHistory entries.
func (s *Store) ImportData(data *ExportData) (*ImportSummary, error) {
	existing, err := s.loadSequences()
	if err != nil {
		return nil, fmt.Errorf("load sequences: %w", err)
	}

	summary := &ImportSummary{}
	known := make(map[string]bool, len(existing))
	for _, seq := range existing {
		known[seq.ID] = true
	}

	for i := range data.Sequences {
		r := data.Sequences[i]
		upgradeSequence(&r)
		seq, err := sequenceFromRecord(&r)
		if err != nil {
			return nil, fmt.Errorf("import sequence %q: %w", r.Name, err)
		}
		if seq.ID == "" || known[seq.ID] {
			summary.Skipped++
			continue
		}
		known[seq.ID] = true
		existing = append(existing, seq)
		summary.Sequences++
	}

	if summary.Sequences > 0 {
		if err := s.storeSequences(existing); err != nil {
			return nil, fmt.Errorf("store sequences: %w", err)
		}
	}

	if len(data.LaunchHistory) > 0 {
		history, err := s.loadLaunches()
		if err != nil {
			return nil, fmt.Errorf("load launch history: %w", err)
		}
		for _, r := range data.LaunchHistory {
			if containsLaunch(history, r.SequenceID, r.LaunchedAt) {
				continue
			}
			history = append(history, models.WorkoutLaunch{
				SequenceID:   r.SequenceID,
				SequenceName: r.SequenceName,
				LaunchedAt:   r.LaunchedAt,
			})
			summary.Launches++
		}
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].LaunchedAt.After(history[j].LaunchedAt)
		})
		if len(history) > MaxLaunchHistory {
			history = history[:MaxLaunchHistory]
		}
		if err := s.storeLaunches(history); err != nil {
			return nil, fmt.Errorf("store launch history: %w", err)
		}
	}

	return summary, nil
}

func containsLaunch(history []models.WorkoutLaunch, sequenceID string, at time.Time) bool {
	for _, l := range history {
		if l.SequenceID == sequenceID && l.LaunchedAt.Equal(at) {
			return true
		}
	}
	return false
}

// ExportJSON exports all data as JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := s.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports an export file, or a bare array of sequences as written
// by the browser app under the "workout-sequences" key.
func (s *Store) ImportJSON(raw []byte) (*ImportSummary, error) {
	var data ExportData
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &data.Sequences); err != nil {
			return nil, fmt.Errorf("unmarshal JSON: %w", err)
		}
	} else if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return s.ImportData(&data)
}

// ImportYAML imports a YAML export file.
func (s *Store) ImportYAML(raw []byte) (*ImportSummary, error) {
	var data ExportData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	return s.ImportData(&data)
}

// ExportMarkdown exports sequences as Markdown, optionally limited to one category.
func (s *Store) ExportMarkdown(category *models.Category) (string, error) {
	sequences, err := s.loadSequences()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := s.clock.Now()

	sb.WriteString(fmt.Sprintf("# Workout Sequences - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, seq := range sequences {
		if category != nil && seq.Category != *category {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s\n\n", seq.Name))
		sb.WriteString(fmt.Sprintf("- Category: %s\n", seq.Category))
		sb.WriteString(fmt.Sprintf("- Estimated duration: %s\n", duration.Estimate(seq)))
		sb.WriteString(fmt.Sprintf("- Cycles: %d\n", seq.Cycles()))
		if seq.BreakDurationSeconds != nil {
			sb.WriteString(fmt.Sprintf("- Break: %ds\n", *seq.BreakDurationSeconds))
		}
		if seq.CycleBreakDurationSeconds != nil {
			sb.WriteString(fmt.Sprintf("- Cycle break: %ds\n", *seq.CycleBreakDurationSeconds))
		}
		sb.WriteString("\n")

		if len(seq.Exercises) == 0 {
			sb.WriteString("_No exercises._\n\n")
			continue
		}
		sb.WriteString("| # | Exercise | Amount |\n")
		sb.WriteString("|---|----------|--------|\n")
		for i, ex := range seq.Exercises {
			sb.WriteString(fmt.Sprintf("| %d | %s | %s |\n", i+1, ex.Name, ExerciseAmount(ex)))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ExerciseAmount renders "12 reps" or "30s" for an exercise.
func ExerciseAmount(ex models.Exercise) string {
	if ex.Kind == models.KindDuration {
		if ex.DurationSeconds == nil {
			return "0s"
		}
		return duration.Format(*ex.DurationSeconds)
	}
	if ex.Repetitions == nil {
		return "0 reps"
	}
	return fmt.Sprintf("%d reps", *ex.Repetitions)
}
