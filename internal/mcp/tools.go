// ABOUTME: MCP tool implementations for workout sequences.
// ABOUTME: Provides CRUD, duration estimates, and launch history operations.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/workseq/internal/duration"
	"github.com/harperreed/workseq/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sequences",
		Description: "List workout sequences in stored order, optionally filtered by category (workout or warmup)",
	}, s.handleListSequences)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_sequence",
		Description: "Get a workout sequence by ID with its estimated duration",
	}, s.handleGetSequence)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_sequence",
		Description: "Create a workout sequence from a name, category, exercises and timing",
	}, s.handleCreateSequence)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_sequence",
		Description: "Delete a workout sequence by ID",
	}, s.handleDeleteSequence)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_duration",
		Description: "Estimate how long a stored sequence takes (repetitions count 2 seconds each)",
	}, s.handleEstimateDuration)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_launch",
		Description: "Record that a workout sequence was started",
	}, s.handleRecordLaunch)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recent_launches",
		Description: "List recently started sequences, one entry per sequence, most recent first",
	}, s.handleRecentLaunches)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "launch_history",
		Description: "Show the raw launch history (last 3 launches, most recent first)",
	}, s.handleLaunchHistory)
}

// Tool input/output types

type listSequencesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter by category: workout or warmup"`
}

type sequencesOutput struct {
	Sequences []sequenceView `json:"sequences"`
	Message   string         `json:"message,omitempty"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"Sequence ID"`
}

type exerciseInput struct {
	Name            string `json:"name" jsonschema:"Exercise name"`
	Type            string `json:"type" jsonschema:"repetitions or duration"`
	Repetitions     int    `json:"repetitions,omitempty" jsonschema:"Repetition count for repetitions exercises"`
	DurationSeconds int    `json:"duration_seconds,omitempty" jsonschema:"Duration in seconds for duration exercises"`
}

type createSequenceInput struct {
	Name                      string          `json:"name" jsonschema:"Sequence name"`
	Category                  string          `json:"category,omitempty" jsonschema:"workout (default) or warmup"`
	Exercises                 []exerciseInput `json:"exercises" jsonschema:"Exercises in execution order"`
	BreakDurationSeconds      int             `json:"break_duration_seconds,omitempty" jsonschema:"Rest between exercises in seconds"`
	CycleBreakDurationSeconds int             `json:"cycle_break_duration_seconds,omitempty" jsonschema:"Rest between cycles in seconds"`
	CycleRepetitions          int             `json:"cycle_repetitions,omitempty" jsonschema:"How many times to repeat the exercise list (default 1)"`
}

type sequenceOutput struct {
	Sequence sequenceView `json:"sequence"`
	Message  string       `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type estimateOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Estimate     string `json:"estimate"`
	TotalSeconds int    `json:"total_seconds"`
}

type launchesOutput struct {
	Launches []launchView `json:"launches"`
}

// Tool handlers

func (s *Server) handleListSequences(ctx context.Context, req *mcp.CallToolRequest, input listSequencesInput) (*mcp.CallToolResult, sequencesOutput, error) {
	var category *models.Category
	if input.Category != "" {
		c, err := models.ParseCategory(input.Category)
		if err != nil {
			return nil, sequencesOutput{}, err
		}
		category = &c
	}

	sequences := s.store.List(category)
	out := sequencesOutput{Sequences: newSequenceViews(sequences)}
	if len(sequences) == 0 {
		out.Message = "No sequences found."
	}
	return nil, out, nil
}

func (s *Server) handleGetSequence(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, sequenceOutput, error) {
	seq := s.store.GetByID(input.ID)
	if seq == nil {
		return nil, sequenceOutput{}, fmt.Errorf("sequence not found: %s", input.ID)
	}
	return nil, sequenceOutput{
		Sequence: newSequenceView(seq),
		Message:  fmt.Sprintf("%s (%s, ~%s)", seq.Name, seq.Category, duration.Estimate(seq)),
	}, nil
}

func (s *Server) handleCreateSequence(ctx context.Context, req *mcp.CallToolRequest, input createSequenceInput) (*mcp.CallToolResult, sequenceOutput, error) {
	def := &models.CreateSequence{
		Name:      input.Name,
		Category:  models.Category(input.Category),
		Exercises: make([]models.CreateExercise, 0, len(input.Exercises)),
	}
	if input.BreakDurationSeconds > 0 {
		def.BreakDurationSeconds = intPtr(input.BreakDurationSeconds)
	}
	if input.CycleBreakDurationSeconds > 0 {
		def.CycleBreakDurationSeconds = intPtr(input.CycleBreakDurationSeconds)
	}
	if input.CycleRepetitions > 0 {
		def.CycleRepetitions = intPtr(input.CycleRepetitions)
	}
	for _, e := range input.Exercises {
		ce := models.CreateExercise{Name: e.Name, Kind: models.ExerciseKind(e.Type)}
		if ce.Kind == "" {
			ce.Kind = models.KindRepetitions
		}
		if ce.Kind == models.KindDuration {
			ce.DurationSeconds = intPtr(e.DurationSeconds)
		} else {
			ce.Repetitions = intPtr(e.Repetitions)
		}
		def.Exercises = append(def.Exercises, ce)
	}

	if err := def.Validate(); err != nil {
		return nil, sequenceOutput{}, err
	}
	seq := s.store.Create(def)
	if seq == nil {
		return nil, sequenceOutput{}, fmt.Errorf("failed to save sequence %q", input.Name)
	}

	return nil, sequenceOutput{
		Sequence: newSequenceView(seq),
		Message:  fmt.Sprintf("Created %s (ID: %s, ~%s)", seq.Name, seq.ID, duration.Estimate(seq)),
	}, nil
}

func (s *Server) handleDeleteSequence(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !s.store.Delete(input.ID) {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete sequence: %s", input.ID)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted sequence: %s", input.ID),
	}, nil
}

func (s *Server) handleEstimateDuration(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, estimateOutput, error) {
	seq := s.store.GetByID(input.ID)
	if seq == nil {
		return nil, estimateOutput{}, fmt.Errorf("sequence not found: %s", input.ID)
	}
	return nil, estimateOutput{
		ID:           seq.ID,
		Name:         seq.Name,
		Estimate:     duration.Estimate(seq),
		TotalSeconds: duration.TotalSeconds(seq),
	}, nil
}

func (s *Server) handleRecordLaunch(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	seq := s.store.GetByID(input.ID)
	if seq == nil {
		return nil, simpleOutput{}, fmt.Errorf("sequence not found: %s", input.ID)
	}
	if !s.store.RecordLaunch(seq.ID, seq.Name) {
		return nil, simpleOutput{}, fmt.Errorf("failed to record launch of %s", seq.Name)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Started %s", seq.Name),
	}, nil
}

func (s *Server) handleRecentLaunches(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, launchesOutput, error) {
	recent := s.store.GetRecentLaunches()
	out := launchesOutput{Launches: make([]launchView, 0, len(recent))}
	for _, r := range recent {
		out.Launches = append(out.Launches, newLaunchView(r.Launch, r.Sequence))
	}
	return nil, out, nil
}

func (s *Server) handleLaunchHistory(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, launchesOutput, error) {
	history := s.store.GetLaunchHistory()
	out := launchesOutput{Launches: make([]launchView, 0, len(history))}
	for _, l := range history {
		out.Launches = append(out.Launches, newLaunchView(l, nil))
	}
	return nil, out, nil
}

func intPtr(v int) *int { return &v }
