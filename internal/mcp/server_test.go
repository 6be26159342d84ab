// ABOUTME: Tests for MCP tool and resource handlers.
// ABOUTME: Calls handlers directly against a memory-backed store.
package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/harperreed/workseq/internal/kv"
	"github.com/harperreed/workseq/internal/models"
	"github.com/harperreed/workseq/internal/storage"
	"github.com/jonboulle/clockwork"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) (*Server, *storage.Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	store := storage.New(kv.NewMemory(), storage.WithClock(clock))
	server, err := NewServer(store)
	require.NoError(t, err)
	return server, store, clock
}

func seedSequence(t *testing.T, store *storage.Store, name string, category models.Category) *models.WorkoutSequence {
	t.Helper()
	seq := models.NewSequence(name, category).
		WithExercises(models.NewRepetitionExercise("Squats", 10), models.NewTimedExercise("Plank", 30)).
		WithBreak(5)
	require.True(t, store.Save(seq))
	return seq
}

func TestNewServer(t *testing.T) {
	server, _, _ := setupTestServer(t)
	assert.NotNil(t, server.mcpServer)
	assert.NotNil(t, server.store)
}

func TestHandleListSequences(t *testing.T) {
	server, store, _ := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleListSequences(ctx, nil, listSequencesInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Sequences)
	assert.Equal(t, "No sequences found.", out.Message)

	seedSequence(t, store, "Morning", models.CategoryWorkout)
	seedSequence(t, store, "Loosen", models.CategoryWarmup)

	_, out, err = server.handleListSequences(ctx, nil, listSequencesInput{})
	require.NoError(t, err)
	require.Len(t, out.Sequences, 2)
	assert.Equal(t, "Morning", out.Sequences[0].Name)
	assert.Equal(t, "55s", out.Sequences[0].Estimate)

	_, out, err = server.handleListSequences(ctx, nil, listSequencesInput{Category: "warmup"})
	require.NoError(t, err)
	require.Len(t, out.Sequences, 1)
	assert.Equal(t, "Loosen", out.Sequences[0].Name)

	_, _, err = server.handleListSequences(ctx, nil, listSequencesInput{Category: "cooldown"})
	assert.Error(t, err)
}

func TestHandleGetSequence(t *testing.T) {
	server, store, _ := setupTestServer(t)
	ctx := context.Background()
	seq := seedSequence(t, store, "Morning", models.CategoryWorkout)

	_, out, err := server.handleGetSequence(ctx, nil, idInput{ID: seq.ID})
	require.NoError(t, err)
	assert.Equal(t, seq.ID, out.Sequence.ID)
	require.Len(t, out.Sequence.Exercises, 2)
	assert.Equal(t, "repetitions", out.Sequence.Exercises[0].Type)
	assert.Equal(t, "duration", out.Sequence.Exercises[1].Type)
	assert.Equal(t, 1, out.Sequence.CycleRepetitions)

	_, _, err = server.handleGetSequence(ctx, nil, idInput{ID: "missing"})
	assert.Error(t, err)
}

func TestHandleCreateSequence(t *testing.T) {
	server, store, _ := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleCreateSequence(ctx, nil, createSequenceInput{
		Name:     "Circuit",
		Category: "warmup",
		Exercises: []exerciseInput{
			{Name: "Jumping Jacks", Repetitions: 20},
			{Name: "Plank", Type: "duration", DurationSeconds: 30},
		},
		BreakDurationSeconds: 10,
		CycleRepetitions:     2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Sequence.ID)
	assert.Equal(t, "warmup", out.Sequence.Category)
	assert.Equal(t, 2, out.Sequence.CycleRepetitions)
	assert.Contains(t, out.Message, "Created Circuit")

	stored := store.GetByID(out.Sequence.ID)
	require.NotNil(t, stored)
	assert.Equal(t, models.KindRepetitions, stored.Exercises[0].Kind)
	assert.Equal(t, 30, *stored.Exercises[1].DurationSeconds)
	assert.Nil(t, stored.CycleBreakDurationSeconds)
}

func TestHandleCreateSequenceInvalid(t *testing.T) {
	server, store, _ := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleCreateSequence(ctx, nil, createSequenceInput{})
	assert.Error(t, err)

	_, _, err = server.handleCreateSequence(ctx, nil, createSequenceInput{
		Name:      "Bad",
		Exercises: []exerciseInput{{Name: "Hop", Type: "sprint"}},
	})
	assert.Error(t, err)
	assert.Empty(t, store.List(nil))
}

func TestHandleDeleteSequence(t *testing.T) {
	server, store, _ := setupTestServer(t)
	ctx := context.Background()
	seq := seedSequence(t, store, "Morning", models.CategoryWorkout)

	_, out, err := server.handleDeleteSequence(ctx, nil, idInput{ID: seq.ID})
	require.NoError(t, err)
	assert.Contains(t, out.Message, seq.ID)
	assert.Nil(t, store.GetByID(seq.ID))
}

func TestHandleEstimateDuration(t *testing.T) {
	server, store, _ := setupTestServer(t)
	ctx := context.Background()
	seq := seedSequence(t, store, "Morning", models.CategoryWorkout)

	_, out, err := server.handleEstimateDuration(ctx, nil, idInput{ID: seq.ID})
	require.NoError(t, err)
	// 10 reps * 2s + 5s break + 30s plank
	assert.Equal(t, 55, out.TotalSeconds)
	assert.Equal(t, "55s", out.Estimate)

	_, _, err = server.handleEstimateDuration(ctx, nil, idInput{ID: "missing"})
	assert.Error(t, err)
}

func TestHandleLaunches(t *testing.T) {
	server, store, clock := setupTestServer(t)
	ctx := context.Background()
	a := seedSequence(t, store, "A", models.CategoryWorkout)
	b := seedSequence(t, store, "B", models.CategoryWorkout)

	for _, id := range []string{a.ID, b.ID, a.ID} {
		_, _, err := server.handleRecordLaunch(ctx, nil, idInput{ID: id})
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}

	_, history, err := server.handleLaunchHistory(ctx, nil, struct{}{})
	require.NoError(t, err)
	require.Len(t, history.Launches, 3)
	assert.Equal(t, a.ID, history.Launches[0].SequenceID)

	_, recent, err := server.handleRecentLaunches(ctx, nil, struct{}{})
	require.NoError(t, err)
	require.Len(t, recent.Launches, 2)
	assert.Equal(t, a.ID, recent.Launches[0].SequenceID)
	assert.Equal(t, b.ID, recent.Launches[1].SequenceID)
	assert.True(t, recent.Launches[0].Resolved)
	require.NotNil(t, recent.Launches[0].Sequence)

	_, _, err = server.handleRecordLaunch(ctx, nil, idInput{ID: "missing"})
	assert.Error(t, err)
}

func TestHandleSequencesResource(t *testing.T) {
	server, store, _ := setupTestServer(t)
	ctx := context.Background()
	seedSequence(t, store, "Morning", models.CategoryWorkout)
	seedSequence(t, store, "Loosen", models.CategoryWarmup)

	result, err := server.handleSequencesResource(ctx, &mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "workseq://sequences", result.Contents[0].URI)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var body struct {
		Workouts []sequenceView `json:"workouts"`
		Warmups  []sequenceView `json:"warmups"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &body))
	assert.Len(t, body.Workouts, 1)
	assert.Len(t, body.Warmups, 1)
}

func TestHandleRecentResource(t *testing.T) {
	server, store, _ := setupTestServer(t)
	ctx := context.Background()
	seq := seedSequence(t, store, "Morning", models.CategoryWorkout)
	require.True(t, store.RecordLaunch(seq.ID, seq.Name))
	require.True(t, store.Delete(seq.ID))

	result, err := server.handleRecentResource(ctx, &mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "workseq://recent", result.Contents[0].URI)
	assert.NotEmpty(t, result.Contents[0].Text)

	var body struct {
		Launches []launchView `json:"launches"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &body))
	require.Len(t, body.Launches, 1)
	assert.False(t, body.Launches[0].Resolved)
	assert.Equal(t, "Morning", body.Launches[0].SequenceName)
}
