// ABOUTME: Tests for the stored record shape and load-time upgrades.
// ABOUTME: Verifies browser-format compatibility and missing-category handling.
package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/harperreed/workseq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const browserDump = `[
  {
    "id": "1712000000000",
    "name": "Legacy circuit",
    "exercises": [
      {"id": "a", "name": "Push-ups", "type": "repetitions", "repetitions": 15},
      {"name": "Plank", "type": "duration", "duration": 45}
    ],
    "breakDuration": 10,
    "cycleRepetitions": 2,
    "createdAt": "2024-04-01T18:30:00.000Z",
    "updatedAt": "2024-04-02T07:15:00.000Z"
  },
  {
    "id": "1712000000001",
    "name": "Warm",
    "type": "warmup",
    "exercises": [],
    "createdAt": "2024-04-03T08:00:00.000Z",
    "updatedAt": "2024-04-03T08:00:00.000Z"
  }
]`

func TestDecodeBrowserFormat(t *testing.T) {
	sequences, err := decodeSequences([]byte(browserDump))
	require.NoError(t, err)
	require.Len(t, sequences, 2)

	legacy := sequences[0]
	assert.Equal(t, "1712000000000", legacy.ID)
	assert.Equal(t, models.CategoryWorkout, legacy.Category, "missing type defaults to workout")
	require.Len(t, legacy.Exercises, 2)
	assert.Equal(t, models.KindRepetitions, legacy.Exercises[0].Kind)
	assert.Equal(t, 15, *legacy.Exercises[0].Repetitions)
	assert.Equal(t, 45, *legacy.Exercises[1].DurationSeconds)
	assert.NotEmpty(t, legacy.Exercises[1].ID, "missing exercise id is filled")
	assert.Equal(t, 10, *legacy.BreakDurationSeconds)
	assert.Nil(t, legacy.CycleBreakDurationSeconds)
	assert.Equal(t, 2, legacy.Cycles())
	assert.True(t, legacy.CreatedAt.Equal(time.Date(2024, 4, 1, 18, 30, 0, 0, time.UTC)))
	assert.True(t, legacy.UpdatedAt.Equal(time.Date(2024, 4, 2, 7, 15, 0, 0, time.UTC)))

	assert.Equal(t, models.CategoryWarmup, sequences[1].Category)
	assert.Empty(t, sequences[1].Exercises)
}

func TestEncodeUsesBrowserFieldNames(t *testing.T) {
	seq := models.NewSequence("Circuit", models.CategoryWarmup).
		WithExercises(models.NewTimedExercise("Plank", 30)).
		WithBreak(5).
		WithCycleBreak(20).
		WithCycles(2)

	data, err := encodeSequences([]*models.WorkoutSequence{seq})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "warmup", raw[0]["type"])
	assert.EqualValues(t, 5, raw[0]["breakDuration"])
	assert.EqualValues(t, 20, raw[0]["cycleBreakDuration"])
	assert.EqualValues(t, 2, raw[0]["cycleRepetitions"])
	assert.Contains(t, raw[0], "createdAt")
	assert.Contains(t, raw[0], "updatedAt")

	exercises := raw[0]["exercises"].([]any)
	ex := exercises[0].(map[string]any)
	assert.Equal(t, "duration", ex["type"])
	assert.EqualValues(t, 30, ex["duration"])
	assert.NotContains(t, ex, "repetitions")
}

func TestDecodeRejectsUnknownCategory(t *testing.T) {
	_, err := decodeSequences([]byte(`[{"id":"1","name":"x","type":"yoga","exercises":[]}]`))
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestDecodeRejectsMalformedTimestamps(t *testing.T) {
	_, err := decodeSequences([]byte(`[{"id":"1","name":"x","exercises":[],"createdAt":"yesterday"}]`))
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestLaunchRoundTrip(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	data, err := encodeLaunches([]models.WorkoutLaunch{{SequenceID: "s", SequenceName: "S", LaunchedAt: at}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"sequenceId":"s","sequenceName":"S","launchedAt":"2025-01-02T03:04:05Z"}]`, string(data))

	launches, err := decodeLaunches(data)
	require.NoError(t, err)
	require.Len(t, launches, 1)
	assert.True(t, launches[0].LaunchedAt.Equal(at))
}

func TestMissingExerciseIDIsStableAcrossLoads(t *testing.T) {
	store, backend, _ := setupTestStore(t)
	require.NoError(t, backend.Set(SequencesKey, []byte(browserDump)))

	first := store.GetByID("1712000000000")
	second := store.GetByID("1712000000000")
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, "a", first.Exercises[0].ID)
	assert.NotEmpty(t, first.Exercises[1].ID)
	assert.Equal(t, first.Exercises[1].ID, second.Exercises[1].ID)
	assert.Equal(t, first, second)
}

func TestDerivedExerciseIDDependsOnSequenceAndPosition(t *testing.T) {
	assert.Equal(t, derivedExerciseID("s1", 0), derivedExerciseID("s1", 0))
	assert.NotEqual(t, derivedExerciseID("s1", 0), derivedExerciseID("s1", 1))
	assert.NotEqual(t, derivedExerciseID("s1", 0), derivedExerciseID("s2", 0))
}

func TestMissingExerciseTypeCountsAsRepetitions(t *testing.T) {
	sequences, err := decodeSequences([]byte(`[{"id":"1","name":"x","exercises":[{"id":"e","name":"Squats","repetitions":12}]}]`))
	require.NoError(t, err)
	require.Len(t, sequences, 1)
	require.Len(t, sequences[0].Exercises, 1)
	assert.Equal(t, models.KindRepetitions, sequences[0].Exercises[0].Kind)
	assert.Equal(t, 12, *sequences[0].Exercises[0].Repetitions)
}
