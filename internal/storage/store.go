// ABOUTME: Sequence store: CRUD over workout sequences and a bounded launch history.
// ABOUTME: Each operation reads the whole collection, mutates it, and writes it back.
package storage

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/workseq/internal/kv"
	"github.com/harperreed/workseq/internal/logging"
	"github.com/harperreed/workseq/internal/models"
	"github.com/jonboulle/clockwork"
)

const (
	// SequencesKey holds the ordered sequence collection.
	SequencesKey = "workout-sequences"
	// LaunchHistoryKey holds the launch log, most recent first.
	LaunchHistoryKey = "workout-launch-history"
	// MaxLaunchHistory is how many launches are retained.
	MaxLaunchHistory = 3
)

// Store persists sequences and launch history in a kv.Backend.
//
// Mutating operations report success as a bool and reads degrade to empty
// results; the cause of any failure is only logged. Returned sequences are
// independent copies of the stored data.
//
// Concurrent writers are not coordinated: the last full-collection write wins.
type Store struct {
	backend kv.Backend
	clock   clockwork.Clock
	logger  *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store on top of backend. A nil backend behaves like kv.Unavailable.
func New(backend kv.Backend, opts ...Option) *Store {
	if backend == nil {
		backend = kv.Unavailable{}
	}
	s := &Store{
		backend: backend,
		clock:   clockwork.NewRealClock(),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the underlying backend.
func (s *Store) Backend() kv.Backend {
	return s.backend
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// List returns all sequences in stored order, optionally filtered by category.
func (s *Store) List(category *models.Category) []*models.WorkoutSequence {
	sequences, err := s.loadSequences()
	if err != nil {
		s.fail("list", SequencesKey, err)
		return []*models.WorkoutSequence{}
	}
	if category == nil {
		return sequences
	}

	filtered := make([]*models.WorkoutSequence, 0, len(sequences))
	for _, seq := range sequences {
		if seq.Category == *category {
			filtered = append(filtered, seq)
		}
	}
	return filtered
}

// ListWorkouts returns only regular workout sequences.
func (s *Store) ListWorkouts() []*models.WorkoutSequence {
	c := models.CategoryWorkout
	return s.List(&c)
}

// ListWarmups returns only warm-up sequences.
func (s *Store) ListWarmups() []*models.WorkoutSequence {
	c := models.CategoryWarmup
	return s.List(&c)
}

// Save appends seq to the collection. Duplicate IDs are not checked.
// An empty ID gets a fresh UUID, written back to seq, and zero timestamps are set to now.
func (s *Store) Save(seq *models.WorkoutSequence) bool {
	if err := s.save(seq); err != nil {
		s.fail("save", SequencesKey, err)
		return false
	}
	return true
}

func (s *Store) save(seq *models.WorkoutSequence) error {
	if err := validate(seq); err != nil {
		return err
	}
	sequences, err := s.loadSequences()
	if err != nil {
		return err
	}

	stored := seq.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
		seq.ID = stored.ID
	}
	if stored.Category == "" {
		stored.Category = models.CategoryWorkout
	}
	now := s.clock.Now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}

	return s.storeSequences(append(sequences, stored))
}

// Create builds a sequence from def and saves it.
// Returns nil if the definition is invalid or the save fails.
func (s *Store) Create(def *models.CreateSequence) *models.WorkoutSequence {
	if err := def.Validate(); err != nil {
		s.fail("create", SequencesKey, fmt.Errorf("%w: %v", ErrInvalidSequence, err))
		return nil
	}
	seq := def.Build(s.clock.Now())
	if !s.Save(seq) {
		return nil
	}
	return seq
}

// Update replaces the stored sequence with the same ID, keeping its position,
// and sets UpdatedAt to now. Returns false if no sequence has that ID.
func (s *Store) Update(seq *models.WorkoutSequence) bool {
	ok, err := s.update(seq)
	if err != nil {
		s.fail("update", SequencesKey, err)
		return false
	}
	return ok
}

func (s *Store) update(seq *models.WorkoutSequence) (bool, error) {
	if err := validate(seq); err != nil {
		return false, err
	}
	sequences, err := s.loadSequences()
	if err != nil {
		return false, err
	}

	index := -1
	for i, existing := range sequences {
		if existing.ID == seq.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return false, nil
	}

	stored := seq.Clone()
	if stored.Category == "" {
		stored.Category = models.CategoryWorkout
	}
	stored.UpdatedAt = s.clock.Now()
	sequences[index] = stored

	if err := s.storeSequences(sequences); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes every sequence with the given ID.
// Deleting an unknown ID still succeeds.
func (s *Store) Delete(id string) bool {
	if err := s.delete(id); err != nil {
		s.fail("delete", SequencesKey, err)
		return false
	}
	return true
}

func (s *Store) delete(id string) error {
	sequences, err := s.loadSequences()
	if err != nil {
		return err
	}

	kept := sequences[:0]
	for _, seq := range sequences {
		if seq.ID != id {
			kept = append(kept, seq)
		}
	}
	return s.storeSequences(kept)
}

// GetByID returns the first sequence with the given ID, or nil.
func (s *Store) GetByID(id string) *models.WorkoutSequence {
	sequences, err := s.loadSequences()
	if err != nil {
		s.fail("get", SequencesKey, err)
		return nil
	}
	return findByID(sequences, id)
}

// ClearAll removes the whole sequence collection. Launch history is kept.
func (s *Store) ClearAll() bool {
	if err := s.remove(SequencesKey); err != nil {
		s.fail("clear", SequencesKey, err)
		return false
	}
	return true
}

// RecordLaunch prepends a launch of the given sequence to the history
// and trims it to the MaxLaunchHistory most recent entries.
func (s *Store) RecordLaunch(sequenceID, sequenceName string) bool {
	if err := s.recordLaunch(sequenceID, sequenceName); err != nil {
		s.fail("record_launch", LaunchHistoryKey, err)
		return false
	}
	return true
}

func (s *Store) recordLaunch(sequenceID, sequenceName string) error {
	history, err := s.loadLaunches()
	if err != nil {
		return err
	}

	launch := models.WorkoutLaunch{
		SequenceID:   sequenceID,
		SequenceName: sequenceName,
		LaunchedAt:   s.clock.Now(),
	}
	history = append([]models.WorkoutLaunch{launch}, history...)
	if len(history) > MaxLaunchHistory {
		history = history[:MaxLaunchHistory]
	}
	return s.storeLaunches(history)
}

// GetLaunchHistory returns the retained launches, most recent first.
func (s *Store) GetLaunchHistory() []models.WorkoutLaunch {
	history, err := s.loadLaunches()
	if err != nil {
		s.fail("launch_history", LaunchHistoryKey, err)
		return []models.WorkoutLaunch{}
	}
	return history
}

// GetRecentLaunches returns the most recent launch of each distinct sequence,
// most recent first, with the current sequence attached. Sequence is nil when
// the launched sequence no longer exists.
func (s *Store) GetRecentLaunches() []models.RecentLaunch {
	history := s.GetLaunchHistory()
	if len(history) == 0 {
		return []models.RecentLaunch{}
	}

	sequences, err := s.loadSequences()
	if err != nil {
		s.fail("recent_launches", SequencesKey, err)
		sequences = nil
	}

	seen := make(map[string]bool, len(history))
	recent := make([]models.RecentLaunch, 0, len(history))
	for _, launch := range history {
		if seen[launch.SequenceID] {
			continue
		}
		seen[launch.SequenceID] = true
		recent = append(recent, models.RecentLaunch{
			Launch:   launch,
			Sequence: findByID(sequences, launch.SequenceID),
		})
	}
	return recent
}

func findByID(sequences []*models.WorkoutSequence, id string) *models.WorkoutSequence {
	for _, seq := range sequences {
		if seq.ID == id {
			return seq
		}
	}
	return nil
}

// validate rejects values that would make the stored collection unreadable.
func validate(seq *models.WorkoutSequence) error {
	if seq == nil {
		return fmt.Errorf("%w: nil sequence", ErrInvalidSequence)
	}
	if seq.Category != "" {
		if _, err := models.ParseCategory(string(seq.Category)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSequence, err)
		}
	}
	for _, e := range seq.Exercises {
		if !e.Kind.IsValid() {
			return fmt.Errorf("%w: exercise %q has unknown type %q", ErrInvalidSequence, e.Name, e.Kind)
		}
	}
	return nil
}

// loadSequences reads the collection. A missing key is an empty collection.
func (s *Store) loadSequences() ([]*models.WorkoutSequence, error) {
	data, err := s.get(SequencesKey)
	if err != nil || data == nil {
		return []*models.WorkoutSequence{}, err
	}
	return decodeSequences(data)
}

func (s *Store) storeSequences(sequences []*models.WorkoutSequence) error {
	data, err := encodeSequences(sequences)
	if err != nil {
		return err
	}
	return s.set(SequencesKey, data)
}

func (s *Store) loadLaunches() ([]models.WorkoutLaunch, error) {
	data, err := s.get(LaunchHistoryKey)
	if err != nil || data == nil {
		return []models.WorkoutLaunch{}, err
	}
	return decodeLaunches(data)
}

func (s *Store) storeLaunches(launches []models.WorkoutLaunch) error {
	data, err := encodeLaunches(launches)
	if err != nil {
		return err
	}
	return s.set(LaunchHistoryKey, data)
}

// get returns nil data without error when the key is absent.
func (s *Store) get(key string) ([]byte, error) {
	if !s.backend.Available() {
		return nil, ErrBackendUnavailable
	}
	data, err := s.backend.Get(key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrReadFailure, key, err)
	}
	return data, nil
}

func (s *Store) set(key string, data []byte) error {
	if !s.backend.Available() {
		return ErrBackendUnavailable
	}
	if err := s.backend.Set(key, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrWriteFailure, key, err)
	}
	return nil
}

func (s *Store) remove(key string) error {
	if !s.backend.Available() {
		return ErrBackendUnavailable
	}
	if err := s.backend.Remove(key); err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrWriteFailure, key, err)
	}
	return nil
}

// fail logs a collapsed failure.
func (s *Store) fail(op, key string, err error) {
	kind := errorKind(err)
	if kind == "backend_unavailable" {
		s.logger.Warn("storage unavailable", "op", op, "key", key)
		return
	}
	s.logger.Error("storage operation failed", "op", op, "key", key, "kind", kind, "err", err)
}
