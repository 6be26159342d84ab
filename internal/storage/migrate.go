// ABOUTME: Data migration between storage backends.
// ABOUTME: Copies the sequence collection and launch history from source to destination.

package storage

import (
	"fmt"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Sequences int
	Launches  int
}

// MigrateData copies all data from src to dst, preserving order.
// Existing data in dst is replaced.
func MigrateData(src, dst *Store) (*MigrateSummary, error) {
	sequences, err := src.loadSequences()
	if err != nil {
		return nil, fmt.Errorf("list source sequences: %w", err)
	}
	launches, err := src.loadLaunches()
	if err != nil {
		return nil, fmt.Errorf("list source launch history: %w", err)
	}

	if err := dst.storeSequences(sequences); err != nil {
		return nil, fmt.Errorf("write sequences: %w", err)
	}
	if err := dst.storeLaunches(launches); err != nil {
		return nil, fmt.Errorf("write launch history: %w", err)
	}

	return &MigrateSummary{
		Sequences: len(sequences),
		Launches:  len(launches),
	}, nil
}

// IsEmpty reports whether the store holds no sequences and no launches.
func (s *Store) IsEmpty() (bool, error) {
	sequences, err := s.loadSequences()
	if err != nil {
		return false, err
	}
	launches, err := s.loadLaunches()
	if err != nil {
		return false, err
	}
	return len(sequences) == 0 && len(launches) == 0, nil
}
