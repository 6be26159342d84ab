// ABOUTME: Key-value storage port used by the sequence store.
// ABOUTME: Defines the Backend contract and its sentinel errors.
package kv

import "errors"

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("key not found")
	// ErrUnavailable is returned by every operation of a backend that cannot be used.
	ErrUnavailable = errors.New("storage backend unavailable")
)

// Backend is a durable string-keyed byte store.
type Backend interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
	// Available reports whether the backend can currently serve requests.
	Available() bool
	// Close releases the backend's resources.
	Close() error
}

// Syncer is implemented by backends that replicate to a remote.
type Syncer interface {
	Sync() error
}

// Unavailable is a Backend that refuses every operation.
// It stands in when no persistent storage exists in the current environment.
type Unavailable struct{}

var _ Backend = Unavailable{}

func (Unavailable) Get(string) ([]byte, error) { return nil, ErrUnavailable }
func (Unavailable) Set(string, []byte) error   { return ErrUnavailable }
func (Unavailable) Remove(string) error        { return ErrUnavailable }
func (Unavailable) Available() bool            { return false }
func (Unavailable) Close() error               { return nil }
