// ABOUTME: Failure kinds recognized by the sequence store.
// ABOUTME: Every failure is logged under one of these kinds and collapsed to a bool or empty result.
package storage

import (
	"errors"

	"github.com/harperreed/workseq/internal/kv"
)

var (
	// ErrBackendUnavailable means no usable storage exists in this environment.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrSerialization means stored data could not be decoded or a value could not be encoded.
	ErrSerialization = errors.New("serialization error")
	// ErrReadFailure means the backend failed to return a stored value.
	ErrReadFailure = errors.New("read failure")
	// ErrWriteFailure means the backend rejected a write.
	ErrWriteFailure = errors.New("write failure")
	// ErrInvalidSequence means a sequence was rejected before being stored.
	ErrInvalidSequence = errors.New("invalid sequence")
)

// errorKind names the failure kind for log output.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrBackendUnavailable), errors.Is(err, kv.ErrUnavailable):
		return "backend_unavailable"
	case errors.Is(err, ErrSerialization):
		return "serialization"
	case errors.Is(err, ErrInvalidSequence):
		return "invalid_sequence"
	case errors.Is(err, ErrReadFailure):
		return "read_failure"
	default:
		return "write_failure"
	}
}
