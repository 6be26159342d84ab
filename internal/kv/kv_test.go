// ABOUTME: Contract tests shared by every Backend implementation.
// ABOUTME: Runs get/set/remove semantics against memory, badger and SQLite.
package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	b, err := OpenBadgerInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "workseq.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return map[string]Backend{
		"memory": NewMemory(),
		"badger": b,
		"sqlite": s,
	}
}

func TestBackendContract(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, backend.Available())

			_, err := backend.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, backend.Set("a", []byte("one")))
			got, err := backend.Get("a")
			require.NoError(t, err)
			assert.Equal(t, []byte("one"), got)

			require.NoError(t, backend.Set("a", []byte("two")))
			got, err = backend.Get("a")
			require.NoError(t, err)
			assert.Equal(t, []byte("two"), got)

			require.NoError(t, backend.Set("b", []byte("other")))
			require.NoError(t, backend.Remove("a"))
			_, err = backend.Get("a")
			assert.ErrorIs(t, err, ErrNotFound)

			got, err = backend.Get("b")
			require.NoError(t, err)
			assert.Equal(t, []byte("other"), got)

			assert.NoError(t, backend.Remove("never-set"))
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	value := []byte("abc")
	require.NoError(t, m.Set("k", value))
	value[0] = 'x'

	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, _ := m.Get("k")
	assert.Equal(t, []byte("abc"), again)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "workseq.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")

	b, err := OpenBadger(dir)
	require.NoError(t, err)
	require.NoError(t, b.Set("k", []byte("v")))
	require.NoError(t, b.Close())
	assert.False(t, b.Available())

	b, err = OpenBadger(dir)
	require.NoError(t, err)
	defer b.Close()

	got, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestUnavailable(t *testing.T) {
	var u Unavailable

	assert.False(t, u.Available())
	_, err := u.Get("k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, u.Set("k", nil), ErrUnavailable)
	assert.ErrorIs(t, u.Remove("k"), ErrUnavailable)
	assert.NoError(t, u.Close())
}
