package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	s := NewMappingStore(path)

	want := map[string]string{
		"whole foods": "Groceries",
		"acme corp":   "Salary",
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMappingStoreMissingFile(t *testing.T) {
	s := NewMappingStore(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMappingStoreEmptyPath(t *testing.T) {
	s := NewMappingStore("")

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Error(t, s.Save(map[string]string{"a": "Other"}))
}

func TestMappingStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not a mapping"), 0o600))

	_, err := NewMappingStore(path).Load()
	assert.Error(t, err)
}
