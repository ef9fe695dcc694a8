package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppStorageCreatesDirectories(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "data")

	s, err := NewAppStorage(base)
	require.NoError(t, err)

	assert.Equal(t, base, s.ConfigPath())
	assert.DirExists(t, base)
	assert.DirExists(t, s.LogPath())
	assert.Equal(t, filepath.Join(base, "ips.json"), s.Path("ips.json"))
}

func TestDefaultDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Documents", "AndroidTVController"), dir)
}

func TestWriteFileIfAbsent(t *testing.T) {
	s, err := NewAppStorage(t.TempDir())
	require.NoError(t, err)
	path := s.Path("sub/file.txt")

	wrote, err := s.WriteFileIfAbsent(path, []byte("first"))
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = s.WriteFileIfAbsent(path, []byte("second"))
	require.NoError(t, err)
	assert.False(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestCopyFile(t *testing.T) {
	s, err := NewAppStorage(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.WriteFile(s.Path("a"), []byte("payload")))

	require.NoError(t, s.CopyFile(s.Path("a"), s.Path("b")))
	assert.True(t, s.FileExists(s.Path("b")))

	data, err := s.ReadFile(s.Path("b"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}
