package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/stampname/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() afero.Fs {
	return filesystem.NewMemory()
}

// CreateFile writes content to path, creating parent directories.
func CreateFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
}

// CreateFiles seeds several files at once, keyed by path.
func CreateFiles(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		CreateFile(t, fsys, path, content)
	}
}

// ReadFile returns the content of path, failing the test if it is missing.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

// ListFiles returns the sorted names of the regular files directly in dir.
func ListFiles(t *testing.T, fsys afero.Fs, dir string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fsys, dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// AssertFileExists checks that path exists.
func AssertFileExists(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	assert.NoError(t, err)
	assert.True(t, ok, "expected %s to exist", path)
}

// AssertNoFile checks that path does not exist.
func AssertNoFile(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	assert.NoError(t, err)
	assert.False(t, ok, "expected %s not to exist", path)
}
