package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/camt-report/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))

	// Test directory (should return false)
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	newDir := filepath.Join(tmpDir, "new", "nested", "dir")
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.True(t, fileutils.DirectoryExists(newDir))

	// Existing directory is not an error
	assert.NoError(t, fileutils.EnsureDirectoryExists(newDir))
}

func TestWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "reports", "statement.txt")

	require.NoError(t, fileutils.WriteFile(target, []byte("Statement created")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Statement created", string(data))
}

func TestListFilesWithExtension(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"b.xml", "a.XML", "notes.txt", "c.xml.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0600))
	}
	nested := filepath.Join(tmpDir, "nested")
	require.NoError(t, os.Mkdir(nested, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "d.xml"), []byte("x"), 0600))

	files, err := fileutils.ListFilesWithExtension(tmpDir, ".xml")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "a.XML"), filepath.Join(tmpDir, "b.xml")}, files)

	_, err = fileutils.ListFilesWithExtension(filepath.Join(tmpDir, "missing"), ".xml")
	assert.Error(t, err)
}

func TestReplaceExtension(t *testing.T) {
	tests := []struct {
		path     string
		ext      string
		expected string
	}{
		{path: "/in/statement.xml", ext: ".csv", expected: "statement.csv"},
		{path: "in/CAMT.053_1_2023-05-01_2023-05-31_1.xml", ext: ".csv", expected: "CAMT.053_1_2023-05-01_2023-05-31_1.csv"},
		{path: "noext", ext: ".txt", expected: "noext.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, fileutils.ReplaceExtension(tt.path, tt.ext))
		})
	}
}
