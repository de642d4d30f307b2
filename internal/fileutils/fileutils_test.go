package fileutils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	err := os.WriteFile(testFile, []byte("test"), 0600)
	assert.NoError(t, err)

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))

	// Directories are not files
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	testFile := filepath.Join(tmpDir, "test.txt")
	err := os.WriteFile(testFile, []byte("test"), 0600)
	assert.NoError(t, err)
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	newDir := filepath.Join(tmpDir, "new", "nested", "dir")
	err := fileutils.EnsureDirectoryExists(newDir)
	assert.NoError(t, err)
	assert.True(t, fileutils.DirectoryExists(newDir))

	// Existing directory is fine
	err = fileutils.EnsureDirectoryExists(tmpDir)
	assert.NoError(t, err)
}

func TestOpenFile(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	err := os.WriteFile(testFile, []byte("test"), 0600)
	assert.NoError(t, err)

	file, err := fileutils.OpenFile(testFile)
	assert.NoError(t, err)
	assert.NotNil(t, file)
	_ = file.Close()

	_, err = fileutils.OpenFile(filepath.Join(tmpDir, "nonexistent.txt"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCreateFile(t *testing.T) {
	tmpDir := t.TempDir()

	nestedFile := filepath.Join(tmpDir, "x", "y", "z", "new.txt")
	file, err := fileutils.CreateFile(nestedFile, 0600)
	require.NoError(t, err)
	_ = file.Close()
	assert.True(t, fileutils.FileExists(nestedFile))
}

func TestWriteFileAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "data", "users.txt")

	err := fileutils.WriteFileAtomic(target, []byte("first"), 0600)
	require.NoError(t, err)

	err = fileutils.WriteFileAtomic(target, []byte("second"), 0600)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// No temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.txt")

	require.NoError(t, os.WriteFile(src, []byte("content"), 0600))
	require.NoError(t, os.WriteFile(dst, []byte("old content that is longer"), 0600))

	err := fileutils.CopyFile(src, dst, 0600)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	err = fileutils.CopyFile(filepath.Join(tmpDir, "missing"), dst, 0600)
	assert.Error(t, err)
}
