package dialog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirDialog_OpenValidatesImmediately(t *testing.T) {
	d := &CreateDirDialog{}
	d.Open(t.TempDir())

	require.True(t, d.IsOpen())
	assert.Empty(t, d.Input())
	// The empty-name error shows without requiring a prior edit
	require.Error(t, d.Err())
	assert.Contains(t, d.Err().Error(), "cannot be empty")
}

func TestCreateDirDialog_DuplicateDirectoryRejected(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "existing"), 0755))

	d := &CreateDirDialog{}
	d.Open(tempDir)
	d.SetInput("existing")

	require.Error(t, d.Err())
	assert.Contains(t, d.Err().Error(), "already exists")
}

func TestCreateDirDialog_ExistingFileNameAccepted(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "name"), []byte("x"), 0644))

	d := &CreateDirDialog{}
	d.Open(tempDir)
	d.SetInput("name")

	// Only colliding directories are rejected at this layer; the
	// mkdir itself will fail and surface as a field error.
	assert.NoError(t, d.Err())
}

func TestCreateDirDialog_CommitCreatesAndCloses(t *testing.T) {
	tempDir := t.TempDir()

	d := &CreateDirDialog{}
	d.Open(tempDir)
	d.SetInput("newdir")
	require.NoError(t, d.Err())

	path, err := d.Commit()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "newdir"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.False(t, d.IsOpen())
}

func TestCreateDirDialog_CommitBlockedByFieldError(t *testing.T) {
	d := &CreateDirDialog{}
	d.Open(t.TempDir())

	_, err := d.Commit()
	require.Error(t, err)
	assert.True(t, d.IsOpen())
}

func TestCreateDirDialog_CommitFailureKeepsInput(t *testing.T) {
	tempDir := t.TempDir()
	parent := filepath.Join(tempDir, "parent")
	require.NoError(t, os.Mkdir(parent, 0755))

	d := &CreateDirDialog{}
	d.Open(parent)
	d.SetInput("child")
	require.NoError(t, d.Err())

	// Pull the parent away so mkdir fails like a filesystem race would
	require.NoError(t, os.RemoveAll(parent))

	_, err := d.Commit()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindIO))

	// The sub-dialog stays open and the typed name survives
	assert.True(t, d.IsOpen())
	assert.Equal(t, "child", d.Input())
	assert.Error(t, d.Err())
}

func TestCreateDirDialog_CloseDiscardsState(t *testing.T) {
	d := &CreateDirDialog{}
	d.Open(t.TempDir())
	d.SetInput("something")

	d.Close()

	assert.False(t, d.IsOpen())
	assert.Empty(t, d.Input())
	assert.NoError(t, d.Err())
}
