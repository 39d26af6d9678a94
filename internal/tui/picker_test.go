package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fspick/fspick/internal/dialog"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestPicker(t *testing.T, mode dialog.OperationMode, dir string) *PickerModel {
	t.Helper()
	ctrl := dialog.NewController(dir)
	ctrl.Open(mode)
	require.Equal(t, dialog.StateOpen, ctrl.State())
	return NewPickerModel(ctrl)
}

func TestPicker_EnterSelectsFile(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "only.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	m := newTestPicker(t, dialog.SelectFile, tempDir)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	selected, ok := m.ctrl.Selected()
	require.True(t, ok)
	assert.Equal(t, "only.txt", filepath.Base(selected))
	assert.True(t, m.ctrl.IsSelectionValid())
}

func TestPicker_ConfirmQuitsWithResult(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "only.txt"), []byte("x"), 0644))

	m := newTestPicker(t, dialog.SelectFile, tempDir)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := m.Update(keyRunes("s"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.Equal(t, dialog.StateSelected, m.ctrl.State())
	result, ok := m.ctrl.Result()
	require.True(t, ok)
	assert.Equal(t, "only.txt", filepath.Base(result))
}

func TestPicker_ConfirmWithoutSelectionIsRejected(t *testing.T) {
	m := newTestPicker(t, dialog.SelectFile, t.TempDir())

	_, cmd := m.Update(keyRunes("s"))
	assert.Nil(t, cmd)
	assert.Equal(t, dialog.StateOpen, m.ctrl.State())
	assert.NotEmpty(t, m.statusErr)
}

func TestPicker_EnterOnDirectoryNavigates(t *testing.T) {
	tempDir := t.TempDir()
	sub := filepath.Join(tempDir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	m := newTestPicker(t, dialog.SelectFile, tempDir)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	cur, ok := m.ctrl.CurrentDirectory()
	require.True(t, ok)
	assert.Equal(t, "sub", filepath.Base(cur))
	assert.True(t, m.ctrl.CanGoBack())
}

func TestPicker_QuitCancelsDialog(t *testing.T) {
	m := newTestPicker(t, dialog.SelectFile, t.TempDir())

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, dialog.StateCancelled, m.ctrl.State())
}

func TestPicker_CreateDirectoryFlow(t *testing.T) {
	tempDir := t.TempDir()

	m := newTestPicker(t, dialog.SelectDirectory, tempDir)

	m.Update(keyRunes("n"))
	require.True(t, m.ctrl.CreateDirOpen())
	assert.Equal(t, focusCreateDir, m.focus)

	m.Update(keyRunes("newdir"))
	assert.Equal(t, "newdir", m.ctrl.CreateDirInput())
	require.NoError(t, m.ctrl.CreateDirError())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.ctrl.CreateDirOpen())
	assert.Equal(t, focusList, m.focus)
	info, err := os.Stat(filepath.Join(tempDir, "newdir"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	selected, ok := m.ctrl.Selected()
	require.True(t, ok)
	assert.Equal(t, "newdir", filepath.Base(selected))
}

func TestPicker_CreateDirectoryEscCancels(t *testing.T) {
	m := newTestPicker(t, dialog.SelectDirectory, t.TempDir())

	m.Update(keyRunes("n"))
	require.True(t, m.ctrl.CreateDirOpen())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.ctrl.CreateDirOpen())
	assert.Equal(t, focusList, m.focus)
	// Dialog session itself is still open
	assert.Equal(t, dialog.StateOpen, m.ctrl.State())
}

func TestPicker_SearchFiltersListing(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "apple.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "banana.txt"), []byte("x"), 0644))

	m := newTestPicker(t, dialog.SelectFile, tempDir)
	require.Len(t, m.visibleEntries(), 2)

	m.Update(keyRunes("/"))
	assert.Equal(t, focusSearch, m.focus)

	m.Update(keyRunes("APP"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	entries := m.visibleEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "apple.txt", entries[0].Name)
}

func TestPicker_SaveNameEditing(t *testing.T) {
	tempDir := t.TempDir()

	m := newTestPicker(t, dialog.SaveFile, tempDir)
	require.Error(t, m.ctrl.SaveNameError())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusSaveName, m.focus)

	m.Update(keyRunes("out.txt"))
	assert.Equal(t, "out.txt", m.ctrl.SaveName())
	assert.NoError(t, m.ctrl.SaveNameError())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	result, ok := m.ctrl.Result()
	require.True(t, ok)
	assert.Equal(t, "out.txt", filepath.Base(result))
}

func TestPicker_ViewRendersWithoutDirectory(t *testing.T) {
	m := newTestPicker(t, dialog.SelectFile, "/completely/nonexistent")

	// An unloadable initial directory must not panic the renderer
	view := m.View()
	assert.Contains(t, view, "No entries")
}
