package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_EmptyHasNoCurrent(t *testing.T) {
	h := &History{}

	_, ok := h.Current()
	assert.False(t, ok)
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())
	assert.False(t, h.Back())
	assert.False(t, h.Forward())
}

func TestHistory_NavigateToSameDirectoryIsNoop(t *testing.T) {
	h := &History{}
	h.NavigateTo("/a")
	h.NavigateTo("/a")

	assert.Equal(t, 1, h.Len())
	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "/a", cur)
}

func TestHistory_BackThenForwardRestores(t *testing.T) {
	h := &History{}
	h.NavigateTo("/a")
	h.NavigateTo("/b")

	require.True(t, h.Back())
	cur, _ := h.Current()
	assert.Equal(t, "/a", cur)

	require.True(t, h.Forward())
	cur, _ = h.Current()
	assert.Equal(t, "/b", cur)
}

func TestHistory_BoundariesReportUnavailable(t *testing.T) {
	h := &History{}
	h.NavigateTo("/a")
	h.NavigateTo("/b")

	assert.True(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())

	require.True(t, h.Back())
	assert.False(t, h.CanGoBack())
	assert.True(t, h.CanGoForward())

	// At the oldest entry another Back is a no-op
	assert.False(t, h.Back())
	cur, _ := h.Current()
	assert.Equal(t, "/a", cur)
}

func TestHistory_NavigateDiscardsForwardBranch(t *testing.T) {
	h := &History{}
	h.NavigateTo("/a")
	h.NavigateTo("/b")
	h.NavigateTo("/c")

	require.True(t, h.Back())
	require.True(t, h.Back())
	cur, _ := h.Current()
	require.Equal(t, "/a", cur)

	h.NavigateTo("/d")

	cur, _ = h.Current()
	assert.Equal(t, "/d", cur)
	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanGoForward())

	// The only remaining older entry is /a
	require.True(t, h.Back())
	cur, _ = h.Current()
	assert.Equal(t, "/a", cur)
}

func TestHistory_NavigateWithOffsetKeepsCurrentEntry(t *testing.T) {
	h := &History{}
	h.NavigateTo("/a")
	h.NavigateTo("/b")
	require.True(t, h.Back())

	// /b is dropped, /a stays, /c is pushed
	h.NavigateTo("/c")

	require.True(t, h.Back())
	cur, _ := h.Current()
	assert.Equal(t, "/a", cur)
	require.True(t, h.Forward())
	cur, _ = h.Current()
	assert.Equal(t, "/c", cur)
}

func TestHistory_Reset(t *testing.T) {
	h := &History{}
	h.NavigateTo("/a")
	h.NavigateTo("/b")
	h.Back()

	h.Reset()

	assert.Equal(t, 0, h.Len())
	_, ok := h.Current()
	assert.False(t, ok)
}
