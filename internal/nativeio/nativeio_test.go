//go:build linux || darwin

package nativeio

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")

	h, err := OpenFile(path, FlagRead|FlagWrite|FlagCreate, 0o644)
	require.NoError(t, err)
	defer h.Close()

	n, err := h.Write(0, []Buffer{{Data: []byte("hello")}, {Data: []byte(" world")}})
	require.NoError(t, err)
	assert.EqualValues(t, 11, n)

	buf := make([]byte, 11)
	n, err = h.Read(0, []Buffer{{Data: buf}})
	require.NoError(t, err)
	assert.EqualValues(t, 11, n)
	assert.Equal(t, "hello world", string(buf))
}

func TestTruncatedReadAtEOF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	h, err := OpenFile(path, FlagRead|FlagWrite|FlagCreate, 0o644)
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Write(0, []Buffer{{Data: []byte("abc")}})
	require.NoError(t, err)

	buf := make([]byte, 10)
	n, err := h.Read(0, []Buffer{{Data: buf}})
	assert.ErrorIs(t, err, ErrTruncatedIO)
	assert.EqualValues(t, 3, n)
}

func TestTruncateGrowsAndShrinks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	h, err := OpenFile(path, FlagRead|FlagWrite|FlagCreate, 0o644)
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Truncate(100))
	st, err := h.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, 100, st.Size)

	require.NoError(t, h.Truncate(10))
	st, err = h.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, 10, st.Size)
}

func TestEnumerateHidesDeletePendingSentinel(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", deletePendingPrefix + "stale"} {
		f, err := OpenFile(filepath.Join(dir, name), FlagWrite|FlagCreate, 0o644)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	dh, err := OpenDirectory(dir, 0)
	require.NoError(t, err)
	defer dh.Close()

	entries, more, err := dh.Enumerate(context.Background(), 0, true, "", false, FilterHideDeletePending)
	require.NoError(t, err)
	assert.False(t, more)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, names)
}

func TestEnumeratePaginatesAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		f, err := OpenFile(filepath.Join(dir, name), FlagWrite|FlagCreate, 0o644)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	dh, err := OpenDirectory(dir, 0)
	require.NoError(t, err)
	defer dh.Close()

	var names []string
	page, more, err := dh.Enumerate(context.Background(), 2, true, "", false, 0)
	require.NoError(t, err)
	require.True(t, more)
	for _, e := range page {
		names = append(names, e.Name)
	}
	for more {
		page, more, err = dh.Enumerate(context.Background(), 2, false, "", false, 0)
		require.NoError(t, err)
		for _, e := range page {
			names = append(names, e.Name)
		}
	}
	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"}, names)
}

func TestEnumerateLiteralGlobFastPath(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenFile(filepath.Join(dir, "exact.txt"), FlagWrite|FlagCreate, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	dh, err := OpenDirectory(dir, 0)
	require.NoError(t, err)
	defer dh.Close()

	entries, more, err := dh.Enumerate(context.Background(), 0, true, "exact.txt", false, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "exact.txt", entries[0].Name)
	assert.False(t, more)

	entries, more, err = dh.Enumerate(context.Background(), 0, true, "missing.txt", false, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 0)
	assert.False(t, more)
}

func TestRelinkUpdatesHandlePath(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old")
	newPath := filepath.Join(dir, "new")
	h, err := OpenFile(oldPath, FlagWrite|FlagCreate, 0o644)
	require.NoError(t, err)
	defer h.Close()

	require.NoError(t, h.Relink(newPath))
	assert.Equal(t, newPath, h.Path(false).String())
}

func TestExtentsStartAtOffsetZeroForWrittenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	h, err := OpenFile(path, FlagRead|FlagWrite|FlagCreate, 0o644)
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Write(0, []Buffer{{Data: []byte("data")}})
	require.NoError(t, err)

	extents, err := h.Extents()
	require.NoError(t, err)
	require.NotEmpty(t, extents)
	assert.EqualValues(t, 0, extents[0].Offset)
}
