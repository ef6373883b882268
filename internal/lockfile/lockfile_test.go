//go:build !windows

package lockfile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedLocksDoNotExclude(t *testing.T) {
	target := filepath.Join(t.TempDir(), "file.dat")
	r := New()

	h1, err := r.Acquire(target, 0, 10, Shared)
	require.NoError(t, err)
	h2, err := r.Acquire(target, 0, 10, Shared)
	require.NoError(t, err)

	require.NoError(t, h1.Release())
	require.NoError(t, h2.Release())
}

func TestDisjointRangesDoNotContend(t *testing.T) {
	target := filepath.Join(t.TempDir(), "file.dat")
	r := New()

	h1, err := r.Acquire(target, 0, 10, Exclusive)
	require.NoError(t, err)
	h2, err := r.Acquire(target, 10, 10, Exclusive)
	require.NoError(t, err)

	require.NoError(t, h1.Release())
	require.NoError(t, h2.Release())
}

func TestClampRangeStopsBeforeMarker(t *testing.T) {
	offset, length := clampRange(0, math.MaxInt64)
	assert.EqualValues(t, 0, offset)
	assert.EqualValues(t, markerOffset, length)

	offset, length = clampRange(markerOffset-5, 100)
	assert.EqualValues(t, markerOffset-5, offset)
	assert.EqualValues(t, 5, length)

	offset, length = clampRange(markerOffset, 10)
	assert.EqualValues(t, markerOffset, offset)
	assert.EqualValues(t, 0, length)
}

func TestAcquireToEOFDoesNotCollideWithMarker(t *testing.T) {
	target := filepath.Join(t.TempDir(), "file.dat")
	r := New()

	// A "lock from 0 to EOF" request, modeled as a very large length, must
	// not contend with the marker lock every Acquire call itself holds.
	h, err := r.Acquire(target, 0, math.MaxInt64, Exclusive)
	require.NoError(t, err)
	require.NoError(t, h.Release())
}

func TestSidecarRemovedWhenUnreferenced(t *testing.T) {
	target := filepath.Join(t.TempDir(), "file.dat")
	r := New()

	h, err := r.Acquire(target, 0, 1, Exclusive)
	require.NoError(t, err)
	require.NoError(t, h.Release())

	_, err = os.Stat(sidecarPath(target))
	assert.True(t, os.IsNotExist(err), "sidecar should be removed once last reference drops")
}
