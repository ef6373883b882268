package afio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, f *Future) (any, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return f.Wait(ctx)
}

func TestOpenWriteReadCloseRoundTrip(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	path := filepath.Join(t.TempDir(), "f")
	v, err := waitFor(t, d.Open(nil, path, FlagRead|FlagWrite|FlagCreate, OpNone))
	require.NoError(t, err)
	h := v.(*Handle)

	_, err = waitFor(t, d.Write(nil, h, IoRequest{Offset: 0, Buffers: []IoBuffer{{Base: []byte("payload")}}}, OpNone))
	require.NoError(t, err)

	buf := make([]byte, 7)
	n, err := waitFor(t, d.Read(nil, h, IoRequest{Offset: 0, Buffers: []IoBuffer{{Base: buf}}}, OpNone))
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
	assert.Equal(t, "payload", string(buf))

	_, err = waitFor(t, d.Close(nil, h, OpNone))
	require.NoError(t, err)
}

func TestDirectoryHandlesAreCached(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	dir := t.TempDir()
	v1, err := waitFor(t, d.OpenDirectory(nil, dir, 0, OpNone))
	require.NoError(t, err)
	v2, err := waitFor(t, d.OpenDirectory(nil, dir, 0, OpNone))
	require.NoError(t, err)

	h1, h2 := v1.(*Handle), v2.(*Handle)
	assert.Same(t, h1.nh, h2.nh, "same canonical directory should reuse the cached handle")

	_, err = waitFor(t, d.Close(nil, h1, OpNone))
	require.NoError(t, err)
	_, err = waitFor(t, d.Close(nil, h2, OpNone))
	require.NoError(t, err)
}

func TestLockWriteThenUnlock(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	target := filepath.Join(t.TempDir(), "f")
	v, err := waitFor(t, d.Lock(nil, target, LockRequest{Offset: 0, Length: 10, Type: LockWrite}, OpNone))
	require.NoError(t, err)
	lh := v.(*LockHandle)

	_, err = waitFor(t, d.Unlock(nil, lh, OpNone))
	require.NoError(t, err)
}

func TestEnumeratePaginatesUntilMoreAvailableIsFalse(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	v, err := waitFor(t, d.OpenDirectory(nil, dir, 0, OpNone))
	require.NoError(t, err)
	h := v.(*Handle)

	var names []string
	restart := true
	for {
		v, err := waitFor(t, d.Enumerate(nil, h, 2, restart, "", false, 0, OpNone))
		require.NoError(t, err)
		res := v.(EnumerateResult)
		for _, e := range res.Entries {
			names = append(names, e.Name)
		}
		if !res.MoreAvailable {
			break
		}
		restart = false
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, names)
}

func TestErrorKindNotFound(t *testing.T) {
	d := New(4, nil)
	defer d.Shutdown()

	_, err := waitFor(t, d.Open(nil, filepath.Join(t.TempDir(), "missing"), FlagRead, OpNone))
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
