package dircache

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	closed int32
}

func (f *fakeHandle) Close() error {
	atomic.AddInt32(&f.closed, 1)
	return nil
}

func TestAcquireReusesOpenHandle(t *testing.T) {
	opens := int32(0)
	c := New(8, func(canonical string) (Handle, error) {
		atomic.AddInt32(&opens, 1)
		return &fakeHandle{}, nil
	})

	e1, err := c.Acquire("/tmp/dir")
	require.NoError(t, err)
	e2, err := c.Acquire("/tmp/dir")
	require.NoError(t, err)

	assert.Equal(t, int32(1), opens)
	assert.Same(t, e1.Handle(), e2.Handle())

	e1.Release(c)
	e2.Release(c)
}

func TestInvalidateClosesOnceUnreferenced(t *testing.T) {
	h := &fakeHandle{}
	c := New(8, func(canonical string) (Handle, error) { return h, nil })

	e, err := c.Acquire("/tmp/dir")
	require.NoError(t, err)

	c.Invalidate("/tmp/dir")
	assert.Equal(t, int32(0), atomic.LoadInt32(&h.closed), "still referenced, must not close yet")

	e.Release(c)
	assert.Equal(t, int32(1), atomic.LoadInt32(&h.closed))
}

func TestLRUEvictionClosesOnceUnreferenced(t *testing.T) {
	c := New(1, func(canonical string) (Handle, error) { return &fakeHandle{}, nil })

	// Find two canonical paths that land in the same shard so the second
	// Acquire evicts the first one's entry under the shard's capacity-1 LRU.
	first := "/tmp/path-0"
	sh := c.shard(first)
	var second string
	for i := 1; ; i++ {
		candidate := "/tmp/path-" + string(rune('a'+i%26)) + string(rune('0'+i/26))
		if c.shard(candidate) == sh {
			second = candidate
			break
		}
	}

	e1, err := c.Acquire(first)
	require.NoError(t, err)
	h1 := e1.Handle().(*fakeHandle)
	e1.Release(c) // drop the reference so eviction can close it immediately

	_, err = c.Acquire(second)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&h1.closed), "evicted entry with no holders must be closed")
}

func TestDistinctPathsGetDistinctHandles(t *testing.T) {
	c := New(8, func(canonical string) (Handle, error) { return &fakeHandle{}, nil })

	e1, err := c.Acquire("/tmp/a")
	require.NoError(t, err)
	e2, err := c.Acquire("/tmp/b")
	require.NoError(t, err)

	assert.NotSame(t, e1.Handle(), e2.Handle())
}
