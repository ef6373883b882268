// Package dircache is the directory-handle cache of spec.md §4.D: a
// process-wide, bounded map from canonical parent path to an open directory
// handle, so that repeated relative (*at-style) resolution under the same
// parent doesn't reopen it on every call. Modeled on the teacher's
// linkinfo-style device/inode capture (internal/nativeio) plus the coarse
// per-key sharding the teacher's backends use to avoid one global mutex.
package dircache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
)

const shardCount = 64

// Handle is the subset of a directory handle the cache needs to manage its
// lifetime; the real type lives in internal/nativeio and satisfies this via
// structural typing at the call site (the cache only ever stores *nativeio.Handle
// through the Entry wrapper, never reaches into its fields).
type Handle interface {
	Close() error
}

// Entry is a cached, reference-counted directory handle.
type Entry struct {
	mu      sync.Mutex
	handle  Handle
	refs    int
	canon   string
	evicted bool
}

// Handle returns the underlying handle. Callers must hold a reference
// (via Cache.Acquire) before calling this.
func (e *Entry) Handle() Handle { return e.handle }

func (e *Entry) addRef() {
	e.mu.Lock()
	e.refs++
	e.mu.Unlock()
}

// Release drops one reference. When the last reference drops and the
// entry has since been evicted from the cache, the underlying handle is
// closed.
func (e *Entry) Release(c *Cache) {
	e.mu.Lock()
	e.refs--
	refs := e.refs
	evicted := e.evicted
	e.mu.Unlock()
	if refs == 0 && evicted {
		_ = e.handle.Close()
	}
}

// Cache is a bounded, sharded, canonical-path-keyed cache of open directory
// handles. Shard assignment is by xxhash of the canonical path, matching
// the coarse per-bucket locking scheme SPEC_FULL's domain stack commits to
// for both dircache and lockfile.
type Cache struct {
	shards [shardCount]*shard
	opener func(canonical string) (Handle, error)
}

type shard struct {
	mu  sync.Mutex
	lru *lru.Cache
}

// New builds a Cache whose shards hold up to perShardSize entries each
// (total capacity is perShardSize*64). opener is called on a cache miss to
// actually open the directory; two concurrent misses on the same path may
// both call it, in which case Acquire keeps the first handle cached and
// closes the other.
func New(perShardSize int, opener func(canonical string) (Handle, error)) *Cache {
	if perShardSize < 1 {
		perShardSize = 1
	}
	c := &Cache{opener: opener}
	for i := range c.shards {
		l, _ := lru.NewWithEvict(perShardSize, func(_, value interface{}) {
			markEvicted(value.(*Entry))
		})
		c.shards[i] = &shard{lru: l}
	}
	return c
}

func (c *Cache) shard(canonical string) *shard {
	h := xxhash.Sum64String(canonical)
	return c.shards[h%shardCount]
}

// Acquire returns a referenced Entry for canonical, opening it via the
// configured opener on a cache miss. Callers must call Entry.Release when
// done with the handle.
func (c *Cache) Acquire(canonical string) (*Entry, error) {
	sh := c.shard(canonical)
	sh.mu.Lock()
	if v, ok := sh.lru.Get(canonical); ok {
		e := v.(*Entry)
		e.addRef()
		sh.mu.Unlock()
		return e, nil
	}
	sh.mu.Unlock()

	h, err := c.opener(canonical)
	if err != nil {
		return nil, err
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if v, ok := sh.lru.Get(canonical); ok {
		// Lost the race to open; use the winner's handle and close ours.
		e := v.(*Entry)
		e.addRef()
		_ = h.Close()
		return e, nil
	}
	e := &Entry{handle: h, canon: canonical, refs: 1}
	sh.lru.Add(canonical, e)
	return e, nil
}

// Invalidate removes canonical from the cache (used after an atomic
// rename/relink changes what a path refers to). The held handle is closed
// once all current holders release it.
func (c *Cache) Invalidate(canonical string) {
	sh := c.shard(canonical)
	sh.mu.Lock()
	v, ok := sh.lru.Peek(canonical)
	if ok {
		sh.lru.Remove(canonical)
	}
	sh.mu.Unlock()
	if !ok {
		return
	}
	markEvicted(v.(*Entry))
}

// markEvicted flags e as no longer reachable from the cache and closes its
// handle immediately if nobody currently holds a reference. It's the one
// place that implements spec §2/§4.D's "evicted when its last strong
// reference drops" invariant, shared between an explicit Invalidate and an
// LRU shard dropping an entry on its own under capacity pressure.
func markEvicted(e *Entry) {
	e.mu.Lock()
	e.evicted = true
	refs := e.refs
	e.mu.Unlock()
	if refs == 0 {
		_ = e.handle.Close()
	}
}

// Len reports the total number of live entries across all shards, for
// diagnostics.
func (c *Cache) Len() int {
	n := 0
	for _, sh := range c.shards {
		sh.mu.Lock()
		n += sh.lru.Len()
		sh.mu.Unlock()
	}
	return n
}
