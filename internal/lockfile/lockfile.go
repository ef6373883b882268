// Package lockfile implements the locking sub-registry of spec.md §4.H.
// Native byte-range locks are not uniform across platforms (POSIX fcntl
// locks are process-wide and silently merge/split when a process closes
// any descriptor on the same file; Windows LockFileEx locks are
// handle-scoped but mandatory). To give callers one consistent semantic
// regardless of platform, every lock is taken against a sidecar file next
// to the target rather than the target itself, following the shadow-lock
// strategy in original_source's lockable_handle (flag_use_shadow_lock_file):
// the target's bytes are never touched by the lock itself.
//
// A single reserved byte range at offset (1<<62)-1 on the sidecar acts as
// the "in use" marker: every opener holds it shared while it keeps a
// reference, and attempts to upgrade it to exclusive when dropping its
// last reference, so the last opener to leave can detect sole ownership
// and remove the sidecar file instead of leaking it.
package lockfile

import (
	"os"
	"sync"

	cache "github.com/patrickmn/go-cache"
)

// markerOffset is the reserved byte used as the shared/exclusive "in use"
// marker; it is far past any real file content, and clampRange trims
// caller byte ranges so they stop before it.
const markerOffset = int64(1)<<62 - 1

// Mode is the kind of lock a Registry.Acquire call asks for. Kept local
// (rather than reusing the root package's LockType) so this package has
// no import-cycle dependency on the root package that wires it in.
type Mode int

const (
	Shared Mode = iota
	Exclusive
)

type sidecar struct {
	mu   sync.Mutex
	fd   *os.File
	refs int
}

// Registry tracks one open sidecar descriptor per locked target, keyed by
// the target path as given. There is no idle expiry: an entry leaves the
// registry only when its last release removes the sidecar.
type Registry struct {
	mu      sync.Mutex
	keyLock sync.Map // canonical path -> *sync.Mutex, serializes opens per key
	open    map[string]*sidecar
	idle    *cache.Cache
}

// New builds an empty Registry. Its go-cache instance is created with no
// expiration and is not used to evict idle sidecars.
func New() *Registry {
	return &Registry{
		open: make(map[string]*sidecar),
		idle: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

func (r *Registry) keyMutex(target string) *sync.Mutex {
	v, _ := r.keyLock.LoadOrStore(target, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Handle is a held reference on a target's lock range. Release must be
// called exactly once.
type Handle struct {
	r      *Registry
	target string
	sc     *sidecar
	offset int64
	length int64
}

// clampRange trims [offset, offset+length) so it never reaches
// markerOffset, per spec §4.H/§6: "a request that straddles [the magic
// byte] is clamped." Every participant holds a permanent shared lock on
// that single byte as the sidecar's "in use" marker, so a caller's range
// — including the common "lock to EOF" pattern of a very large length —
// is trimmed to stop one byte short of it rather than being left to
// collide with that marker lock.
func clampRange(offset, length int64) (int64, int64) {
	if offset >= markerOffset {
		return offset, 0
	}
	if length <= 0 {
		return offset, length
	}
	end := offset + length
	if end < offset || end > markerOffset { // end < offset: overflowed
		length = markerOffset - offset
	}
	return offset, length
}

// Acquire opens (or reuses) the sidecar for target and takes a byte-range
// lock of the given mode over [offset, offset+length), clamped against
// the marker byte. Byte ranges are relative to the real target, not the
// sidecar, so two callers locking disjoint regions of the same target
// don't contend.
func (r *Registry) Acquire(target string, offset, length int64, mode Mode) (*Handle, error) {
	offset, length = clampRange(offset, length)

	km := r.keyMutex(target)
	km.Lock()
	defer km.Unlock()

	r.mu.Lock()
	sc, ok := r.open[target]
	r.mu.Unlock()

	if !ok {
		fd, err := openSidecar(target)
		if err != nil {
			return nil, err
		}
		if err := lockRange(fd, markerOffset, 1, Shared, true); err != nil {
			_ = fd.Close()
			return nil, err
		}
		sc = &sidecar{fd: fd}
		r.mu.Lock()
		r.open[target] = sc
		r.mu.Unlock()
	}

	sc.mu.Lock()
	sc.refs++
	sc.mu.Unlock()

	if err := lockRange(sc.fd, offset, length, mode, true); err != nil {
		r.releaseSidecar(target, sc)
		return nil, err
	}

	return &Handle{r: r, target: target, sc: sc, offset: offset, length: length}, nil
}

// Release drops the byte-range lock and the sidecar reference it holds.
// When this is the last reference, it attempts to upgrade the marker
// range to exclusive; success means no other opener is attached, so the
// sidecar file is removed.
func (h *Handle) Release() error {
	err := lockRange(h.sc.fd, h.offset, h.length, Shared, false)
	h.r.releaseSidecar(h.target, h.sc)
	return err
}

func (r *Registry) releaseSidecar(target string, sc *sidecar) {
	km := r.keyMutex(target)
	km.Lock()
	defer km.Unlock()

	sc.mu.Lock()
	sc.refs--
	last := sc.refs == 0
	sc.mu.Unlock()
	if !last {
		return
	}

	// Try to become sole owner; if we succeed, nobody else raced in
	// between the refcount drop and here, so the sidecar can be removed.
	sole := lockRange(sc.fd, markerOffset, 1, Exclusive, false) == nil
	if sole {
		_ = sc.fd.Close()
		_ = os.Remove(sidecarPath(target))
		r.mu.Lock()
		delete(r.open, target)
		r.mu.Unlock()
	}
}

func sidecarPath(target string) string { return target + ".afio-lock" }

func openSidecar(target string) (*os.File, error) {
	return os.OpenFile(sidecarPath(target), os.O_RDWR|os.O_CREATE, 0o600)
}
