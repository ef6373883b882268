package nativeio

import "time"

// EntityType mirrors the root package's EntityType without importing it
// (nativeio sits below the root package in the dependency graph).
type EntityType int

const (
	TypeUnknown EntityType = iota
	TypeFile
	TypeDirectory
	TypeSymlink
	TypeOther
)

// Stat is this layer's platform-populated metadata snapshot; the root
// package's dispatcher translates it into the public afio.Stat after
// applying the caller's MetadataFlags request.
type Stat struct {
	Dev           uint64
	Ino           uint64
	Type          EntityType
	Perms         uint32
	Nlink         uint64
	UID           uint32
	GID           uint32
	Rdev          uint64
	Atime         time.Time
	Mtime         time.Time
	Ctime         time.Time
	Birthtime     time.Time
	Size          int64
	AllocatedSize int64
	Blocks        int64
	Blksize       int64
	Sparse        bool
	Compressed    bool
	ReparsePoint  bool
	HaveBirthtime bool
}

// Stat captures full metadata for the handle's entity, following the
// teacher's statx-first/fstatat-fallback strategy on Linux and the
// platform-appropriate Stat_t shape elsewhere.
func (h *Handle) Stat() (Stat, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return statHandle(h)
}
