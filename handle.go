package afio

import (
	"context"
	"errors"

	"github.com/afio-go/afio/fpath"
	"github.com/afio-go/afio/internal/dircache"
	"github.com/afio-go/afio/internal/nativeio"
)

// Handle is the public handle type returned by Dispatcher.Open: a
// reference to an open file, directory, or symlink, race-safe against
// concurrent rename/recreate per spec §2/§4.C. All its methods are
// thin wrappers that submit work through the Dispatcher that created it,
// so every I/O call against a Handle is itself an async operation
// returning a Future.
type Handle struct {
	d       *Dispatcher
	nh      *nativeio.Handle
	typ     EntityType
	dirRef  *dircache.Entry // non-nil for directory handles served from the cache
}

func wrapStat(s nativeio.Stat) Stat {
	return Stat{
		Dev:           s.Dev,
		Ino:           s.Ino,
		Type:          EntityType(s.Type),
		Perms:         s.Perms,
		Nlink:         s.Nlink,
		UID:           s.UID,
		GID:           s.GID,
		Rdev:          s.Rdev,
		Atime:         s.Atime,
		Mtime:         s.Mtime,
		Ctime:         s.Ctime,
		Birthtime:     s.Birthtime,
		Size:          s.Size,
		AllocatedSize: s.AllocatedSize,
		Blocks:        s.Blocks,
		Blksize:       s.Blksize,
		Sparse:        s.Sparse,
		Compressed:    s.Compressed,
		ReparsePoint:  s.ReparsePoint,
	}
}

func toNativeFlags(f OpenFlags) nativeio.OpenFlags {
	var n nativeio.OpenFlags
	add := func(has OpenFlags, bit nativeio.OpenFlags) {
		if f.Has(has) {
			n |= bit
		}
	}
	add(FlagRead, nativeio.FlagRead)
	add(FlagWrite, nativeio.FlagWrite)
	add(FlagAppend, nativeio.FlagAppend)
	add(FlagTruncate, nativeio.FlagTruncate)
	add(FlagCreate, nativeio.FlagCreate)
	add(FlagCreateOnlyIfNotExist, nativeio.FlagCreateOnlyIfNotExist)
	add(FlagAlwaysSync, nativeio.FlagAlwaysSync)
	add(FlagSyncOnClose, nativeio.FlagSyncOnClose)
	add(FlagDirect, nativeio.FlagDirect)
	add(FlagDeleteOnClose, nativeio.FlagDeleteOnClose)
	add(FlagTemporaryFile, nativeio.FlagTemporaryFile)
	add(FlagSequential, nativeio.FlagSequential)
	add(FlagRandom, nativeio.FlagRandom)
	add(FlagNoRaceProtection, nativeio.FlagNoRaceProtection)
	return n
}

// Open submits an open operation for path, running behind pre (nil for no
// precondition). The resulting Future's value is a *Handle on success.
func (d *Dispatcher) Open(pre *Future, path string, flags OpenFlags, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindOpen, asFlags, func() (any, error) {
		nh, err := nativeio.OpenFile(path, toNativeFlags(flags), 0o644)
		if err != nil {
			return nil, translate("open", path, err)
		}
		return &Handle{d: d, nh: nh, typ: TypeFile}, nil
	})
}

// OpenDirectory submits an open operation against path as a directory.
// Unlike Open, this is served through the dispatcher's directory-handle
// cache (spec §4.D): repeated opens of the same canonical path reuse the
// already-open descriptor instead of issuing a fresh open(2)/CreateFile
// each time, which matters for *at-relative resolution against a hot
// parent directory.
func (d *Dispatcher) OpenDirectory(pre *Future, path string, flags OpenFlags, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindOpen, asFlags, func() (any, error) {
		canon, err := fpath.New(path).Canonical()
		if err != nil {
			return nil, translate("open", path, err)
		}
		entry, err := d.dirs.Acquire(canon.String())
		if err != nil {
			return nil, translate("open", path, err)
		}
		nh := entry.Handle().(*nativeio.Handle)
		return &Handle{d: d, nh: nh, typ: TypeDirectory, dirRef: entry}, nil
	})
}

// Close submits a close operation for h. For a directory handle served
// from the cache, this only drops this caller's reference; the
// underlying descriptor stays open for reuse until the cache evicts it
// with none outstanding.
func (d *Dispatcher) Close(pre *Future, h *Handle, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindClose, asFlags, func() (any, error) {
		if h.dirRef != nil {
			h.dirRef.Release(d.dirs)
			return nil, nil
		}
		return nil, translate("close", "", h.nh.Close())
	})
}

// Read submits a scatter-read operation.
func (d *Dispatcher) Read(pre *Future, h *Handle, req IoRequest, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindRead, asFlags, func() (any, error) {
		bufs := make([]nativeio.Buffer, len(req.Buffers))
		for i, b := range req.Buffers {
			bufs[i] = nativeio.Buffer{Data: b.Base}
		}
		n, err := h.nh.Read(req.Offset, bufs)
		if err != nil {
			return n, translateTruncated("read", err)
		}
		return n, nil
	})
}

// Write submits a scatter-write operation.
func (d *Dispatcher) Write(pre *Future, h *Handle, req IoRequest, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindWrite, asFlags, func() (any, error) {
		bufs := make([]nativeio.Buffer, len(req.Buffers))
		for i, b := range req.Buffers {
			bufs[i] = nativeio.Buffer{Data: b.Base}
		}
		n, err := h.nh.Write(req.Offset, bufs)
		if err != nil {
			return n, translateTruncated("write", err)
		}
		return n, nil
	})
}

// Truncate submits a truncate operation.
func (d *Dispatcher) Truncate(pre *Future, h *Handle, size int64, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindTruncate, asFlags, func() (any, error) {
		return nil, translate("truncate", "", h.nh.Truncate(size))
	})
}

// ZeroRange submits a zero/deallocate-range operation.
func (d *Dispatcher) ZeroRange(pre *Future, h *Handle, offset, length int64, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindZeroRange, asFlags, func() (any, error) {
		return nil, translate("zero_range", "", h.nh.ZeroRange(offset, length))
	})
}

// Sync submits an fsync operation.
func (d *Dispatcher) Sync(pre *Future, h *Handle, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindSync, asFlags, func() (any, error) {
		return nil, translate("sync", "", h.nh.Sync())
	})
}

// Extents submits an extent-enumeration operation. The Future's value is
// an ExtentList.
func (d *Dispatcher) Extents(pre *Future, h *Handle, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindExtents, asFlags, func() (any, error) {
		raw, err := h.nh.Extents()
		if err != nil {
			return nil, translate("extents", "", err)
		}
		out := make(ExtentList, len(raw))
		for i, e := range raw {
			out[i] = Extent{Offset: e.Offset, Length: e.Length}
		}
		return out, nil
	})
}

func toNativeEnumerateFilter(f EnumerateFilter) nativeio.EnumerateFilter {
	var n nativeio.EnumerateFilter
	if f.Has(FilterHideDeletePending) {
		n |= nativeio.FilterHideDeletePending
	}
	return n
}

// Enumerate submits a paginated directory-enumeration operation (spec
// §4.G): restart=true (or the first call against h) takes a fresh
// snapshot of the directory, applying glob and filter once; restart=false
// continues from wherever the previous call against h left off. Callers
// drain a listing by looping restart=false until the Future's
// EnumerateResult.MoreAvailable is false. maxItems<=0 returns the whole
// remaining snapshot in one page.
func (d *Dispatcher) Enumerate(pre *Future, h *Handle, maxItems int, restart bool, glob string, withMetadata bool, filter EnumerateFilter, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindEnumerate, asFlags, func() (any, error) {
		raw, more, err := h.nh.Enumerate(context.Background(), maxItems, restart, glob, withMetadata, toNativeEnumerateFilter(filter))
		if err != nil {
			return nil, translate("enumerate", "", err)
		}
		out := make([]DirectoryEntry, len(raw))
		for i, e := range raw {
			de := DirectoryEntry{Name: e.Name}
			if e.Have {
				de.Stat = wrapStat(e.Stat)
				de.Have = MetaAll
			}
			out[i] = de
		}
		return EnumerateResult{Entries: out, MoreAvailable: more}, nil
	})
}

// Statfs submits a filesystem-metadata query operation.
func (d *Dispatcher) Statfs(pre *Future, h *Handle, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindStatfs, asFlags, func() (any, error) {
		s, err := h.nh.Statfs()
		if err != nil {
			return nil, translate("statfs", "", err)
		}
		return StatfsResult{
			Bsize:           s.Bsize,
			Blocks:          s.Blocks,
			Bfree:           s.Bfree,
			Bavail:          s.Bavail,
			Files:           s.Files,
			Ffree:           s.Ffree,
			Namemax:         s.Namemax,
			Fstypename:      s.Fstypename,
			Mntfromname:     s.Mntfromname,
			Mntonname:       s.Mntonname,
			ReadOnly:        s.ReadOnly,
			NoExec:          s.NoExec,
			NoSuid:          s.NoSuid,
			ACLs:            s.ACLs,
			Xattr:           s.Xattr,
			Compression:     s.Compression,
			Extents:         s.Extents,
			FileCompression: s.FileCompression,
			Have:            FsMetaAll,
		}, nil
	})
}

// Stat submits a metadata query against an already-open handle.
func (d *Dispatcher) Stat(pre *Future, h *Handle, want MetadataFlags, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindStat, asFlags, func() (any, error) {
		s, err := h.nh.Stat()
		if err != nil {
			return nil, translate("stat", "", err)
		}
		st := wrapStat(s)
		st.Have = want
		return st, nil
	})
}

// Link submits a hard-link-creation operation.
func (d *Dispatcher) Link(pre *Future, h *Handle, newPath string, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindLink, asFlags, func() (any, error) {
		return nil, translate("link", newPath, h.nh.Link(newPath))
	})
}

// Unlink submits an unlink operation against h's current path.
func (d *Dispatcher) Unlink(pre *Future, h *Handle, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindUnlink, asFlags, func() (any, error) {
		return nil, translate("unlink", "", h.nh.Unlink())
	})
}

// Relink submits an atomic rename operation. If h is a directory handle,
// the dispatcher's directory-handle cache is invalidated for both the old
// and new canonical paths, since neither any longer identifies the
// pre-rename entity the way the cache's callers expect.
func (d *Dispatcher) Relink(pre *Future, h *Handle, newPath string, asFlags AsyncOpFlags) *Future {
	return d.Submit(pre, OpKindRelink, asFlags, func() (any, error) {
		oldPath := h.nh.Path(false).String()
		if err := h.nh.Relink(newPath); err != nil {
			return nil, translate("relink", newPath, err)
		}
		if h.typ == TypeDirectory {
			if c, err := fpath.New(oldPath).Canonical(); err == nil {
				d.dirs.Invalidate(c.String())
			}
			if c, err := fpath.New(newPath).Canonical(); err == nil {
				d.dirs.Invalidate(c.String())
			}
		}
		return nil, nil
	})
}

// fast, best-effort translation of a raw error into the portable Kind
// taxonomy; platform errno mapping lives close to the syscalls that
// produce them in internal/nativeio, but a handful of sentinel stdlib
// errors (os.ErrNotExist etc.) are recognized here since every platform's
// os package normalizes to them.
func translate(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(op, classify(err), path, err)
}

func translateTruncated(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, nativeio.ErrTruncatedIO) {
		return NewError(op, KindTruncatedIO, "", err)
	}
	return NewError(op, classify(err), "", err)
}
