//go:build linux

package nativeio

import (
	"runtime"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

var (
	statxCheckOnce sync.Once
	statxAvailable bool
)

func haveStatx() bool {
	statxCheckOnce.Do(func() {
		var st unix.Statx_t
		statxAvailable = runtime.GOOS == "linux" && unix.Statx(unix.AT_FDCWD, ".", 0, unix.STATX_ALL, &st) != unix.ENOSYS
	})
	return statxAvailable
}

// statHandle captures Stat via statx(2) when available (kernel >= 4.11,
// giving birth time and a sparse/compressed/reparse-adjacent attribute
// mask in one call), falling back to fstatat(2) otherwise. Mirrors the
// teacher's statx-then-fstatat strategy in its own metadata capture.
func statHandle(h *Handle) (Stat, error) {
	if haveStatx() {
		return statxHandle(h)
	}
	return fstatatHandle(h)
}

func statxHandle(h *Handle) (Stat, error) {
	var flags int
	if h.kind == KindSymlink {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}
	var stx unix.Statx_t
	if err := unix.Statx(int(h.fd.Fd()), "", flags|unix.AT_EMPTY_PATH, unix.STATX_ALL, &stx); err != nil {
		return Stat{}, err
	}
	s := Stat{
		Dev:           unix.Mkdev(stx.Dev_major, stx.Dev_minor),
		Ino:           stx.Ino,
		Type:          typeFromMode(stx.Mode),
		Perms:         uint32(stx.Mode) & 0o7777,
		Nlink:         uint64(stx.Nlink),
		UID:           stx.Uid,
		GID:           stx.Gid,
		Rdev:          unix.Mkdev(stx.Rdev_major, stx.Rdev_minor),
		Atime:         time.Unix(stx.Atime.Sec, int64(stx.Atime.Nsec)),
		Mtime:         time.Unix(stx.Mtime.Sec, int64(stx.Mtime.Nsec)),
		Ctime:         time.Unix(stx.Ctime.Sec, int64(stx.Ctime.Nsec)),
		Size:          int64(stx.Size),
		AllocatedSize: int64(stx.Blocks) * 512,
		Blocks:        int64(stx.Blocks),
		Blksize:       int64(stx.Blksize),
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		s.Birthtime = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
		s.HaveBirthtime = true
	}
	s.Sparse = s.AllocatedSize < s.Size
	return s, nil
}

func fstatatHandle(h *Handle) (Stat, error) {
	var flags int
	if h.kind == KindSymlink {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}
	var st unix.Stat_t
	if err := unix.Fstatat(int(h.fd.Fd()), "", &st, flags|unix.AT_EMPTY_PATH); err != nil {
		return Stat{}, err
	}
	s := Stat{
		Dev:           st.Dev,
		Ino:           st.Ino,
		Type:          typeFromMode(uint16(st.Mode)),
		Perms:         uint32(st.Mode) & 0o7777,
		Nlink:         uint64(st.Nlink),
		UID:           st.Uid,
		GID:           st.Gid,
		Rdev:          st.Rdev,
		Atime:         time.Unix(st.Atim.Sec, st.Atim.Nsec),
		Mtime:         time.Unix(st.Mtim.Sec, st.Mtim.Nsec),
		Ctime:         time.Unix(st.Ctim.Sec, st.Ctim.Nsec),
		Size:          st.Size,
		AllocatedSize: st.Blocks * 512,
		Blocks:        st.Blocks,
		Blksize:       int64(st.Blksize),
	}
	s.Sparse = s.AllocatedSize < s.Size
	return s, nil
}

func typeFromMode(mode uint16) EntityType {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return TypeDirectory
	case unix.S_IFLNK:
		return TypeSymlink
	case unix.S_IFREG:
		return TypeFile
	default:
		return TypeOther
	}
}
