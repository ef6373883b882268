//go:build darwin

package nativeio

import (
	"syscall"
	"time"
)

// statHandle uses fstat(2); Darwin's Stat_t carries a birth time natively
// (Birthtimespec), unlike Linux's pre-statx struct.
func statHandle(h *Handle) (Stat, error) {
	var st syscall.Stat_t
	if err := syscall.Fstat(int(h.fd.Fd()), &st); err != nil {
		return Stat{}, err
	}
	s := Stat{
		Dev:           uint64(st.Dev),
		Ino:           st.Ino,
		Type:          typeFromMode(uint16(st.Mode)),
		Perms:         uint32(st.Mode) & 0o7777,
		Nlink:         uint64(st.Nlink),
		UID:           st.Uid,
		GID:           st.Gid,
		Rdev:          uint64(st.Rdev),
		Atime:         time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec),
		Mtime:         time.Unix(st.Mtimespec.Sec, st.Mtimespec.Nsec),
		Ctime:         time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec),
		Birthtime:     time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec),
		HaveBirthtime: true,
		Size:          st.Size,
		AllocatedSize: st.Blocks * 512,
		Blocks:        st.Blocks,
		Blksize:       int64(st.Blksize),
	}
	s.Sparse = s.AllocatedSize < s.Size
	return s, nil
}

func typeFromMode(mode uint16) EntityType {
	switch mode & syscall.S_IFMT {
	case syscall.S_IFDIR:
		return TypeDirectory
	case syscall.S_IFLNK:
		return TypeSymlink
	case syscall.S_IFREG:
		return TypeFile
	default:
		return TypeOther
	}
}
