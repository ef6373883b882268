//go:build linux

package lockfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockRange takes (acquire=true) or releases (acquire=false) an OFD
// byte-range lock via fcntl, scoped to the open file description rather
// than the process, so two Handles from the same process locking disjoint
// ranges of the same sidecar don't clobber each other when one of them
// closes an unrelated descriptor on the same file.
func lockRange(f *os.File, offset, length int64, mode Mode, acquire bool) error {
	typ := int16(unix.F_RDLCK)
	if mode == Exclusive {
		typ = unix.F_WRLCK
	}
	if !acquire {
		typ = unix.F_UNLCK
	}
	lk := unix.Flock_t{
		Type:  typ,
		Start: offset,
		Len:   length,
	}
	return unix.FcntlFlock(f.Fd(), unix.F_OFD_SETLKW, &lk)
}
