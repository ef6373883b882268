//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package lockfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockRange takes or releases a process-scoped fcntl byte-range lock.
// BSD kernels (including Darwin) don't expose Linux's open-file-description
// locks, so this degrades to classic POSIX semantics: the lock is
// associated with the process and target inode, not this particular
// descriptor. That's weaker than Linux's behavior when a single process
// holds two independent Handles on the same sidecar, but per-target
// access here is already serialized through Registry's key mutex, so the
// practical exposure is limited to cross-process sharing, which is the
// case this mechanism exists for in the first place.
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
	return unix.FcntlFlock(f.Fd(), unix.F_SETLKW, &lk)
}
