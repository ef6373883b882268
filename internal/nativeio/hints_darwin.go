//go:build darwin

package nativeio

import "golang.org/x/sys/unix"

// applyAccessHints issues fcntl(F_RDAHEAD) on Darwin, the closest
// available equivalent of Linux's posix_fadvise sequential hint, and
// fcntl(F_NOCACHE) for FlagDirect, Darwin's stand-in for O_DIRECT.
func applyAccessHints(h *Handle, flags OpenFlags) {
	if flags&FlagSequential != 0 {
		_, _ = unix.FcntlInt(h.fd.Fd(), unix.F_RDAHEAD, 1)
	}
	if flags&FlagDirect != 0 {
		_, _ = unix.FcntlInt(h.fd.Fd(), unix.F_NOCACHE, 1)
	}
}
