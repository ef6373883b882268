//go:build linux

package nativeio

import "golang.org/x/sys/unix"

// applyAccessHints issues posix_fadvise for the sequential/random access
// pattern hints a caller set at open time, the same advisory mechanism
// the teacher's fadvise_unix.go applied to its own cloud-sync reads.
func applyAccessHints(h *Handle, flags OpenFlags) {
	switch {
	case flags&FlagSequential != 0:
		_ = unix.Fadvise(int(h.fd.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
	case flags&FlagRandom != 0:
		_ = unix.Fadvise(int(h.fd.Fd()), 0, 0, unix.FADV_RANDOM)
	}
}
