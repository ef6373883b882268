//go:build darwin

package nativeio

import (
	"os"

	"golang.org/x/sys/unix"
)

// punchHole has no direct APFS/HFS+ equivalent reachable without private
// fcntl opcodes, so Darwin always falls back to zero-by-writing at the
// ZeroRange call site.
func punchHole(fd *os.File, offset, length int64) error {
	return unix.ENOTSUP
}

// Preallocate uses F_PREALLOCATE, the Darwin equivalent of fallocate.
func (h *Handle) Preallocate(size int64) error {
	if size <= 0 {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	fst := &unix.Fstore_t{
		Flags:   unix.F_ALLOCATECONTIG,
		Posmode: unix.F_PEOFPOSMODE,
		Length:  size,
	}
	if err := unix.FcntlFstore(h.fd.Fd(), unix.F_PREALLOCATE, fst); err != nil {
		fst.Flags = unix.F_ALLOCATEALL
		return unix.FcntlFstore(h.fd.Fd(), unix.F_PREALLOCATE, fst)
	}
	return nil
}
