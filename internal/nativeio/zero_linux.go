//go:build linux

package nativeio

import (
	"os"

	"golang.org/x/sys/unix"
)

// punchHole uses fallocate(2)'s hole-punching mode in a single call with
// PUNCH_HOLE|KEEP_SIZE; any error sends ZeroRange to its zero-by-writing
// fallback.
func punchHole(fd *os.File, offset, length int64) error {
	return unix.Fallocate(int(fd.Fd()), unix.FALLOC_FL_PUNCH_HOLE|unix.FALLOC_FL_KEEP_SIZE, offset, length)
}

// Preallocate reserves size bytes of backing store for the handle without
// changing its apparent length, reducing fragmentation for files known to
// grow to a predictable size. It makes one fallocate(2) call with
// KEEP_SIZE; a filesystem that answers ENOTSUP makes it a silent no-op.
func (h *Handle) Preallocate(size int64) error {
	if size <= 0 {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	err := unix.Fallocate(int(h.fd.Fd()), unix.FALLOC_FL_KEEP_SIZE, 0, size)
	if err == unix.ENOTSUP {
		return nil
	}
	return err
}
